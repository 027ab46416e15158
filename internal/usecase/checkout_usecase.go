package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidBookingInput = errors.New("invalid booking input")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrOrderNotFound       = errors.New("order not found")
	ErrAlreadyPaid         = errors.New("target already paid")
	ErrInvalidPayerEmail   = errors.New("invalid payer email")
	ErrInvalidPhoneNumber  = errors.New("invalid phone number")
	ErrInvalidPurpose      = errors.New("invalid payment purpose")
)

// InitializeCommand starts a Paystack charge for a booking, order or
// subscription tier. The amount is never taken from the client; it comes from
// the target record (or the tier catalog).
type InitializeCommand struct {
	Email    string
	Purpose  entities.IntentPurpose
	TargetID string
	// Tier is required when Purpose is subscription.
	Tier string
}

type InitializeResult struct {
	Reference        string
	AuthorizationURL string
	AccessCode       string
	Amount           int64
	Currency         string
}

type StkPushCommand struct {
	BookingID   string
	PhoneNumber string
}

type StkPushResult struct {
	CheckoutRequestID string
	CustomerMessage   string
}

// ICheckoutUseCase creates bookings and initiates charges against the
// configured gateways.

type ICheckoutUseCase interface {
	CreateBooking(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetBooking(ctx context.Context, id string) (entities.Booking, error)
	InitializePaystack(ctx context.Context, cmd InitializeCommand) (InitializeResult, error)
	InitiateStkPush(ctx context.Context, cmd StkPushCommand) (StkPushResult, error)
}

type CheckoutUseCase struct {
	intents  interfaces.IPaymentIntentRepository
	bookings interfaces.IBookingRepository
	orders   interfaces.IOrderRepository
	paystack interfaces.IPaystackGateway
	mpesa    interfaces.IMpesaGateway

	currency       string
	normalizePhone func(string) string
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	intents interfaces.IPaymentIntentRepository,
	bookings interfaces.IBookingRepository,
	orders interfaces.IOrderRepository,
	paystack interfaces.IPaystackGateway,
	mpesa interfaces.IMpesaGateway,
	currency string,
	normalizePhone func(string) string,
) *CheckoutUseCase {
	if currency == "" {
		currency = "KES"
	}
	if normalizePhone == nil {
		normalizePhone = func(p string) string { return p }
	}
	return &CheckoutUseCase{
		intents:        intents,
		bookings:       bookings,
		orders:         orders,
		paystack:       paystack,
		mpesa:          mpesa,
		currency:       currency,
		normalizePhone: normalizePhone,
	}
}

func (u *CheckoutUseCase) CreateBooking(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	b.UserID = strings.TrimSpace(b.UserID)
	b.SessionID = strings.TrimSpace(b.SessionID)
	if b.UserID == "" || b.SessionID == "" || b.TotalPrice <= 0 {
		log.Printf("[checkout][usecase] invalid booking input user_id=%q session_id=%q total_price=%d", b.UserID, b.SessionID, b.TotalPrice)
		return entities.Booking{}, ErrInvalidBookingInput
	}

	b.ID = uuid.NewString()
	b.IsPaid = false
	b.Status = entities.BookingStatusPending
	b.CreatedAt = time.Now().UTC()

	created, err := u.bookings.Create(ctx, b)
	if err != nil {
		log.Printf("[checkout][usecase] booking create failed user_id=%s err=%v", b.UserID, err)
		return entities.Booking{}, err
	}
	log.Printf("[checkout][usecase] booking created booking_id=%s user_id=%s total_price=%d", created.ID, created.UserID, created.TotalPrice)
	return created, nil
}

func (u *CheckoutUseCase) GetBooking(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrBookingNotFound
	}

	b, err := u.bookings.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *CheckoutUseCase) InitializePaystack(ctx context.Context, cmd InitializeCommand) (InitializeResult, error) {
	email := strings.TrimSpace(cmd.Email)
	if email == "" || !strings.Contains(email, "@") {
		return InitializeResult{}, ErrInvalidPayerEmail
	}
	if u.paystack == nil {
		return InitializeResult{}, errors.New("paystack gateway not configured")
	}

	// Resolve the charge amount from the record being paid for; Paystack
	// amounts are in minor units (kobo/cents).
	var amount int64
	targetID := strings.TrimSpace(cmd.TargetID)
	metadata := map[string]string{"purpose": string(cmd.Purpose), "target_id": targetID}

	switch cmd.Purpose {
	case entities.PurposeBooking:
		b, err := u.bookings.GetByID(ctx, targetID)
		if err != nil {
			return InitializeResult{}, err
		}
		if b.ID == "" {
			return InitializeResult{}, ErrBookingNotFound
		}
		if b.IsPaid {
			return InitializeResult{}, ErrAlreadyPaid
		}
		amount = b.TotalPrice * 100
	case entities.PurposeOrder:
		o, err := u.orders.GetByID(ctx, targetID)
		if err != nil {
			return InitializeResult{}, err
		}
		if o.ID == "" {
			return InitializeResult{}, ErrOrderNotFound
		}
		if o.IsPaid {
			return InitializeResult{}, ErrAlreadyPaid
		}
		amount = o.Amount * 100
	case entities.PurposeSubscription:
		tier, ok := entities.TierCatalog[cmd.Tier]
		if !ok {
			return InitializeResult{}, ErrUnknownTier
		}
		amount = tier.PriceKES * 100
		metadata["tier"] = tier.Name
	default:
		return InitializeResult{}, ErrInvalidPurpose
	}

	reference := "DJF-" + uuid.NewString()
	log.Printf("[checkout][usecase] paystack initialize purpose=%s target_id=%s amount=%d reference=%s", cmd.Purpose, targetID, amount, reference)

	initResult, err := u.paystack.Initialize(ctx, email, amount, u.currency, reference, metadata)
	if err != nil {
		log.Printf("[checkout][usecase] paystack initialize failed reference=%s err=%v", reference, err)
		return InitializeResult{}, err
	}

	now := time.Now().UTC()
	intent := entities.PaymentIntent{
		Reference:           reference,
		Amount:              amount,
		Currency:            u.currency,
		PayerEmail:          email,
		Purpose:             cmd.Purpose,
		TargetID:            targetID,
		Provider:            entities.ProviderPaystack,
		Status:              entities.IntentStatusPending,
		Metadata:            metadata,
		ProviderResponseRaw: initResult.Raw,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if _, err := u.intents.Create(ctx, intent); err != nil {
		log.Printf("[checkout][usecase] intent create failed reference=%s err=%v", reference, err)
		return InitializeResult{}, err
	}
	log.Printf("[checkout][usecase] intent created reference=%s purpose=%s amount=%d", reference, cmd.Purpose, amount)

	return InitializeResult{
		Reference:        reference,
		AuthorizationURL: initResult.AuthorizationURL,
		AccessCode:       initResult.AccessCode,
		Amount:           amount,
		Currency:         u.currency,
	}, nil
}

func (u *CheckoutUseCase) InitiateStkPush(ctx context.Context, cmd StkPushCommand) (StkPushResult, error) {
	phone := u.normalizePhone(cmd.PhoneNumber)
	if len(phone) < 10 {
		return StkPushResult{}, ErrInvalidPhoneNumber
	}
	if u.mpesa == nil {
		return StkPushResult{}, errors.New("mpesa gateway not configured")
	}

	b, err := u.bookings.GetByID(ctx, strings.TrimSpace(cmd.BookingID))
	if err != nil {
		return StkPushResult{}, err
	}
	if b.ID == "" {
		return StkPushResult{}, ErrBookingNotFound
	}
	if b.IsPaid {
		return StkPushResult{}, ErrAlreadyPaid
	}

	log.Printf("[checkout][usecase] stk push booking_id=%s phone=%s amount=%d", b.ID, phone, b.TotalPrice)
	push, err := u.mpesa.STKPush(ctx, phone, b.TotalPrice, b.ID, "DJ FLOWERZ studio session")
	if err != nil {
		log.Printf("[checkout][usecase] stk push failed booking_id=%s err=%v", b.ID, err)
		return StkPushResult{}, err
	}

	// The checkout request ID is the intent's reference until the async
	// callback resolves it to an M-Pesa receipt.
	now := time.Now().UTC()
	intent := entities.PaymentIntent{
		Reference:           push.CheckoutRequestID,
		Amount:              b.TotalPrice,
		Currency:            u.currency,
		Purpose:             entities.PurposeBooking,
		TargetID:            b.ID,
		Provider:            entities.ProviderMpesaStk,
		Status:              entities.IntentStatusPending,
		ProviderResponseRaw: push.Raw,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if _, err := u.intents.Create(ctx, intent); err != nil {
		log.Printf("[checkout][usecase] intent create failed reference=%s err=%v", push.CheckoutRequestID, err)
		return StkPushResult{}, err
	}

	if err := u.bookings.SetPaymentReference(ctx, b.ID, push.CheckoutRequestID); err != nil {
		// The intent already carries the linkage; the booking field is a
		// convenience that reconciliation overwrites with the receipt.
		log.Printf("[checkout][usecase] set payment reference failed booking_id=%s err=%v", b.ID, err)
	}
	log.Printf("[checkout][usecase] stk push accepted booking_id=%s checkout_request_id=%s", b.ID, push.CheckoutRequestID)

	return StkPushResult{
		CheckoutRequestID: push.CheckoutRequestID,
		CustomerMessage:   push.CustomerMessage,
	}, nil
}
