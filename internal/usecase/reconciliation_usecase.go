package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/usecase/interfaces"
)

var (
	ErrInvalidReference   = errors.New("invalid reference")
	ErrIntentNotFound     = errors.New("payment intent not found")
	ErrAmountMismatch     = errors.New("paid amount does not match expected amount")
	ErrUnknownTier        = errors.New("unknown subscription tier")
	ErrGatewayUnreachable = errors.New("payment gateway unreachable")
)

// IReconciliationUseCase applies a gateway verdict to internal records exactly
// once.
//
// Reconcile returns the notifications to dispatch after the write; callers
// hand them to the dispatcher and must never fail the request if dispatch
// fails.

type IReconciliationUseCase interface {
	Reconcile(ctx context.Context, event entities.ReconciliationEvent) ([]entities.Notification, error)
	VerifyReference(ctx context.Context, reference string) (entities.PaymentIntent, []entities.Notification, error)
}

type ReconciliationUseCase struct {
	intents  interfaces.IPaymentIntentRepository
	bookings interfaces.IBookingRepository
	orders   interfaces.IOrderRepository
	subs     interfaces.ISubscriptionRepository
	paystack interfaces.IPaystackGateway

	// now is swapped in tests that assert expiry extension.
	now func() time.Time
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

func NewReconciliationUseCase(
	intents interfaces.IPaymentIntentRepository,
	bookings interfaces.IBookingRepository,
	orders interfaces.IOrderRepository,
	subs interfaces.ISubscriptionRepository,
	paystack interfaces.IPaystackGateway,
) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		intents:  intents,
		bookings: bookings,
		orders:   orders,
		subs:     subs,
		paystack: paystack,
		now:      time.Now,
	}
}

// Reconcile maps one normalized gateway event onto its PaymentIntent and the
// record the intent pays for.
//
// Idempotence: the intent's conditional pending->success update is the guard;
// a redelivered event (or a verify call racing a webhook) finds the intent
// already terminal. The target mutation is still re-applied then, because a
// prior attempt may have marked the intent and crashed before the target
// write; every target mutation is conditional, so a completed delivery
// remains a no-op.
func (u *ReconciliationUseCase) Reconcile(ctx context.Context, event entities.ReconciliationEvent) ([]entities.Notification, error) {
	reference := strings.TrimSpace(event.Reference)
	if reference == "" {
		log.Printf("[reconcile][usecase] event without reference provider=%s", event.Provider)
		return nil, ErrInvalidReference
	}

	intent, err := u.intents.GetByReference(ctx, reference)
	if err != nil {
		log.Printf("[reconcile][usecase] intent lookup failed reference=%s err=%v", reference, err)
		return nil, err
	}
	if intent.Reference == "" {
		// Not ours, or not created yet; acknowledge so the gateway stops
		// retrying a delivery we can never use.
		log.Printf("[reconcile][usecase] intent not found reference=%s provider=%s; acknowledging", reference, event.Provider)
		return nil, nil
	}
	if intent.Status == entities.IntentStatusSuccess {
		if !event.Succeeded {
			log.Printf("[reconcile][usecase] already reconciled reference=%s; acknowledging failure redelivery", reference)
			return nil, nil
		}
		// The intent settled on an earlier delivery, but that delivery may
		// have failed after the intent write. Re-run the target mutation;
		// it no-ops when the target already reflects this payment.
		log.Printf("[reconcile][usecase] already reconciled reference=%s; re-checking target", reference)
		return u.applyTarget(ctx, intent, u.finalReference(intent, event))
	}

	if !event.Succeeded {
		applied, err := u.intents.MarkFailedIfPending(ctx, reference, event.FailureReason)
		if err != nil {
			return nil, err
		}
		log.Printf("[reconcile][usecase] failure event reference=%s reason=%q applied=%t; target untouched", reference, event.FailureReason, applied)
		return nil, nil
	}

	if event.Amount > 0 && event.Amount != intent.Amount {
		log.Printf("[reconcile][usecase] amount mismatch reference=%s expected=%d reported=%d; rejecting", reference, intent.Amount, event.Amount)
		return nil, ErrAmountMismatch
	}

	applied, err := u.intents.MarkSucceededIfPending(ctx, reference, event.Receipt)
	if err != nil {
		log.Printf("[reconcile][usecase] intent update failed reference=%s err=%v", reference, err)
		return nil, err
	}
	if !applied {
		// A concurrent delivery won the conditional update.
		log.Printf("[reconcile][usecase] lost first-success race reference=%s; acknowledging", reference)
		return nil, nil
	}

	return u.applyTarget(ctx, intent, u.finalReference(intent, event))
}

// finalReference picks the reference recorded on the paid target: the
// provider's final receipt when one exists (M-Pesa receipt number, possibly
// already stored on the intent by an earlier delivery), otherwise the
// original intent reference.
func (u *ReconciliationUseCase) finalReference(intent entities.PaymentIntent, event entities.ReconciliationEvent) string {
	if event.Receipt != "" {
		return event.Receipt
	}
	if intent.Receipt != "" {
		return intent.Receipt
	}
	return intent.Reference
}

func (u *ReconciliationUseCase) applyTarget(ctx context.Context, intent entities.PaymentIntent, finalRef string) ([]entities.Notification, error) {
	switch intent.Purpose {
	case entities.PurposeBooking:
		return u.applyBooking(ctx, intent, finalRef)
	case entities.PurposeOrder:
		return u.applyOrder(ctx, intent, finalRef)
	case entities.PurposeSubscription:
		return u.applySubscription(ctx, intent)
	default:
		log.Printf("[reconcile][usecase] unknown purpose reference=%s purpose=%q", intent.Reference, intent.Purpose)
		return nil, fmt.Errorf("unknown intent purpose %q", intent.Purpose)
	}
}

func (u *ReconciliationUseCase) applyBooking(ctx context.Context, intent entities.PaymentIntent, finalRef string) ([]entities.Notification, error) {
	applied, err := u.bookings.MarkPaidIfUnpaid(ctx, intent.TargetID, finalRef)
	if err != nil {
		log.Printf("[reconcile][usecase] booking update failed booking_id=%s err=%v", intent.TargetID, err)
		return nil, err
	}
	if !applied {
		log.Printf("[reconcile][usecase] booking already paid booking_id=%s; acknowledging", intent.TargetID)
		return nil, nil
	}
	log.Printf("[reconcile][usecase] booking confirmed booking_id=%s reference=%s", intent.TargetID, finalRef)

	return []entities.Notification{{
		Channel: entities.ChannelTelegram,
		Subject: "Booking paid",
		Text:    fmt.Sprintf("Booking %s confirmed. %s %d received (ref %s).", intent.TargetID, intent.Currency, intent.Amount, finalRef),
	}}, nil
}

func (u *ReconciliationUseCase) applyOrder(ctx context.Context, intent entities.PaymentIntent, finalRef string) ([]entities.Notification, error) {
	applied, err := u.orders.MarkPaidIfUnpaid(ctx, intent.TargetID, finalRef)
	if err != nil {
		log.Printf("[reconcile][usecase] order update failed order_id=%s err=%v", intent.TargetID, err)
		return nil, err
	}
	if !applied {
		log.Printf("[reconcile][usecase] order already paid order_id=%s; acknowledging", intent.TargetID)
		return nil, nil
	}
	log.Printf("[reconcile][usecase] order paid order_id=%s reference=%s", intent.TargetID, finalRef)

	return []entities.Notification{{
		Channel: entities.ChannelTelegram,
		Subject: "Order paid",
		Text:    fmt.Sprintf("Order %s paid. %s %d received (ref %s).", intent.TargetID, intent.Currency, intent.Amount, finalRef),
	}}, nil
}

func (u *ReconciliationUseCase) applySubscription(ctx context.Context, intent entities.PaymentIntent) ([]entities.Notification, error) {
	tierName := intent.Metadata["tier"]
	tier, ok := entities.TierCatalog[tierName]
	if !ok {
		log.Printf("[reconcile][usecase] unknown tier user_id=%s tier=%q", intent.TargetID, tierName)
		return nil, ErrUnknownTier
	}

	current, err := u.subs.GetByUserID(ctx, intent.TargetID)
	if err != nil {
		log.Printf("[reconcile][usecase] subscription lookup failed user_id=%s err=%v", intent.TargetID, err)
		return nil, err
	}
	if current.LastPaymentRef != "" && current.LastPaymentRef == intent.Reference {
		log.Printf("[reconcile][usecase] subscription already extended by reference=%s user_id=%s; acknowledging", intent.Reference, intent.TargetID)
		return nil, nil
	}

	now := u.now().UTC()

	// Renewals extend from the current expiry when it is still in the
	// future; they never reset an active subscription to now + duration.
	base := now
	if current.EndDate.After(now) {
		base = current.EndDate
	}
	newEnd := base.Add(tier.Duration)

	start := current.StartDate
	if start.IsZero() {
		start = now
	}

	sub := entities.Subscription{
		UserID:         intent.TargetID,
		Tier:           tier.Name,
		Status:         entities.SubscriptionStatusActive,
		StartDate:      start,
		EndDate:        newEnd,
		LastPaymentRef: intent.Reference,
		UpdatedAt:      now,
	}
	if _, err := u.subs.Upsert(ctx, sub); err != nil {
		log.Printf("[reconcile][usecase] subscription upsert failed user_id=%s err=%v", intent.TargetID, err)
		return nil, err
	}
	log.Printf("[reconcile][usecase] subscription extended user_id=%s tier=%s end=%s", intent.TargetID, tier.Name, newEnd.Format(time.RFC3339))

	return []entities.Notification{{
		Channel: entities.ChannelTelegram,
		Subject: "Subscription renewed",
		Text:    fmt.Sprintf("User %s renewed %s pool access until %s.", intent.TargetID, tier.Name, newEnd.Format("2006-01-02")),
	}}, nil
}

// VerifyReference resolves a reference with Paystack and funnels the verdict
// through Reconcile, so a client-initiated verify and an async webhook apply
// identical rules.
func (u *ReconciliationUseCase) VerifyReference(ctx context.Context, reference string) (entities.PaymentIntent, []entities.Notification, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.PaymentIntent{}, nil, ErrInvalidReference
	}
	if u.paystack == nil {
		return entities.PaymentIntent{}, nil, errors.New("paystack gateway not configured")
	}

	intent, err := u.intents.GetByReference(ctx, reference)
	if err != nil {
		return entities.PaymentIntent{}, nil, err
	}
	if intent.Reference == "" {
		log.Printf("[reconcile][usecase] verify for unknown reference=%s", reference)
		return entities.PaymentIntent{}, nil, ErrIntentNotFound
	}
	if intent.Status == entities.IntentStatusSuccess {
		// No gateway round trip needed, but the target may still be behind
		// the intent if an earlier delivery died mid-way.
		notifications, err := u.applyTarget(ctx, intent, u.finalReference(intent, entities.ReconciliationEvent{}))
		if err != nil {
			return entities.PaymentIntent{}, nil, err
		}
		return intent, notifications, nil
	}

	result, err := u.paystack.Verify(ctx, reference)
	if err != nil {
		log.Printf("[reconcile][usecase] paystack verify failed reference=%s err=%v", reference, err)
		return entities.PaymentIntent{}, nil, fmt.Errorf("%w: %v", ErrGatewayUnreachable, err)
	}

	event := entities.ReconciliationEvent{
		Provider:  entities.ProviderPaystack,
		Reference: reference,
		Succeeded: result.Status == "success",
		Amount:    result.Amount,
		Raw:       result.Raw,
	}
	if !event.Succeeded {
		event.FailureReason = result.Status
	}

	notifications, err := u.Reconcile(ctx, event)
	if err != nil {
		return entities.PaymentIntent{}, nil, err
	}

	updated, err := u.intents.GetByReference(ctx, reference)
	if err != nil {
		return entities.PaymentIntent{}, notifications, err
	}
	return updated, notifications, nil
}
