package entities

import "time"

// SubscriptionStatus mirrors the music-pool access state used by entitlements.

type SubscriptionStatus string

const (
	SubscriptionStatusActive  SubscriptionStatus = "active"
	SubscriptionStatusExpired SubscriptionStatus = "expired"
)

// Subscription is a user's music-pool subscription.
//
// Storage model (DynamoDB):
//   - PK: user_id
//
// EndDate is extended (never reset) by reconciliation; expiry flips Status to
// expired via an external scheduled job outside this service.

type Subscription struct {
	UserID    string             `json:"user_id"`
	Tier      string             `json:"tier"`
	Status    SubscriptionStatus `json:"status"`
	StartDate time.Time          `json:"start_date"`
	EndDate   time.Time          `json:"end_date"`
	// LastPaymentRef is the intent reference of the payment that last
	// extended EndDate; reconciliation uses it to apply each payment once.
	LastPaymentRef string    `json:"last_payment_reference,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SubscriptionTier is a purchasable pool tier.

type SubscriptionTier struct {
	Name     string
	PriceKES int64
	Duration time.Duration
}

// TierCatalog is the source of truth for tier pricing; the amount on a
// subscription intent always comes from here, never from the client.
var TierCatalog = map[string]SubscriptionTier{
	"weekly":    {Name: "weekly", PriceKES: 500, Duration: 7 * 24 * time.Hour},
	"monthly":   {Name: "monthly", PriceKES: 1500, Duration: 30 * 24 * time.Hour},
	"quarterly": {Name: "quarterly", PriceKES: 4000, Duration: 90 * 24 * time.Hour},
}
