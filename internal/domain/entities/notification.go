package entities

// NotificationChannel selects the transport a notification is delivered on.

type NotificationChannel string

const (
	ChannelTelegram NotificationChannel = "telegram"
	ChannelEmail    NotificationChannel = "email"
	ChannelConsole  NotificationChannel = "console"
)

// Notification is one pending outbox element. Reconciliation returns these
// instead of sending directly, so dispatch failures stay decoupled from the
// transactional write.

type Notification struct {
	Channel NotificationChannel `json:"channel"`
	Subject string              `json:"subject"`
	Text    string              `json:"text"`

	// Recipient is channel-specific: a chat ID for telegram, an address for
	// email. Empty means the transport's configured default.
	Recipient string `json:"recipient,omitempty"`
}
