package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"djflowerz_payments/internal/domain/entities"
	"djflowerz_payments/internal/usecase/interfaces"
)

var ErrMissingTelegramConfig = errors.New("missing TELEGRAM_BOT_TOKEN/TELEGRAM_CHAT_ID")

const telegramAPIBase = "https://api.telegram.org"

// TelegramNotifier delivers notifications via the Telegram Bot API
// (sendMessage). The recipient chat defaults to the configured admin chat.

type TelegramNotifier struct {
	httpClient    *http.Client
	baseURL       string
	botToken      string
	defaultChatID string
}

var _ interfaces.INotifier = (*TelegramNotifier)(nil)

func NewTelegramNotifier(botToken, defaultChatID string) (*TelegramNotifier, error) {
	if botToken == "" || defaultChatID == "" {
		return nil, ErrMissingTelegramConfig
	}
	return &TelegramNotifier{
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		baseURL:       telegramAPIBase,
		botToken:      botToken,
		defaultChatID: defaultChatID,
	}, nil
}

// WithBaseURL overrides the API host; used by tests.
func (t *TelegramNotifier) WithBaseURL(baseURL string) *TelegramNotifier {
	t.baseURL = baseURL
	return t
}

func (t *TelegramNotifier) Notify(ctx context.Context, n entities.Notification) error {
	chatID := n.Recipient
	if chatID == "" {
		chatID = t.defaultChatID
	}

	text := n.Text
	if n.Subject != "" {
		text = n.Subject + "\n" + n.Text
	}

	payload, err := json.Marshal(map[string]string{
		"chat_id": chatID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.baseURL, t.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram sendMessage http %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
