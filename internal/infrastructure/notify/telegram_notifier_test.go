package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"djflowerz_payments/internal/domain/entities"
)

func TestTelegramNotifier_Notify(t *testing.T) {
	t.Run("missing config", func(t *testing.T) {
		if _, err := NewTelegramNotifier("", ""); err == nil {
			t.Fatal("expected error for missing config")
		}
	})

	t.Run("sends to default chat", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		tg, err := NewTelegramNotifier("bot-token", "admin-chat")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tg.WithBaseURL(srv.URL)

		err = tg.Notify(context.Background(), entities.Notification{
			Channel: entities.ChannelTelegram,
			Subject: "Payment received",
			Text:    "DJF-1 settled",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/botbot-token/sendMessage" {
			t.Fatalf("unexpected path %q", gotPath)
		}
		if gotBody["chat_id"] != "admin-chat" {
			t.Fatalf("unexpected chat_id %q", gotBody["chat_id"])
		}
		if gotBody["text"] != "Payment received\nDJF-1 settled" {
			t.Fatalf("unexpected text %q", gotBody["text"])
		}
	})

	t.Run("api failure surfaces as error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"ok":false}`, http.StatusBadRequest)
		}))
		defer srv.Close()

		tg, _ := NewTelegramNotifier("bot-token", "admin-chat")
		tg.WithBaseURL(srv.URL)

		if err := tg.Notify(context.Background(), entities.Notification{Channel: entities.ChannelTelegram}); err == nil {
			t.Fatal("expected error for non-200 response")
		}
	})
}
