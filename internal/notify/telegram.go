package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTelegramAPI = "https://api.telegram.org"

// TelegramSink sends messages through the Telegram Bot API
type TelegramSink struct {
	apiURL string
	token  string
	client *http.Client
}

// NewTelegramSink creates a sink for the given bot token. An empty token disables it.
func NewTelegramSink(apiURL, token string) *TelegramSink {
	if apiURL == "" {
		apiURL = defaultTelegramAPI
	}
	return &TelegramSink{
		apiURL: strings.TrimRight(apiURL, "/"),
		token:  token,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Name implements Sink
func (s *TelegramSink) Name() string {
	return "telegram"
}

// Notify implements Sink
func (s *TelegramSink) Notify(ctx context.Context, to Recipient, msg Message) error {
	if s.token == "" || to.TelegramChatID == "" {
		return nil
	}

	form := url.Values{}
	form.Set("chat_id", to.TelegramChatID)
	form.Set("text", formatTelegram(msg))
	form.Set("parse_mode", "HTML")

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", s.apiURL, s.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		// the token is part of the URL
		return fmt.Errorf("telegram request failed: %s", strings.ReplaceAll(err.Error(), s.token, "***"))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("telegram responded %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func formatTelegram(msg Message) string {
	if msg.Title == "" {
		return msg.Text
	}
	return msg.Title + "\n\n" + msg.Text
}
