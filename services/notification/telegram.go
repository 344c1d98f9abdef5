package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const telegramAPIBase = "https://api.telegram.org"

// TelegramNotifier sends messages through the Telegram Bot API.
type TelegramNotifier struct {
	token   string
	apiBase string
	client  *http.Client
}

// NewTelegramNotifier returns a Notifier backed by the Telegram Bot API.
func NewTelegramNotifier(token string) *TelegramNotifier {
	return &TelegramNotifier{
		token:   token,
		apiBase: telegramAPIBase,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

type telegramAPIResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// SendMessage posts a Markdown-formatted message to the given chat.
func (n *TelegramNotifier) SendMessage(ctx context.Context, chatID, text string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.token)

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:    chatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		return fmt.Errorf("encoding telegram message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	var apiResp telegramAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("decoding response failed: %w", err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram API returned failure: %s", apiResp.Description)
	}
	return nil
}
