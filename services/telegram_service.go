package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// NotifierInterface defines the interface for operator notifications
type NotifierInterface interface {
	NotifyNewOrder(orderID uint, customerName, customerPhone, phoneModel string)
}

// TelegramService posts new-order alerts to the operator chat via the
// Telegram Bot API. Delivery is best effort: every fault is swallowed
// here so a broken channel can never affect order intake.
type TelegramService struct {
	client  *http.Client
	token   string
	chatID  string
	apiBase string
}

var notifierInstance NotifierInterface

const notifyTimeout = 5 * time.Second

// NewTelegramService builds a notifier for the given credentials. The
// API base is a parameter so tests can point it at a stand-in server.
func NewTelegramService(token, chatID, apiBase string) *TelegramService {
	return &TelegramService{
		client:  &http.Client{Timeout: notifyTimeout},
		token:   token,
		chatID:  chatID,
		apiBase: apiBase,
	}
}

// InitTelegramService initializes the Telegram notifier from
// TELEGRAM_BOT_TOKEN and TELEGRAM_ADMIN_CHAT_ID. Either may be empty;
// the notifier then no-ops on every call.
func InitTelegramService() NotifierInterface {
	notifierInstance = NewTelegramService(
		os.Getenv("TELEGRAM_BOT_TOKEN"),
		os.Getenv("TELEGRAM_ADMIN_CHAT_ID"),
		"https://api.telegram.org",
	)
	return notifierInstance
}

// GetNotifier returns the initialized notifier instance
func GetNotifier() NotifierInterface {
	return notifierInstance
}

// SetNotifier sets the notifier instance (primarily for testing)
func SetNotifier(n NotifierInterface) {
	notifierInstance = n
}

// NotifyNewOrder sends a new-order alert to the operator chat.
// Callers must only invoke it after the order row is committed; the
// outcome is never reported back.
func (t *TelegramService) NotifyNewOrder(orderID uint, customerName, customerPhone, phoneModel string) {
	if t.token == "" || t.chatID == "" {
		return
	}

	text := fmt.Sprintf(
		"🔔 <b>New order #%d</b>\n\n"+
			"👤 Customer: %s\n"+
			"📱 Phone: %s\n"+
			"📲 Model: %s\n"+
			"📅 Time: %s\n\n"+
			"Check the admin panel for details!",
		orderID, customerName, customerPhone, phoneModel,
		time.Now().Format("02.01.2006 15:04"),
	)

	payload, err := json.Marshal(map[string]string{
		"chat_id":    t.chatID,
		"text":       text,
		"parse_mode": "HTML",
	})
	if err != nil {
		log.Printf("warning: failed to encode telegram payload for order %d: %v", orderID, err)
		return
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token)
	resp, err := t.client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("warning: telegram notification for order %d failed: %v", orderID, err)
		return
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("warning: failed to close telegram response body: %v", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		log.Printf("warning: telegram API returned status %d for order %d", resp.StatusCode, orderID)
	}
}
