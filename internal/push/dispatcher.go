package push

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/guardline/sos_guardian_system/internal/config"
	"google.golang.org/api/option"
)

//go:generate mockgen -source=dispatcher.go -destination=mocks/mock_dispatcher.go -package=mocks

// Payload - содержимое push-уведомления. При пустом Title/Body отправляется
// data-only сообщение без видимого уведомления.
type Payload struct {
	Title        string            `json:"title,omitempty"`
	Body         string            `json:"body,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
	HighPriority bool              `json:"high_priority,omitempty"`
}

// DeliveryResult - результат доставки на один push-адрес
type DeliveryResult struct {
	Success           bool
	ProviderMessageID string
	ErrorMessage      string
}

// Dispatcher отправляет одно уведомление на один push-адрес. Доставка на
// несколько адресов выполняется независимо по каждому адресу: сбой одного
// никогда не блокирует остальные.
type Dispatcher interface {
	Send(ctx context.Context, token string, payload Payload) DeliveryResult
}

// fcmSender - узкий интерфейс над messaging.Client для подмены в тестах
type fcmSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMDispatcher - реализация Dispatcher поверх Firebase Cloud Messaging
type FCMDispatcher struct {
	client fcmSender
}

// NewFCMClient инициализирует Firebase Admin SDK и возвращает messaging-клиент
func NewFCMClient(ctx context.Context, cfg *config.Config) (*messaging.Client, error) {
	if cfg.FirebaseCredentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	opt := option.WithCredentialsFile(cfg.FirebaseCredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Messaging client: %w", err)
	}
	return client, nil
}

func NewFCMDispatcher(client *messaging.Client) *FCMDispatcher {
	return &FCMDispatcher{client: client}
}

// Send выполняет ровно одну попытку доставки. Ограничение по времени задает
// контекст вызывающего; истекший дедлайн превращается в failed-результат, а не
// в зависшую отправку.
func (d *FCMDispatcher) Send(ctx context.Context, token string, payload Payload) DeliveryResult {
	messageID, err := d.client.Send(ctx, buildMessage(token, payload))
	if err != nil {
		return DeliveryResult{Success: false, ErrorMessage: err.Error()}
	}
	return DeliveryResult{Success: true, ProviderMessageID: messageID}
}

func buildMessage(token string, payload Payload) *messaging.Message {
	message := &messaging.Message{
		Token: token,
		Data:  payload.Data,
	}

	if payload.Title != "" || payload.Body != "" {
		message.Notification = &messaging.Notification{
			Title: payload.Title,
			Body:  payload.Body,
		}
	}

	if payload.HighPriority {
		message.Android = &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:     "default",
				ChannelID: "sos_alerts",
			},
		}
		message.APNS = &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Sound:    "default",
					Category: "SOS_ALERT",
				},
			},
		}
	} else {
		message.Android = &messaging.AndroidConfig{Priority: "normal"}
	}

	return message
}
