package push

import (
	"context"
	"fmt"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSender подменяет messaging.Client и запоминает последнее сообщение
type fakeSender struct {
	lastMessage *messaging.Message
	messageID   string
	err         error
}

func (s *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	s.lastMessage = message
	if s.err != nil {
		return "", s.err
	}
	return s.messageID, nil
}

func TestFCMDispatcher_Send_Success(t *testing.T) {
	// Подготовка
	sender := &fakeSender{messageID: "projects/x/messages/1"}
	dispatcher := &FCMDispatcher{client: sender}

	payload := Payload{
		Title:        "SOS Alert!",
		Body:         "Анна has triggered an SOS alert!",
		Data:         map[string]string{"type": "sos_alert"},
		HighPriority: true,
	}

	// Действие
	result := dispatcher.Send(context.Background(), "device-token", payload)

	// Проверки
	assert.True(t, result.Success)
	assert.Equal(t, "projects/x/messages/1", result.ProviderMessageID)
	assert.Empty(t, result.ErrorMessage)

	message := sender.lastMessage
	require.NotNil(t, message)
	assert.Equal(t, "device-token", message.Token)
	require.NotNil(t, message.Notification)
	assert.Equal(t, "SOS Alert!", message.Notification.Title)

	// Высокоприоритетное уведомление пробивает doze-режим и несет SOS-категорию
	require.NotNil(t, message.Android)
	assert.Equal(t, "high", message.Android.Priority)
	assert.Equal(t, "sos_alerts", message.Android.Notification.ChannelID)
	require.NotNil(t, message.APNS)
	assert.Equal(t, "SOS_ALERT", message.APNS.Payload.Aps.Category)
}

func TestFCMDispatcher_Send_DataOnly(t *testing.T) {
	// Подготовка: обновление местоположения без видимого уведомления
	sender := &fakeSender{messageID: "projects/x/messages/2"}
	dispatcher := &FCMDispatcher{client: sender}

	payload := Payload{
		Data: map[string]string{"type": "location_update", "longitude": "37.62"},
	}

	// Действие
	result := dispatcher.Send(context.Background(), "device-token", payload)

	// Проверки
	assert.True(t, result.Success)

	message := sender.lastMessage
	require.NotNil(t, message)
	assert.Nil(t, message.Notification)
	assert.Equal(t, payload.Data, message.Data)
	require.NotNil(t, message.Android)
	assert.Equal(t, "normal", message.Android.Priority)
	assert.Nil(t, message.APNS)
}

func TestFCMDispatcher_Send_ProviderError(t *testing.T) {
	// Подготовка
	sender := &fakeSender{err: fmt.Errorf("requested entity was not found")}
	dispatcher := &FCMDispatcher{client: sender}

	// Действие
	result := dispatcher.Send(context.Background(), "dead-token", Payload{Title: "SOS Alert!"})

	// Проверки: ровно одна попытка, сбой фиксируется в результате
	assert.False(t, result.Success)
	assert.Empty(t, result.ProviderMessageID)
	assert.Equal(t, "requested entity was not found", result.ErrorMessage)
}
