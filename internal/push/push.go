// Package push delivers notifications to devices. Each dispatcher sends one
// notification to one device token.
package push

import (
	"context"
	"strconv"

	"go.uber.org/zap"
)

// Message is the payload every backend carries for a single device.
type Message struct {
	Token            string            `json:"token"`
	Title            string            `json:"title"`
	Body             string            `json:"body"`
	RelatedRequestID *int64            `json:"relatedRequestId,omitempty"`
	Type             string            `json:"type"`
	Data             map[string]string `json:"data,omitempty"`
}

func newMessage(token, title, body string, relatedRequestID *int64, notificationType string, data map[string]string) Message {
	return Message{
		Token:            token,
		Title:            title,
		Body:             body,
		RelatedRequestID: relatedRequestID,
		Type:             notificationType,
		Data:             data,
	}
}

// payloadData merges the notification type and related request into the
// free-form data map sent to devices.
func (m Message) payloadData() map[string]string {
	out := make(map[string]string, len(m.Data)+2)
	for k, v := range m.Data {
		out[k] = v
	}
	out["notificationType"] = m.Type
	if m.RelatedRequestID != nil {
		out["relatedRequestId"] = strconv.FormatInt(*m.RelatedRequestID, 10)
	}
	return out
}

// Log writes pushes to the log instead of delivering them.
type Log struct{}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Send(_ context.Context, token, title, body string, relatedRequestID *int64, notificationType string, data map[string]string) error {
	msg := newMessage(token, title, body, relatedRequestID, notificationType, data)
	zap.L().Info("Push notification",
		zap.String("token", msg.Token),
		zap.String("title", msg.Title),
		zap.String("type", msg.Type),
		zap.Any("data", msg.payloadData()),
	)
	return nil
}
