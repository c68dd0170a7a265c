package push

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/AhmedSalem104/voltyks/pkg/clients"
)

const DefaultFCMEndpoint = "https://fcm.googleapis.com/fcm/send"

var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrRejected         = errors.New("push rejected")
)

type fcmRequest struct {
	To           string            `json:"to"`
	Priority     string            `json:"priority"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Results []struct {
		Error string `json:"error,omitempty"`
	} `json:"results"`
}

// FCM sends pushes through the Firebase Cloud Messaging HTTP API.
type FCM struct {
	endpoint  string
	serverKey string
	client    clients.HTTPClientI
}

func NewFCM(endpoint, serverKey string, client clients.HTTPClientI) *FCM {
	if endpoint == "" {
		endpoint = DefaultFCMEndpoint
	}
	return &FCM{
		endpoint:  endpoint,
		serverKey: serverKey,
		client:    client,
	}
}

func (f *FCM) Send(ctx context.Context, token, title, body string, relatedRequestID *int64, notificationType string, data map[string]string) error {
	msg := newMessage(token, title, body, relatedRequestID, notificationType, data)
	payload, err := json.Marshal(fcmRequest{
		To:           msg.Token,
		Priority:     "high",
		Notification: fcmNotification{Title: msg.Title, Body: msg.Body},
		Data:         msg.payloadData(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode push: %w", err)
	}

	headers := http.Header{}
	headers.Set("Authorization", "key="+f.serverKey)
	statusCode, respBody, err := f.client.PostJSON(ctx, f.endpoint, headers, payload)
	if err != nil {
		return fmt.Errorf("failed to send push: %w", err)
	}
	if statusCode != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
	}

	var resp fcmResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return fmt.Errorf("failed to parse push response: %w", err)
	}
	if resp.Failure > 0 {
		reason := "unknown"
		if len(resp.Results) > 0 && resp.Results[0].Error != "" {
			reason = resp.Results[0].Error
		}
		return fmt.Errorf("%w: %s", ErrRejected, reason)
	}
	return nil
}
