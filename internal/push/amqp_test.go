package push

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestAMQP_Send(t *testing.T) {
	requestID := int64(42)

	t.Run("Publishes a persistent message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		publisher := NewMockPublisher(ctrl)
		publisher.EXPECT().PublishWithContext(gomock.Any(), "notifications", "push.Process_Terminated", false, false, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) error {
				assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
				assert.Equal(t, "application/json", msg.ContentType)

				var got Message
				require.NoError(t, json.Unmarshal(msg.Body, &got))
				assert.Equal(t, "device", got.Token)
				assert.Equal(t, "Closed", got.Title)
				assert.Equal(t, int64(42), *got.RelatedRequestID)
				assert.Equal(t, "timeout", got.Data["reason"])
				return nil
			})

		dispatcher := NewAMQP(publisher, "notifications")
		err := dispatcher.Send(context.Background(), "device", "Closed", "Body", &requestID, "Process_Terminated", map[string]string{"reason": "timeout"})
		assert.NoError(t, err)
		assert.NoError(t, dispatcher.Close())
	})

	t.Run("Publish failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		publisher := NewMockPublisher(ctrl)
		publisher.EXPECT().PublishWithContext(gomock.Any(), gomock.Any(), gomock.Any(), false, false, gomock.Any()).
			Return(amqp.ErrClosed)

		err := NewAMQP(publisher, "notifications").Send(context.Background(), "device", "t", "b", nil, "Process_Rated", nil)
		assert.True(t, errors.Is(err, amqp.ErrClosed))
	})
}

func TestLog_Send(t *testing.T) {
	requestID := int64(1)
	err := NewLog().Send(context.Background(), "device", "t", "b", &requestID, "Process_Rated", map[string]string{"k": "v"})
	assert.NoError(t, err)
}
