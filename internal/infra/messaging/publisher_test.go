//go:build unit

package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func (m *mockChannel) Close() error {
	return m.Called().Error(0)
}

func TestPublisher_PublishJSON(t *testing.T) {
	ctx := context.Background()
	ch := new(mockChannel)
	ch.On("ExchangeDeclare", "rental.events", "topic", true, false, false, false, amqp.Table(nil)).Return(nil)
	ch.On("PublishWithContext", ctx, "rental.events", "booking.created", false, false, mock.MatchedBy(func(msg amqp.Publishing) bool {
		var got map[string]string
		if err := json.Unmarshal(msg.Body, &got); err != nil {
			return false
		}
		return msg.ContentType == "application/json" &&
			msg.DeliveryMode == amqp.Persistent &&
			msg.Type == "booking.created" &&
			got["booking_id"] == "b-1"
	})).Return(nil)

	p, err := newPublisher(ch, "rental.events")
	require.NoError(t, err)

	err = p.PublishJSON(ctx, "booking.created", map[string]string{"booking_id": "b-1"})

	require.NoError(t, err)
	ch.AssertExpectations(t)
}

func TestPublisher_DeclareFailureClosesChannel(t *testing.T) {
	ch := new(mockChannel)
	ch.On("ExchangeDeclare", "rental.events", "topic", true, false, false, false, amqp.Table(nil)).Return(errors.New("access refused"))
	ch.On("Close").Return(nil)

	p, err := newPublisher(ch, "rental.events")

	require.Error(t, err)
	assert.Nil(t, p)
	ch.AssertExpectations(t)
}

func TestPublisher_ClosedRejectsPublish(t *testing.T) {
	ch := new(mockChannel)
	ch.On("ExchangeDeclare", "rental.events", "topic", true, false, false, false, amqp.Table(nil)).Return(nil)
	ch.On("Close").Return(nil)

	p, err := newPublisher(ch, "rental.events")
	require.NoError(t, err)
	require.NoError(t, p.Close())

	err = p.PublishJSON(context.Background(), "booking.cancelled", map[string]string{})

	assert.ErrorIs(t, err, ErrPublisherClosed)
}
