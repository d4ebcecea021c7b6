package notification

import (
	"errors"
	"maps"
)

var ErrInvalidChannel = errors.New("invalid notification channel")

type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
	// ChannelEvent publishes to the message bus for other services.
	ChannelEvent Channel = "event"
)

func ParseChannel(s string) (Channel, error) {
	switch c := Channel(s); c {
	case ChannelEmail, ChannelSMS, ChannelEvent:
		return c, nil
	default:
		return "", ErrInvalidChannel
	}
}

// Topics double as AMQP routing keys.
const (
	TopicBookingCreated     = "booking.created"
	TopicBookingRescheduled = "booking.rescheduled"
	TopicBookingCancelled   = "booking.cancelled"
	TopicBookingConfirmed   = "booking.confirmed"
	TopicBookingCompleted   = "booking.completed"
	TopicBookingPaid        = "booking.paid"
)

type Message struct {
	Topic   string
	Subject string
	Body    string
}

type Options struct {
	// Data is attached to the event payload and stored with the outbox job.
	Data map[string]any
}

// Payload is the persisted and published form of a message.
type Payload struct {
	Topic   string         `json:"topic"`
	Subject string         `json:"subject"`
	Body    string         `json:"body"`
	Data    map[string]any `json:"data,omitempty"`
}

func NewPayload(msg Message, opts Options) Payload {
	return Payload{
		Topic:   msg.Topic,
		Subject: msg.Subject,
		Body:    msg.Body,
		Data:    maps.Clone(opts.Data),
	}
}

func (p Payload) Message() Message {
	return Message{Topic: p.Topic, Subject: p.Subject, Body: p.Body}
}
