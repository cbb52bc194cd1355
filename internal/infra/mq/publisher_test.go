//go:build unit

package mq

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	sent   []published
	err    error
	closed bool
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	now := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)
	ch := &fakeChannel{}
	p := &Publisher{ch: ch, exchange: "bookings", now: func() time.Time { return now }}

	err := p.Publish(context.Background(), "booking.created", map[string]any{"booking_id": 12})
	require.NoError(t, err)
	require.Len(t, ch.sent, 1)

	got := ch.sent[0]
	assert.Equal(t, "bookings", got.exchange)
	assert.Equal(t, "booking.created", got.key)
	assert.Equal(t, "application/json", got.msg.ContentType)
	assert.Equal(t, amqp.Persistent, got.msg.DeliveryMode)
	assert.Equal(t, "booking.created", got.msg.Type)
	assert.Equal(t, now, got.msg.Timestamp)
	assert.NotEmpty(t, got.msg.MessageId)

	var body map[string]any
	require.NoError(t, json.Unmarshal(got.msg.Body, &body))
	assert.Equal(t, 12.0, body["booking_id"])
}

func TestPublisher_Errors(t *testing.T) {
	t.Run("broker failure", func(t *testing.T) {
		p := &Publisher{ch: &fakeChannel{err: errors.New("channel closed")}, exchange: "bookings", now: time.Now}

		err := p.Publish(context.Background(), "booking.deleted", struct{}{})
		assert.ErrorContains(t, err, "publish booking.deleted")
	})

	t.Run("unmarshalable payload", func(t *testing.T) {
		ch := &fakeChannel{}
		p := &Publisher{ch: ch, exchange: "bookings", now: time.Now}

		err := p.Publish(context.Background(), "booking.created", make(chan int))
		assert.Error(t, err)
		assert.Empty(t, ch.sent)
	})
}

func TestPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := &Publisher{ch: ch}

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), "booking.created", nil))
}
