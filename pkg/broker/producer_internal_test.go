package broker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/pix/internal/entity"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func (w *fakeWriter) Close() error {
	return nil
}

func TestProducer_PublishChargeIssued(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	p := newProducer(slog.Default(), w, "pix.charges.issued")

	amount := decimal.RequireFromString("150.00")
	createdAt := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

	p.PublishChargeIssued(context.Background(),
		entity.Merchant{Name: "SkipCreative", City: "Aracaju/SE"},
		entity.PixCharge{
			TxID:      "ORDER99",
			PixKey:    "user@bank.com",
			Amount:    &amount,
			Payload:   "not published",
			CreatedAt: createdAt,
		},
	)

	require.Len(t, w.msgs, 1)
	require.Equal(t, "pix.charges.issued", w.msgs[0].Topic)
	require.Equal(t, []byte("ORDER99"), w.msgs[0].Key)

	var event map[string]any

	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &event))
	require.Equal(t, "ORDER99", event["txid"])
	require.Equal(t, "150", event["amount"])
	require.Equal(t, "SkipCreative", event["merchant_name"])
	require.Equal(t, "2026-10-19T12:00:00Z", event["created_at"])
	require.NotContains(t, event, "payload")
}

func TestProducer_WriteFailureIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	w := &fakeWriter{err: errors.New("broker down")}
	p := newProducer(slog.New(slog.NewTextHandler(&buf, nil)), w, "pix.charges.issued")

	p.PublishChargeIssued(context.Background(), entity.Merchant{}, entity.PixCharge{TxID: "TX1"})

	require.Contains(t, buf.String(), "broker down")
}
