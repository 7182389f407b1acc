package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/pix/internal/entity"
)

// ChargeIssuedEvent lets reconciliation match an incoming PIX transfer to the charge by txid.
type ChargeIssuedEvent struct {
	TxID         string           `json:"txid"`
	PixKey       string           `json:"pix_key"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Description  string           `json:"description,omitempty"`
	MerchantName string           `json:"merchant_name"`
	MerchantCity string           `json:"merchant_city"`
	CreatedAt    time.Time        `json:"created_at"`
}

func NewChargeIssuedEvent(merchant entity.Merchant, charge entity.PixCharge) ChargeIssuedEvent {
	return ChargeIssuedEvent{
		TxID:         charge.TxID,
		PixKey:       charge.PixKey,
		Amount:       charge.Amount,
		Description:  charge.Description,
		MerchantName: merchant.Name,
		MerchantCity: merchant.City,
		CreatedAt:    charge.CreatedAt,
	}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	l            *slog.Logger
	w            messageWriter
	chargesTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return newProducer(l, w, topic)
}

func newProducer(l *slog.Logger, w messageWriter, topic string) *Producer {
	return &Producer{
		l:            l,
		w:            w,
		chargesTopic: topic,
	}
}

func (p *Producer) PublishChargeIssued(ctx context.Context, merchant entity.Merchant, charge entity.PixCharge) {
	b, err := json.Marshal(NewChargeIssuedEvent(merchant, charge))
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(charge.TxID),
		Value: b,
		Topic: p.chargesTopic,
	})
	if err != nil {
		p.l.ErrorContext(ctx, fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// NopProducer drops events. It is used when no brokers are configured.
type NopProducer struct{}

func (NopProducer) PublishChargeIssued(context.Context, entity.Merchant, entity.PixCharge) {}

func (NopProducer) Close() {}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
