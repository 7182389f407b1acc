package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samandr77/microservices/pix/internal/entity"
	"github.com/samandr77/microservices/pix/pkg/brcode"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

// Renderer turns a payload into a scannable image. The payload is opaque to it.
type Renderer interface {
	Render(payload string) (entity.Image, error)
}

type Publisher interface {
	PublishChargeIssued(ctx context.Context, merchant entity.Merchant, charge entity.PixCharge)
}

type Service struct {
	merchant  entity.Merchant
	builder   *brcode.Builder
	renderer  Renderer
	publisher Publisher
}

func New(merchant entity.Merchant, builder *brcode.Builder, renderer Renderer, publisher Publisher) *Service {
	return &Service{
		merchant:  merchant,
		builder:   builder,
		renderer:  renderer,
		publisher: publisher,
	}
}

// CreatePixCharge builds the payload for the configured merchant, renders its QR code and announces the charge.
func (s *Service) CreatePixCharge(ctx context.Context, req entity.PixChargeRequest) (entity.PixCharge, error) {
	in := req.Input(s.merchant)

	payload, err := s.builder.Generate(in)
	if err != nil {
		return entity.PixCharge{}, fmt.Errorf("%w: %w", entity.ErrInvalidArgument, err)
	}

	img, err := s.renderer.Render(payload)
	if err != nil {
		return entity.PixCharge{}, fmt.Errorf("render qr code: %w", err)
	}

	charge := entity.PixCharge{
		TxID:        in.TxID,
		PixKey:      in.PixKey,
		Amount:      req.Amount,
		Description: req.Description,
		Payload:     payload,
		QRCode:      img,
		CreatedAt:   time.Now(),
	}

	s.publisher.PublishChargeIssued(ctx, s.merchant, charge)

	slog.InfoContext(ctx, "pix charge issued", "txid", charge.TxID, "amount", amountAttr(charge))

	return charge, nil
}

// DecodePayload reads back a payload produced by any PIX issuer.
func (s *Service) DecodePayload(ctx context.Context, payload string) (brcode.Payload, error) {
	p, err := brcode.Decode(payload)
	if err != nil {
		return brcode.Payload{}, fmt.Errorf("%w: %w", entity.ErrInvalidArgument, err)
	}

	slog.DebugContext(ctx, "pix payload decoded", "txid", p.TxID, "crc", p.CRC)

	return p, nil
}

func amountAttr(c entity.PixCharge) string {
	if c.Amount == nil {
		return "open"
	}

	return brcode.FormatAmount(*c.Amount)
}
