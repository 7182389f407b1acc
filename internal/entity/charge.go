package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/pix/pkg/brcode"
)

// Merchant is the payee printed on every charge. It comes from configuration.
type Merchant struct {
	Name   string
	City   string
	PixKey string
}

type PixChargeRequest struct {
	// PixKey overrides the merchant key when set.
	PixKey      string
	Amount      *decimal.Decimal
	Description string
	TxID        string
}

// Input merges the request with the merchant identity.
func (r PixChargeRequest) Input(m Merchant) brcode.Input {
	key := r.PixKey
	if key == "" {
		key = m.PixKey
	}

	return brcode.Input{
		PixKey:       key,
		MerchantName: m.Name,
		MerchantCity: m.City,
		Amount:       r.Amount,
		Description:  r.Description,
		TxID:         brcode.SanitizeTxID(r.TxID),
	}
}

type PixCharge struct {
	TxID        string           `json:"txid"`
	PixKey      string           `json:"pixKey"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description string           `json:"description"`
	Payload     string           `json:"payload"`
	QRCode      Image            `json:"qrcode"`
	CreatedAt   time.Time        `json:"createdAt"`
}

type Image struct {
	MediaType string `json:"mediaType"`
	Content   string `json:"content"`
}
