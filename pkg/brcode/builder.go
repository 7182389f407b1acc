package brcode

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const expirationLayout = "20060102150405"

// Input describes a single static PIX charge.
type Input struct {
	PixKey       string
	MerchantName string
	MerchantCity string
	// Amount is omitted from the payload when nil.
	Amount      *decimal.Decimal
	Description string
	TxID        string
}

type Options struct {
	// Expiration adds an expiration timestamp (now + Expiration, UTC) to the additional data field when positive.
	Expiration time.Duration
	// Now is used for the expiration timestamp. Defaults to time.Now.
	Now func() time.Time
	// LenientCity keeps digits and spaces in the merchant city.
	LenientCity bool
}

// Builder assembles payloads. It holds no mutable state and is safe for concurrent use.
type Builder struct {
	opts Options
}

func NewBuilder(opts Options) *Builder {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Builder{opts: opts}
}

var defaultBuilder = NewBuilder(Options{})

// Build returns the payload without its checksum, terminated by the CRC tag and length "6304".
func Build(in Input) (string, error) {
	return defaultBuilder.Build(in)
}

// Generate returns the complete payload ready to be encoded as a QR code or copied.
func Generate(in Input) (string, error) {
	return defaultBuilder.Generate(in)
}

func (b *Builder) Build(in Input) (string, error) {
	err := validate(in)
	if err != nil {
		return "", err
	}

	name := SanitizeName(in.MerchantName)
	if name == "" {
		return "", fieldErr("merchant_name", ErrInvalidField, "no allowed characters in %q", in.MerchantName)
	}

	city := SanitizeCity(in.MerchantCity, b.opts.LenientCity)
	if city == "" {
		return "", fieldErr("merchant_city", ErrInvalidField, "no allowed characters in %q", in.MerchantCity)
	}

	account, err := b.merchantAccount(in)
	if err != nil {
		return "", err
	}

	additional, err := b.additionalData(in)
	if err != nil {
		return "", err
	}

	var e encoder

	e.field(IDPayloadFormatIndicator, PayloadFormatIndicator)
	e.field(IDMerchantAccountInformation, account)
	e.field(IDMerchantCategoryCode, MerchantCategoryCode)
	e.field(IDTransactionCurrency, CurrencyBRL)

	if in.Amount != nil {
		e.field(IDTransactionAmount, FormatAmount(*in.Amount))
	}

	e.field(IDCountryCode, CountryCodeBR)
	e.field(IDMerchantName, name)
	e.field(IDMerchantCity, city)
	e.field(IDAdditionalDataField, additional)

	payload, err := e.result()
	if err != nil {
		return "", err
	}

	return payload + crcPlaceholder, nil
}

func (b *Builder) Generate(in Input) (string, error) {
	payload, err := b.Build(in)
	if err != nil {
		return "", err
	}

	return payload + CRC16([]byte(payload)), nil
}

func (b *Builder) merchantAccount(in Input) (string, error) {
	var e encoder

	e.field(IDAccountGUI, GUI)
	e.field(IDAccountKey, in.PixKey)

	if desc := SanitizeDescription(in.Description); desc != "" {
		e.field(IDAccountDescription, desc)
	}

	return e.result()
}

func (b *Builder) additionalData(in Input) (string, error) {
	var e encoder

	e.field(IDAdditionalTxID, SanitizeTxID(in.TxID))

	if b.opts.Expiration > 0 {
		e.field(IDAdditionalExpiration, b.opts.Now().UTC().Add(b.opts.Expiration).Format(expirationLayout))
	}

	return e.result()
}

func validate(in Input) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"pix_key", in.PixKey},
		{"merchant_name", in.MerchantName},
		{"merchant_city", in.MerchantCity},
		{"description", in.Description},
		{"txid", in.TxID},
	} {
		if !utf8.ValidString(f.value) {
			return fieldErr(f.name, ErrEncoding, "not valid UTF-8")
		}
	}

	if strings.TrimSpace(in.PixKey) == "" {
		return fieldErr("pix_key", ErrInvalidField, "must not be empty")
	}

	if strings.TrimSpace(in.MerchantName) == "" {
		return fieldErr("merchant_name", ErrInvalidField, "must not be empty")
	}

	if strings.TrimSpace(in.MerchantCity) == "" {
		return fieldErr("merchant_city", ErrInvalidField, "must not be empty")
	}

	if in.Amount != nil && in.Amount.IsNegative() {
		return fieldErr("amount", ErrInvalidField, "must not be negative, got %s", in.Amount)
	}

	return nil
}
