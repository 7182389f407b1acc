package brcode

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Payload is the decoded content of a PIX payload.
type Payload struct {
	PixKey               string
	Description          string
	MerchantName         string
	MerchantCity         string
	MerchantCategoryCode string
	Currency             string
	CountryCode          string
	Amount               *decimal.Decimal
	TxID                 string
	Expiration           string
	CRC                  string
}

// Parse splits s into consecutive fields without interpreting them.
func Parse(s string) ([]Field, error) {
	var fields []Field

	for offset := 0; offset < len(s); {
		if len(s)-offset < 4 {
			return nil, fieldErr(strconv.Itoa(offset), ErrMalformedPayload, "truncated field header")
		}

		id := s[offset : offset+2]
		if !validID(id) {
			return nil, fieldErr(strconv.Itoa(offset), ErrMalformedPayload, "invalid id %q", id)
		}

		lengthStr := s[offset+2 : offset+4]
		if !isDigit(lengthStr[0]) || !isDigit(lengthStr[1]) {
			return nil, fieldErr(id, ErrMalformedPayload, "invalid length %q", lengthStr)
		}

		length, _ := strconv.Atoi(lengthStr)
		offset += 4

		if offset+length > len(s) {
			return nil, fieldErr(id, ErrMalformedPayload, "value needs %d bytes, %d left", length, len(s)-offset)
		}

		fields = append(fields, Field{ID: id, Value: s[offset : offset+length]})
		offset += length
	}

	return fields, nil
}

// requiredFields are the top-level fields every PIX payload carries. Amount (54) is optional.
var requiredFields = []string{
	IDMerchantAccountInformation,
	IDMerchantCategoryCode,
	IDTransactionCurrency,
	IDCountryCode,
	IDMerchantName,
	IDMerchantCity,
	IDAdditionalDataField,
	IDCRC,
}

// Verify checks that payload ends with a CRC field matching the rest of the payload.
// The checksum must be upper-case hex, as Generate writes it.
func Verify(payload string) error {
	body, crc, ok := splitCRC(payload)
	if !ok {
		return fieldErr(IDCRC, ErrMalformedPayload, "payload must end with %s and four hex digits", crcPlaceholder)
	}

	want := CRC16([]byte(body))
	if crc != want {
		return fieldErr(IDCRC, ErrChecksumMismatch, "got %s, want %s", crc, want)
	}

	return nil
}

// Decode verifies the checksum and extracts the known fields from payload.
func Decode(payload string) (Payload, error) {
	err := Verify(payload)
	if err != nil {
		return Payload{}, err
	}

	fields, err := Parse(payload)
	if err != nil {
		return Payload{}, err
	}

	if fields[0].ID != IDPayloadFormatIndicator || fields[0].Value != PayloadFormatIndicator {
		return Payload{}, fieldErr(IDPayloadFormatIndicator, ErrMalformedPayload, "payload must start with format indicator %s", PayloadFormatIndicator)
	}

	var p Payload

	seen := make(map[string]bool, len(fields))

	for i, f := range fields {
		if seen[f.ID] {
			return Payload{}, fieldErr(f.ID, ErrMalformedPayload, "duplicate field")
		}

		seen[f.ID] = true

		switch f.ID {
		case IDMerchantAccountInformation:
			err = p.decodeAccount(f.Value)
		case IDMerchantCategoryCode:
			p.MerchantCategoryCode = f.Value
		case IDTransactionCurrency:
			p.Currency = f.Value
		case IDTransactionAmount:
			var amount decimal.Decimal

			amount, err = decimal.NewFromString(f.Value)
			if err != nil {
				err = fieldErr(f.ID, ErrMalformedPayload, "amount %q: %s", f.Value, err)
			}

			p.Amount = &amount
		case IDCountryCode:
			p.CountryCode = f.Value
		case IDMerchantName:
			p.MerchantName = f.Value
		case IDMerchantCity:
			p.MerchantCity = f.Value
		case IDAdditionalDataField:
			err = p.decodeAdditional(f.Value)
		case IDCRC:
			if i != len(fields)-1 {
				err = fieldErr(f.ID, ErrMalformedPayload, "checksum must be the last field")
			}

			p.CRC = f.Value
		}

		if err != nil {
			return Payload{}, err
		}
	}

	for _, id := range requiredFields {
		if !seen[id] {
			return Payload{}, fieldErr(id, ErrMalformedPayload, "missing field")
		}
	}

	return p, nil
}

func (p *Payload) decodeAccount(value string) error {
	fields, err := Parse(value)
	if err != nil {
		return err
	}

	var gui string

	for _, f := range fields {
		switch f.ID {
		case IDAccountGUI:
			gui = f.Value
		case IDAccountKey:
			p.PixKey = f.Value
		case IDAccountDescription:
			p.Description = f.Value
		}
	}

	if !strings.EqualFold(gui, GUI) {
		return fieldErr(IDMerchantAccountInformation, ErrMalformedPayload, "unexpected GUI %q", gui)
	}

	if p.PixKey == "" {
		return fieldErr(IDMerchantAccountInformation, ErrMalformedPayload, "missing PIX key")
	}

	return nil
}

func (p *Payload) decodeAdditional(value string) error {
	fields, err := Parse(value)
	if err != nil {
		return err
	}

	for _, f := range fields {
		switch f.ID {
		case IDAdditionalTxID:
			p.TxID = f.Value
		case IDAdditionalExpiration:
			p.Expiration = f.Value
		}
	}

	return nil
}

func splitCRC(payload string) (body, crc string, ok bool) {
	if len(payload) < len(crcPlaceholder)+crcLength {
		return "", "", false
	}

	body = payload[:len(payload)-crcLength]
	crc = payload[len(payload)-crcLength:]

	if !strings.HasSuffix(body, crcPlaceholder) {
		return "", "", false
	}

	for i := range len(crc) {
		if !isHexDigit(crc[i]) {
			return "", "", false
		}
	}

	return body, crc, true
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'A' && b <= 'F')
}
