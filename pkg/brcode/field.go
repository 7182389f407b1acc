// Package brcode builds and reads PIX "copia e cola" payloads: EMV merchant-presented
// BR Codes made of TLV fields and terminated by a CRC16 checksum.
package brcode

import (
	"strconv"
	"strings"
)

// Top-level field IDs.
const (
	IDPayloadFormatIndicator     = "00"
	IDMerchantAccountInformation = "26"
	IDMerchantCategoryCode       = "52"
	IDTransactionCurrency        = "53"
	IDTransactionAmount          = "54"
	IDCountryCode                = "58"
	IDMerchantName               = "59"
	IDMerchantCity               = "60"
	IDAdditionalDataField        = "62"
	IDCRC                        = "63"
)

// Merchant account information (26) sub-field IDs.
const (
	IDAccountGUI         = "00"
	IDAccountKey         = "01"
	IDAccountDescription = "02"
)

// Additional data field (62) sub-field IDs.
const (
	IDAdditionalTxID       = "05"
	IDAdditionalExpiration = "50"
)

const (
	PayloadFormatIndicator = "01"
	GUI                    = "BR.GOV.BCB.PIX"
	MerchantCategoryCode   = "0000"
	CurrencyBRL            = "986"
	CountryCodeBR          = "BR"
	DefaultTxID            = "TX12345"

	MaxValueLength = 99

	// crcPlaceholder is the tag and length of the CRC field, which take part in the checksum.
	crcPlaceholder = IDCRC + "04"
	crcLength      = 4
)

// Field is one TLV element. Value length is counted in UTF-8 bytes.
type Field struct {
	ID    string
	Value string
}

// Format encodes a single field as ID, two-digit byte length and value.
func Format(id, value string) (string, error) {
	if !validID(id) {
		return "", fieldErr(id, ErrInvalidField, "id must be two decimal digits")
	}

	if len(value) > MaxValueLength {
		return "", fieldErr(id, ErrFieldTooLong, "value is %d bytes, max %d", len(value), MaxValueLength)
	}

	var sb strings.Builder

	sb.Grow(4 + len(value))
	sb.WriteString(id)

	if len(value) < 10 {
		sb.WriteByte('0')
	}

	sb.WriteString(strconv.Itoa(len(value)))
	sb.WriteString(value)

	return sb.String(), nil
}

func validID(id string) bool {
	return len(id) == 2 && isDigit(id[0]) && isDigit(id[1])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// encoder appends fields and keeps the first error.
type encoder struct {
	sb  strings.Builder
	err error
}

func (e *encoder) field(id, value string) {
	if e.err != nil {
		return
	}

	s, err := Format(id, value)
	if err != nil {
		e.err = err
		return
	}

	e.sb.WriteString(s)
}

func (e *encoder) result() (string, error) {
	if e.err != nil {
		return "", e.err
	}

	return e.sb.String(), nil
}
