package brcode_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/pix/pkg/brcode"
)

func TestParse(t *testing.T) {
	t.Parallel()

	fields, err := brcode.Parse("000201" + "0200" + "5802BR")
	require.NoError(t, err)
	require.Equal(t, []brcode.Field{
		{ID: "00", Value: "01"},
		{ID: "02", Value: ""},
		{ID: "58", Value: "BR"},
	}, fields)

	fields, err = brcode.Parse("")
	require.NoError(t, err)
	require.Empty(t, fields)
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"000",        // truncated header
		"0005012",    // value shorter than length
		"AB0201",     // non numeric id
		"00X201",     // non numeric length
		"0002015802", // trailing header without value
	} {
		_, err := brcode.Parse(s)
		require.ErrorIs(t, err, brcode.ErrMalformedPayload, s)
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	require.NoError(t, brcode.Verify(examplePayload+exampleCRC))

	err := brcode.Verify(examplePayload + "01F9")
	require.ErrorIs(t, err, brcode.ErrChecksumMismatch)

	tampered := []byte(examplePayload + exampleCRC)
	tampered[len(tampered)-20] = 'X'
	require.ErrorIs(t, brcode.Verify(string(tampered)), brcode.ErrChecksumMismatch)

	require.ErrorIs(t, brcode.Verify(examplePayload), brcode.ErrMalformedPayload)
	require.ErrorIs(t, brcode.Verify(examplePayload+"ZZZZ"), brcode.ErrMalformedPayload)
	require.ErrorIs(t, brcode.Verify(examplePayload+"01f8"), brcode.ErrMalformedPayload)
	require.ErrorIs(t, brcode.Verify("630"), brcode.ErrMalformedPayload)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	p, err := brcode.Decode(examplePayload + exampleCRC)
	require.NoError(t, err)

	require.Equal(t, "user@bank.com", p.PixKey)
	require.Equal(t, "Order 42", p.Description)
	require.Equal(t, "EXAMPLE STORE", p.MerchantName)
	require.Equal(t, "BRASILIA", p.MerchantCity)
	require.Equal(t, brcode.MerchantCategoryCode, p.MerchantCategoryCode)
	require.Equal(t, brcode.CurrencyBRL, p.Currency)
	require.Equal(t, brcode.CountryCodeBR, p.CountryCode)
	require.NotNil(t, p.Amount)
	require.Equal(t, "10.00", p.Amount.StringFixed(2))
	require.Equal(t, "TX1", p.TxID)
	require.Empty(t, p.Expiration)
	require.Equal(t, exampleCRC, p.CRC)
}

func TestDecode_WithoutAmount(t *testing.T) {
	t.Parallel()

	in := exampleInput()
	in.Amount = nil

	payload, err := brcode.Generate(in)
	require.NoError(t, err)

	p, err := brcode.Decode(payload)
	require.NoError(t, err)
	require.Nil(t, p.Amount)
}

func TestDecode_Rejects(t *testing.T) {
	t.Parallel()

	withCRC := func(body string) string {
		body += "6304"
		return body + brcode.CRC16([]byte(body))
	}

	tests := []struct {
		name    string
		payload string
		want    error
	}{
		{
			name:    "wrong format indicator",
			payload: withCRC("000202" + "26180014BR.GOV.BCB.PIX"),
			want:    brcode.ErrMalformedPayload,
		},
		{
			name:    "foreign GUI",
			payload: withCRC("000201" + "26250014BR.GOV.BCB.XYZ0103key"),
			want:    brcode.ErrMalformedPayload,
		},
		{
			name:    "missing key",
			payload: withCRC("000201" + "26180014BR.GOV.BCB.PIX"),
			want:    brcode.ErrMalformedPayload,
		},
		{
			name:    "bad amount",
			payload: withCRC("000201" + "26250014BR.GOV.BCB.PIX0103key" + "5403abc"),
			want:    brcode.ErrMalformedPayload,
		},
		{
			name:    "checksum mismatch",
			payload: examplePayload + "0000",
			want:    brcode.ErrChecksumMismatch,
		},
		{
			name:    "only format indicator",
			payload: withCRC("000201"),
			want:    brcode.ErrMalformedPayload,
		},
		{
			name:    "checksum inside another field",
			payload: "000201" + "0508" + "6304" + brcode.CRC16([]byte("000201"+"0508"+"6304")),
			want:    brcode.ErrMalformedPayload,
		},
		{
			name: "checksum before the last field",
			payload: withCRC("000201" + "26250014BR.GOV.BCB.PIX0103key" + "52040000" + "5303986" + "5802BR" +
				"5901A" + "6001B" + "63040000" + "62070503TX1"),
			want: brcode.ErrMalformedPayload,
		},
		{
			name:    "duplicate field",
			payload: withCRC(strings.Join(exampleFields, "") + "5802BR"),
			want:    brcode.ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := brcode.Decode(tt.payload)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

// exampleFields are the top-level fields of examplePayload without the checksum.
var exampleFields = []string{
	"000201",
	"26470014BR.GOV.BCB.PIX0113user@bank.com0208Order 42",
	"52040000",
	"5303986",
	"540510.00",
	"5802BR",
	"5913EXAMPLE STORE",
	"6008BRASILIA",
	"62070503TX1",
}

func TestDecode_MissingField(t *testing.T) {
	t.Parallel()

	require.Equal(t, examplePayload, strings.Join(exampleFields, "")+"6304")

	for _, id := range []string{
		brcode.IDMerchantAccountInformation,
		brcode.IDMerchantCategoryCode,
		brcode.IDTransactionCurrency,
		brcode.IDCountryCode,
		brcode.IDMerchantName,
		brcode.IDMerchantCity,
		brcode.IDAdditionalDataField,
	} {
		t.Run(id, func(t *testing.T) {
			t.Parallel()

			var sb strings.Builder

			for _, f := range exampleFields {
				if !strings.HasPrefix(f, id) {
					sb.WriteString(f)
				}
			}

			sb.WriteString("6304")
			body := sb.String()

			_, err := brcode.Decode(body + brcode.CRC16([]byte(body)))
			require.ErrorIs(t, err, brcode.ErrMalformedPayload)

			var fe *brcode.FieldError
			require.ErrorAs(t, err, &fe)
			require.Equal(t, id, fe.Field)
		})
	}

	t.Run("amount is optional", func(t *testing.T) {
		t.Parallel()

		body := strings.Join(append(exampleFields[:4:4], exampleFields[5:]...), "") + "6304"

		p, err := brcode.Decode(body + brcode.CRC16([]byte(body)))
		require.NoError(t, err)
		require.Nil(t, p.Amount)
	})
}
