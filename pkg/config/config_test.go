package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/pix/pkg/config"
)

// Tests here use t.Setenv and cannot run in parallel.

var keys = []string{
	"MERCHANT_NAME", "MERCHANT_CITY", "MERCHANT_PIX_KEY", "PIX_EXPIRATION", "PIX_LENIENT_CITY",
	"KAFKA_BROKERS", "KAFKA_CHARGES_TOPIC", "HTTP_API_KEY_ENABLED", "HTTP_API_KEY",
	"QRCODE_RECOVERY_LEVEL",
}

// unsetenv clears keys for the duration of the test, including values set later by godotenv.
func unsetenv(t *testing.T) {
	t.Helper()

	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestNew_Defaults(t *testing.T) {
	unsetenv(t)
	t.Setenv("MERCHANT_NAME", "SkipCreative")
	t.Setenv("MERCHANT_CITY", "Aracaju/SE")
	t.Setenv("HTTP_API_KEY", "secret")

	c, err := config.New(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	require.Equal(t, 8080, c.HTTP.Port)
	require.True(t, c.HTTP.APIKeyEnabled)
	require.Equal(t, "secret", c.HTTP.APIKey)
	require.Equal(t, "SkipCreative", c.Merchant.Name)
	require.Equal(t, "Aracaju/SE", c.Merchant.City)
	require.Empty(t, c.Merchant.PixKey)
	require.Zero(t, c.PIX.Expiration)
	require.False(t, c.PIX.LenientCity)
	require.Equal(t, "low", c.QRCode.RecoveryLevel)
	require.Empty(t, c.Kafka.Brokers)
	require.Equal(t, "pix.charges.issued", c.Kafka.ChargesTopic)
}

func TestNew_EnvFile(t *testing.T) {
	unsetenv(t)

	path := filepath.Join(t.TempDir(), ".env")

	err := os.WriteFile(path, []byte(
		"HTTP_API_KEY=secret\n"+
			"MERCHANT_NAME=Example Store\n"+
			"MERCHANT_CITY=BRASILIA\n"+
			"MERCHANT_PIX_KEY=user@bank.com\n"+
			"PIX_EXPIRATION=5m\n"+
			"KAFKA_BROKERS=kafka-1:9092,kafka-2:9092\n",
	), 0o600)
	require.NoError(t, err)

	// godotenv does not override variables that are already set.
	t.Setenv("MERCHANT_NAME", "Other Store")

	c, err := config.New(path)
	require.NoError(t, err)

	require.Equal(t, "Other Store", c.Merchant.Name)
	require.Equal(t, "BRASILIA", c.Merchant.City)
	require.Equal(t, "user@bank.com", c.Merchant.PixKey)
	require.Equal(t, 5*time.Minute, c.PIX.Expiration)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Kafka.Brokers)
}

func TestNew_MissingMerchant(t *testing.T) {
	unsetenv(t)
	t.Setenv("HTTP_API_KEY", "secret")

	_, err := config.New(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorContains(t, err, "MERCHANT_NAME")
}

func TestNew_MissingAPIKey(t *testing.T) {
	unsetenv(t)
	t.Setenv("MERCHANT_NAME", "SkipCreative")
	t.Setenv("MERCHANT_CITY", "Aracaju/SE")

	_, err := config.New(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorContains(t, err, "HTTP_API_KEY")
}
