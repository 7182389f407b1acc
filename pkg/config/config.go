package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP     HTTP
	Logger   Logger
	Merchant Merchant
	PIX      PIX
	QRCode   QRCode
	Kafka    Kafka
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"true"`
	APIKey        string `env:"HTTP_API_KEY"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Merchant struct {
	Name   string `env:"MERCHANT_NAME"`
	City   string `env:"MERCHANT_CITY"`
	PixKey string `env:"MERCHANT_PIX_KEY" envDefault:""`
}

type PIX struct {
	Expiration  time.Duration `env:"PIX_EXPIRATION" envDefault:"0s"`
	LenientCity bool          `env:"PIX_LENIENT_CITY" envDefault:"false"`
}

type QRCode struct {
	Size          int    `env:"QRCODE_SIZE" envDefault:"330"`
	RecoveryLevel string `env:"QRCODE_RECOVERY_LEVEL" envDefault:"low"`
}

type Kafka struct {
	Brokers      []string `env:"KAFKA_BROKERS" envDefault:""`
	ChargesTopic string   `env:"KAFKA_CHARGES_TOPIC" envDefault:"pix.charges.issued"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
