package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/pix/internal/api"
	"github.com/samandr77/microservices/pix/internal/clients/qrcode"
	"github.com/samandr77/microservices/pix/internal/entity"
	"github.com/samandr77/microservices/pix/internal/service"
	"github.com/samandr77/microservices/pix/pkg/brcode"
	"github.com/samandr77/microservices/pix/pkg/broker"
	"github.com/samandr77/microservices/pix/pkg/config"
	"github.com/samandr77/microservices/pix/pkg/logger"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 5 * time.Second
)

type producer interface {
	service.Publisher
	Close()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level, cfg.Logger.Format)
	panicOnErr("create logger", err)

	level, err := qrcode.ParseRecoveryLevel(cfg.QRCode.RecoveryLevel)
	panicOnErr("parse qr recovery level", err)

	renderer := qrcode.NewRenderer(cfg.QRCode.Size, level)

	var p producer = broker.NopProducer{}
	if len(cfg.Kafka.Brokers) > 0 {
		p = broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.ChargesTopic)
	}
	defer p.Close()

	builder := brcode.NewBuilder(brcode.Options{
		Expiration:  cfg.PIX.Expiration,
		LenientCity: cfg.PIX.LenientCity,
	})

	merchant := entity.Merchant{
		Name:   cfg.Merchant.Name,
		City:   cfg.Merchant.City,
		PixKey: cfg.Merchant.PixKey,
	}

	s := service.New(merchant, builder, renderer, p)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port, "merchant", cfg.Merchant.Name)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err := server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
