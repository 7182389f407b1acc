package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/pix/internal/entity"
	"github.com/samandr77/microservices/pix/pkg/brcode"
)

// @title PIX API
// @version 1.0
// @description Issues PIX "copia e cola" payloads and QR codes for static charges
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks -typed

type Service interface {
	CreatePixCharge(ctx context.Context, req entity.PixChargeRequest) (entity.PixCharge, error)
	DecodePayload(ctx context.Context, payload string) (brcode.Payload, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s: s,
	}
}

// HealthHandler godoc
// @Summary Health check
// @Tags health
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Ping checks that the API key is accepted.
// @Summary Test endpoint
// @Tags health
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse
// @Router /test [get]
// @Security ApiKeyAuth
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, MessageResponse{Message: "Hello"})
}

type CreatePixRequest struct {
	Amount      *decimal.Decimal `json:"amount" swaggertype:"number" example:"150.00"`
	Description string           `json:"description" example:"Pedido 99"`
	PixKey      string           `json:"pixkey,omitempty" example:"user@bank.com"`
	TxID        string           `json:"txid,omitempty" example:"ORDER99"`
}

type CreatePixResponse struct {
	Message         string `json:"message"`
	Amount          string `json:"amount"`
	Description     string `json:"description"`
	TxID            string `json:"txid"`
	Pix             string `json:"pix"`
	QRCode          string `json:"qrcode"`
	QRCodeMediaType string `json:"qrcodeMediaType"`
}

// CreatePix issues a PIX charge for the configured merchant
// @Summary Create PIX charge
// @Description Builds the BR Code payload and a base64 PNG QR code
// @Tags pix
// @Accept json
// @Produce json
// @Param CreatePixRequest body CreatePixRequest true "Charge"
// @Success 200 {object} CreatePixResponse
// @Failure 400 {object} ErrorResponse "Missing amount or description"
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Invalid charge data"
// @Failure 500 {object} ErrorResponse
// @Router /pay [post]
// @Security ApiKeyAuth
func (h *Handler) CreatePix(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePixRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	if req.Amount == nil || req.Description == "" {
		SendJSONErr(ctx, w, http.StatusBadRequest, errors.New("amount and description are required"),
			"Missing 'amount' or 'description'")
		return
	}

	if !req.Amount.IsPositive() {
		SendJSONErr(ctx, w, http.StatusUnprocessableEntity,
			fmt.Errorf("not positive amount %s", req.Amount), "Amount must be positive")
		return
	}

	charge, err := h.s.CreatePixCharge(ctx, entity.PixChargeRequest{
		PixKey:      req.PixKey,
		Amount:      req.Amount,
		Description: req.Description,
		TxID:        req.TxID,
	})
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid charge data")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create PIX charge")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, CreatePixResponse{
		Message:         "Payment request received",
		Amount:          brcode.FormatAmount(*req.Amount),
		Description:     charge.Description,
		TxID:            charge.TxID,
		Pix:             charge.Payload,
		QRCode:          charge.QRCode.Content,
		QRCodeMediaType: charge.QRCode.MediaType,
	})
}

type DecodePixRequest struct {
	Payload string `json:"payload"`
}

type DecodePixResponse struct {
	PixKey               string `json:"pixKey"`
	Description          string `json:"description,omitempty"`
	MerchantName         string `json:"merchantName"`
	MerchantCity         string `json:"merchantCity"`
	MerchantCategoryCode string `json:"merchantCategoryCode"`
	Currency             string `json:"currency"`
	CountryCode          string `json:"countryCode"`
	Amount               string `json:"amount,omitempty"`
	TxID                 string `json:"txid"`
	Expiration           string `json:"expiration,omitempty"`
	CRC                  string `json:"crc"`
}

// DecodePix reads back a PIX payload
// @Summary Decode PIX payload
// @Description Verifies the CRC of a "copia e cola" payload and returns its fields
// @Tags pix
// @Accept json
// @Produce json
// @Param DecodePixRequest body DecodePixRequest true "Payload"
// @Success 200 {object} DecodePixResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Invalid payload"
// @Router /pix/decode [post]
// @Security ApiKeyAuth
func (h *Handler) DecodePix(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DecodePixRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	p, err := h.s.DecodePayload(ctx, req.Payload)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidArgument) {
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid PIX payload")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to decode PIX payload")
		}

		return
	}

	resp := DecodePixResponse{
		PixKey:               p.PixKey,
		Description:          p.Description,
		MerchantName:         p.MerchantName,
		MerchantCity:         p.MerchantCity,
		MerchantCategoryCode: p.MerchantCategoryCode,
		Currency:             p.Currency,
		CountryCode:          p.CountryCode,
		TxID:                 p.TxID,
		Expiration:           p.Expiration,
		CRC:                  p.CRC,
	}

	if p.Amount != nil {
		resp.Amount = brcode.FormatAmount(*p.Amount)
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}
