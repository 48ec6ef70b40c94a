package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Xausdorf/promptpay-qr/internal/domain/promptpay"
	"github.com/Xausdorf/promptpay-qr/internal/usecase/generateqr"
	"github.com/Xausdorf/promptpay-qr/internal/usecase/verifypayload"
)

type Handler struct {
	generateQRUC    *generateqr.UseCase
	verifyPayloadUC *verifypayload.UseCase
}

func NewHandler(generateQRUC *generateqr.UseCase, verifyPayloadUC *verifypayload.UseCase) *Handler {
	return &Handler{
		generateQRUC:    generateQRUC,
		verifyPayloadUC: verifyPayloadUC,
	}
}

type PayloadResponse struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	Amount     string `json:"amount"`
	Payload    string `json:"payload"`
}

type VerifyRequest struct {
	Payload string `json:"payload"`
}

type VerifyResponse struct {
	FormatIndicator  string `json:"format_indicator"`
	InitiationMethod string `json:"initiation_method"`
	ApplicationID    string `json:"application_id"`
	Identifier       string `json:"identifier"`
	Currency         string `json:"currency"`
	Amount           string `json:"amount,omitempty"`
	Country          string `json:"country"`
	CRC              string `json:"crc"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) HandleQR(w http.ResponseWriter, r *http.Request) {
	req, ok := parseRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.generateQRUC.Execute(req)
	if err != nil {
		writeEncodeError(w, err, "qr generation failed")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("X-Payload-Id", resp.ID.String())
	_, _ = w.Write(resp.PNG)
}

func (h *Handler) HandlePayload(w http.ResponseWriter, r *http.Request) {
	req, ok := parseRequest(w, r)
	if !ok {
		return
	}

	p, err := h.generateQRUC.Encode(req)
	if err != nil {
		writeEncodeError(w, err, "payload generation failed")
		return
	}

	writeJSON(w, http.StatusOK, PayloadResponse{
		ID:         p.ID.String(),
		Identifier: p.Identifier,
		Amount:     p.Amount,
		Payload:    p.Content,
	})
}

func (h *Handler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Payload == "" {
		writeError(w, http.StatusBadRequest, "payload required")
		return
	}

	p, err := h.verifyPayloadUC.Execute(req.Payload)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := VerifyResponse{
		FormatIndicator:  p.FormatIndicator,
		InitiationMethod: p.InitiationMethod,
		ApplicationID:    p.ApplicationID,
		Identifier:       p.Identifier,
		Currency:         p.Currency,
		Country:          p.Country,
		CRC:              p.CRC,
	}
	if p.Amount != nil {
		resp.Amount = promptpay.FormatAmount(*p.Amount)
	}
	writeJSON(w, http.StatusOK, resp)
}

func parseRequest(w http.ResponseWriter, r *http.Request) (generateqr.Request, bool) {
	mobile := chi.URLParam(r, "mobile")
	if mobile == "" {
		writeError(w, http.StatusBadRequest, "mobile required")
		return generateqr.Request{}, false
	}

	amountStr := r.URL.Query().Get("amount")
	if amountStr == "" {
		writeError(w, http.StatusBadRequest, "amount query param required")
		return generateqr.Request{}, false
	}

	amount, err := promptpay.ParseAmount(amountStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return generateqr.Request{}, false
	}

	return generateqr.Request{Mobile: mobile, Amount: amount}, true
}

func writeEncodeError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, promptpay.ErrInvalidAmount) {
		writeError(w, http.StatusBadRequest, "invalid amount")
		return
	}
	writeError(w, http.StatusInternalServerError, fallback)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
