package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"trade-entry-go/internal/entry"
	"trade-entry-go/internal/ledger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// APIHandler holds dependencies for the API endpoints.
type APIHandler struct {
	log       *zap.Logger
	transport entry.Transport
	policy    entry.Policy
	store     *ledger.Store // nil unless the local sink is configured

	mu       sync.Mutex
	sessions map[string]*entry.Controller
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(log *zap.Logger, transport entry.Transport, policy entry.Policy, store *ledger.Store) *APIHandler {
	return &APIHandler{
		log:       log,
		transport: transport,
		policy:    policy,
		store:     store,
		sessions:  make(map[string]*entry.Controller),
	}
}

// entryView is the JSON snapshot of a session's current entry: raw
// strings as the user typed them plus the two derived fields.
type entryView struct {
	Username  string  `json:"username"`
	Date      string  `json:"date"`
	Item      string  `json:"item"`
	Expiry    *string `json:"expiry"`
	LotSize   string  `json:"lotsize"`
	NumberLot string  `json:"numberlot"`
	BuyQty    float64 `json:"buyqty"`
	SellQty   string  `json:"sellqty"`
	SellPrice string  `json:"sellprice"`
	BuyPrice  string  `json:"buyprice"`
}

func viewOf(e entry.TradeEntry) entryView {
	v := entryView{
		Username:  e.Username,
		Item:      e.Item,
		LotSize:   e.LotSize,
		NumberLot: e.NumberLot,
		BuyQty:    e.BuyQty,
		SellQty:   e.SellQty,
		SellPrice: e.SellPrice,
		BuyPrice:  e.BuyPrice,
	}
	if !e.TradeDate.IsZero() {
		v.Date = e.TradeDate.Format(entry.DateLayout)
	}
	if e.Expiry != nil {
		s := e.Expiry.Format(entry.DateLayout)
		v.Expiry = &s
	}
	return v
}

func (h *APIHandler) session(id string) (*entry.Controller, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.sessions[id]
	return c, ok
}

// CreateSessionHandler starts a new form session.
func (h *APIHandler) CreateSessionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := uuid.NewString()
	c := entry.NewController(h.log.Named("session"), h.transport, h.policy, time.Now())

	h.mu.Lock()
	h.sessions[id] = c
	h.mu.Unlock()

	h.log.Info("Session created", zap.String("session_id", id))
	writeJSON(w, map[string]any{"session_id": id, "entry": viewOf(c.Entry())})
}

type editRequest struct {
	SessionID string `json:"session_id"`
	Field     string `json:"field"`
	Value     string `json:"value"`
}

// EditHandler applies one field edit to a session. Date fields take
// YYYY-MM-DD strings; an empty value clears them.
func (h *APIHandler) EditHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req editRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	c, ok := h.session(req.SessionID)
	if !ok {
		http.Error(w, "Unknown session", http.StatusNotFound)
		return
	}

	var err error
	switch req.Field {
	case entry.FieldDate, entry.FieldExpiry:
		var d *time.Time
		if req.Value != "" {
			parsed, perr := time.Parse(entry.DateLayout, req.Value)
			if perr != nil {
				http.Error(w, "Invalid date, want YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			d = &parsed
		}
		err = c.EditDate(req.Field, d)
	default:
		err = c.EditField(req.Field, req.Value)
	}

	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, map[string]any{"entry": viewOf(c.Entry())})
}

type submitRequest struct {
	SessionID string `json:"session_id"`
}

// SubmitHandler runs the submit gate for a session and reports exactly
// one outcome message.
func (h *APIHandler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	c, ok := h.session(req.SessionID)
	if !ok {
		http.Error(w, "Unknown session", http.StatusNotFound)
		return
	}

	err := c.Submit(r.Context())
	switch {
	case err == nil:
		writeJSON(w, map[string]any{"ok": true, "message": "submission succeeded"})
	default:
		status := http.StatusBadGateway
		message := "submission failed"
		var missing *entry.MissingFieldError
		if errors.As(err, &missing) {
			status = http.StatusUnprocessableEntity
			message = missing.Error()
		} else if errors.Is(err, entry.ErrSubmitInFlight) {
			status = http.StatusConflict
			message = err.Error()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "message": message})
	}
}

// TradesHandler returns all saved trade records, newest first. Only
// available when the local ledger sink is configured.
func (h *APIHandler) TradesHandler(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		http.Error(w, "Local ledger not configured", http.StatusNotFound)
		return
	}

	records, err := h.store.Recent(r.Context())
	if err != nil {
		h.log.Error("Failed to get trades from database", zap.Error(err))
		http.Error(w, "Failed to get trades", http.StatusInternalServerError)
		return
	}

	writeJSON(w, records)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
