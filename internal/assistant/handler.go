package assistant

import (
	"encoding/json"
	"net/http"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// HandleChat — one conversation turn.
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"session_id"`
		Message   string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if payload.SessionID == "" || payload.Message == "" {
		http.Error(w, "missing session_id or message", http.StatusBadRequest)
		return
	}

	reply, err := h.svc.ProcessMessage(r.Context(), payload.SessionID, payload.Message)
	if err != nil {
		http.Error(w, "processing error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(reply)
}

// HandleSyncProducts — reload the catalog and re-index it.
func (h *Handler) HandleSyncProducts(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SyncProducts(r.Context()); err != nil {
		http.Error(w, "sync error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
