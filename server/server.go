// Package server is the thin HTTP transport over the dialogue engine and
// the inventory dashboard reads.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	dialoguex "github.com/pattarin-dev/unistock/agent/agents/dialogue"
	contractx "github.com/pattarin-dev/unistock/agent/contract"
	"github.com/pattarin-dev/unistock/inventory"
)

const genericFailureMessage = "I encountered an error processing your request."

type Engine interface {
	HandleTurn(ctx context.Context, req contractx.TurnRequest) (contractx.TurnReply, error)
}

type Dashboard interface {
	List(ctx context.Context, outletID int) ([]inventory.Item, error)
	Overview(ctx context.Context, outletID int) (inventory.Overview, error)
}

type Server struct {
	engine    Engine
	dashboard Dashboard
	router    chi.Router
}

func New(engine Engine, dashboard Dashboard) *Server {
	s := &Server{
		engine:    engine,
		dashboard: dashboard,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Post("/api/chat", s.handleChat)
	r.Get("/api/inventory", s.handleInventory)
	r.Get("/api/summary", s.handleSummary)
	s.router = r

	return s
}

func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req contractx.TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reply, err := s.engine.HandleTurn(r.Context(), req)
	if err != nil {
		if errors.Is(err, dialoguex.ErrInvalidMessage) || errors.Is(err, dialoguex.ErrInvalidSession) {
			writeError(w, http.StatusBadRequest, "message and sessionId are required")
			return
		}
		// Internal failures are a status, never a scripted chat line.
		log.Error().Err(err).Str("session_id", req.SessionID).Msg("turn failed")
		writeError(w, http.StatusInternalServerError, genericFailureMessage)
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

func (s *Server) handleInventory(w http.ResponseWriter, r *http.Request) {
	outletID, ok := outletParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid outletId")
		return
	}

	items, err := s.dashboard.List(r.Context(), outletID)
	if err != nil {
		log.Error().Err(err).Msg("inventory listing failed")
		writeError(w, http.StatusInternalServerError, genericFailureMessage)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	outletID, ok := outletParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid outletId")
		return
	}

	overview, err := s.dashboard.Overview(r.Context(), outletID)
	if err != nil {
		log.Error().Err(err).Msg("summary aggregation failed")
		writeError(w, http.StatusInternalServerError, genericFailureMessage)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// outletParam parses the optional outletId query value; absent or "all"
// means every outlet. An unknown outlet id passes through to the query and
// simply matches nothing.
func outletParam(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("outletId")
	if raw == "" || raw == "all" {
		return 0, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
