package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/avelarde/daybook/internal/app/lifecycle"
	"github.com/avelarde/daybook/internal/domain"
)

type Server struct {
	svc *lifecycle.Service
}

// NewServer builds the inbound surface the UI layer calls. Every route is
// keyed by a calendar day.
func NewServer(svc *lifecycle.Service) http.Handler {
	s := &Server{svc: svc}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.StripSlashes)
	r.Use(withRequestLogging)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/days/{day}", func(r chi.Router) {
		r.Get("/", s.handleGetDay)
		r.Delete("/", s.handleClearSession)

		r.Post("/messages", s.handleAppendMessage)
		r.Delete("/messages/{id}", s.handleRemoveMessage)
		r.Post("/messages/{id}/ignore", s.handleToggleIgnore)

		r.Put("/mode", s.handleSetMode)
		r.Post("/entry", s.handleGenerateEntry)
		r.Post("/summary", s.handleComposeSummary)
	})

	return r
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type messageResponse struct {
	ID                 string    `json:"id"`
	Text               string    `json:"text"`
	IsUser             bool      `json:"is_user"`
	CreatedAt          time.Time `json:"created_at"`
	IgnoredInEntry     bool      `json:"ignored_in_entry"`
	Mode               string    `json:"mode,omitempty"`
	SystemNotification bool      `json:"system_notification,omitempty"`
	NotificationTitle  string    `json:"notification_title,omitempty"`
}

type statusResponse struct {
	HasEntry          bool       `json:"has_entry"`
	HasSummary        bool       `json:"has_summary"`
	EntryMessageCount int        `json:"entry_message_count"`
	EntryUpdatedAt    *time.Time `json:"entry_updated_at,omitempty"`
}

type dayResponse struct {
	Day         string            `json:"day"`
	Mode        string            `json:"mode"`
	Messages    []messageResponse `json:"messages"`
	Status      statusResponse    `json:"status"`
	EntryAction string            `json:"entry_action"`
}

type appendMessageRequest struct {
	Text string `json:"text"`
}

type appendMessageResponse struct {
	Message messageResponse `json:"message"`
}

type setModeRequest struct {
	Mode string `json:"mode"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleGetDay(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}

	msgs, err := s.svc.Messages(r.Context(), day)
	if err != nil {
		internalError(w, err)
		return
	}

	tracker := s.svc.Tracker()
	st, err := tracker.Status(day)
	if err != nil {
		internalError(w, err)
		return
	}
	action, err := tracker.EntryAction(day)
	if err != nil {
		internalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dayResponse{
		Day:      day.String(),
		Mode:     string(s.svc.Mode(day)),
		Messages: toMessagesResponse(msgs),
		Status: statusResponse{
			HasEntry:          st.HasEntry,
			HasSummary:        st.HasSummary,
			EntryMessageCount: st.EntryMessageCount,
			EntryUpdatedAt:    st.EntryUpdatedAt,
		},
		EntryAction: string(action),
	})
}

func (s *Server) handleAppendMessage(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}

	var req appendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	// Empty text is accepted: downstream classification treats it as default.
	msg, err := s.svc.AppendUserMessage(r.Context(), day, req.Text)
	if err != nil {
		internalError(w, err)
		return
	}

	// The companion's reply arrives after the simulated latency; callers
	// poll the day or observe notifications.
	writeJSON(w, http.StatusAccepted, appendMessageResponse{
		Message: toMessageResponse(msg),
	})
}

func (s *Server) handleRemoveMessage(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}

	id := domain.MessageID(chi.URLParam(r, "id"))
	if err := s.svc.RemoveMessage(r.Context(), day, id); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleIgnore(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}

	id := domain.MessageID(chi.URLParam(r, "id"))
	if err := s.svc.ToggleIgnore(r.Context(), day, id); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetMode(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}

	var req setModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}

	mode, ok := parseMode(req.Mode)
	if !ok {
		badRequest(w, "mode must be chat or log")
		return
	}

	if err := s.svc.SetMode(r.Context(), day, mode); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGenerateEntry(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}

	tracker := s.svc.Tracker()
	if err := tracker.GenerateOrUpdateEntry(r.Context(), day); err != nil {
		internalError(w, err)
		return
	}

	st, err := tracker.Status(day)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{
		HasEntry:          st.HasEntry,
		HasSummary:        st.HasSummary,
		EntryMessageCount: st.EntryMessageCount,
		EntryUpdatedAt:    st.EntryUpdatedAt,
	})
}

func (s *Server) handleComposeSummary(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}

	text, err := s.svc.ComposeSummary(r.Context(), day)
	if err != nil {
		internalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaryResponse{Summary: text})
}

func (s *Server) handleClearSession(w http.ResponseWriter, r *http.Request) {
	day, ok := dayParam(w, r)
	if !ok {
		return
	}

	if err := s.svc.ClearSession(r.Context(), day); err != nil {
		internalError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func dayParam(w http.ResponseWriter, r *http.Request) (domain.DayKey, bool) {
	day, err := domain.ParseDayKey(chi.URLParam(r, "day"))
	if err != nil {
		badRequest(w, "day must be formatted YYYY-MM-DD")
		return "", false
	}
	return day, true
}

func parseMode(s string) (domain.Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "chat":
		return domain.ModeChat, true
	case "log":
		return domain.ModeLog, true
	default:
		return "", false
	}
}

func toMessageResponse(m domain.ChatMessage) messageResponse {
	return messageResponse{
		ID:                 string(m.ID),
		Text:               m.Text,
		IsUser:             m.IsUser,
		CreatedAt:          m.CreatedAt,
		IgnoredInEntry:     m.IgnoredInEntry,
		Mode:               string(m.Mode),
		SystemNotification: m.SystemNotification,
		NotificationTitle:  m.NotificationTitle,
	}
}

func toMessagesResponse(msgs []domain.ChatMessage) []messageResponse {
	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toMessageResponse(m))
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func internalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error": "internal server error",
	})
}
