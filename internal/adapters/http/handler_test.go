package httpadapter_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpadapter "github.com/avelarde/daybook/internal/adapters/http"
	"github.com/avelarde/daybook/internal/adapters/storage/memory"
	"github.com/avelarde/daybook/internal/app/lifecycle"
	"github.com/avelarde/daybook/internal/app/responder"
	"github.com/avelarde/daybook/internal/domain"
)

// immediateScheduler skips the simulated latency so replies are visible to
// the very next request.
type immediateScheduler struct{}

func (immediateScheduler) Schedule(_ domain.DayKey, fn func()) { fn() }
func (immediateScheduler) Cancel(domain.DayKey)                {}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	sessions := memory.NewSessionStore()
	statuses := memory.NewStatusStore()
	notifier := lifecycle.NewFanOut()

	tracker := lifecycle.NewTracker(sessions, statuses, notifier)
	svc := lifecycle.NewService(sessions, tracker, responder.New(1), notifier, immediateScheduler{}, time.UTC)

	return httpadapter.NewServer(svc)
}

func doJSON(t *testing.T, srv http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMalformedDayIsRejected(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodGet, "/days/14-03-2025", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed day, got %d", w.Code)
	}
}

func TestAppendMessageAndGetDay(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPost, "/days/2025-03-14/messages",
		[]byte(`{"text":"long day at work"}`))
	if w.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d, body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, srv, http.MethodGet, "/days/2025-03-14", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var day struct {
		Mode     string `json:"mode"`
		Messages []struct {
			IsUser bool   `json:"is_user"`
			Text   string `json:"text"`
		} `json:"messages"`
		EntryAction string `json:"entry_action"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &day); err != nil {
		t.Fatalf("invalid day response: %v", err)
	}

	// Opening prompt, the user message, and the immediate reply.
	if len(day.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(day.Messages))
	}
	if day.Mode != "chat" {
		t.Fatalf("expected default chat mode, got %q", day.Mode)
	}
	if day.EntryAction != string(domain.ActionGenerateEntry) {
		t.Fatalf("expected generate_entry affordance, got %q", day.EntryAction)
	}
}

func TestModeEndpointGatesReplies(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, http.MethodPut, "/days/2025-03-14/mode", []byte(`{"mode":"log"}`))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	doJSON(t, srv, http.MethodPost, "/days/2025-03-14/messages", []byte(`{"text":"quiet note"}`))

	w = doJSON(t, srv, http.MethodGet, "/days/2025-03-14", nil)
	var day struct {
		Mode     string `json:"mode"`
		Messages []struct {
			IsUser             bool `json:"is_user"`
			SystemNotification bool `json:"system_notification"`
		} `json:"messages"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &day)

	if day.Mode != "log" {
		t.Fatalf("expected log mode, got %q", day.Mode)
	}
	// Opening + transition notification + user message; no composed reply.
	companions := 0
	for _, m := range day.Messages {
		if !m.IsUser && !m.SystemNotification {
			companions++
		}
	}
	if companions != 1 {
		t.Fatalf("expected only the opening prompt from the companion, got %d", companions)
	}

	w = doJSON(t, srv, http.MethodPut, "/days/2025-03-14/mode", []byte(`{"mode":"silent"}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown mode, got %d", w.Code)
	}
}

func TestEntryEndpointSnapshots(t *testing.T) {
	srv := newTestServer(t)

	doJSON(t, srv, http.MethodPost, "/days/2025-03-14/messages", []byte(`{"text":"first"}`))
	doJSON(t, srv, http.MethodPost, "/days/2025-03-14/messages", []byte(`{"text":"second"}`))

	w := doJSON(t, srv, http.MethodPost, "/days/2025-03-14/entry", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var st struct {
		HasEntry          bool `json:"has_entry"`
		EntryMessageCount int  `json:"entry_message_count"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &st)
	if !st.HasEntry || st.EntryMessageCount != 2 {
		t.Fatalf("expected snapshot of 2 user messages, got %+v", st)
	}

	w = doJSON(t, srv, http.MethodGet, "/days/2025-03-14", nil)
	var day struct {
		EntryAction string `json:"entry_action"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &day)
	if day.EntryAction != string(domain.ActionViewEntry) {
		t.Fatalf("expected view_entry after generation, got %q", day.EntryAction)
	}

	doJSON(t, srv, http.MethodPost, "/days/2025-03-14/messages", []byte(`{"text":"late addition"}`))
	w = doJSON(t, srv, http.MethodGet, "/days/2025-03-14", nil)
	_ = json.Unmarshal(w.Body.Bytes(), &day)
	if day.EntryAction != string(domain.ActionUpdateEntry) {
		t.Fatalf("expected update_entry after a new message, got %q", day.EntryAction)
	}
}

func TestSummaryAndClear(t *testing.T) {
	srv := newTestServer(t)

	doJSON(t, srv, http.MethodPost, "/days/2025-03-14/messages",
		[]byte(`{"text":"hiked in the morning, worked all afternoon"}`))

	w := doJSON(t, srv, http.MethodPost, "/days/2025-03-14/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var sum struct {
		Summary string `json:"summary"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &sum)
	if sum.Summary == "" {
		t.Fatalf("expected a non-empty summary")
	}

	w = doJSON(t, srv, http.MethodDelete, "/days/2025-03-14", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = doJSON(t, srv, http.MethodGet, "/days/2025-03-14", nil)
	var day struct {
		Messages []json.RawMessage `json:"messages"`
		Status   struct {
			HasSummary bool `json:"has_summary"`
		} `json:"status"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &day)
	if len(day.Messages) != 0 {
		t.Fatalf("expected empty session after clear, got %d messages", len(day.Messages))
	}
	if day.Status.HasSummary {
		t.Fatalf("summary flag should reset on clear")
	}
}
