package web

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"git.sr.ht/~jakintosh/tasklist/internal/domain"
	"git.sr.ht/~jakintosh/tasklist/internal/store"
	"git.sr.ht/~jakintosh/tasklist/internal/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *tasks.Store) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	ts, err := tasks.Open(store.NewInMemoryStore(), tasks.Options{Logger: log})
	require.NoError(t, err)

	srv, err := NewServer(ts, ServerOptions{Logger: log})
	require.NoError(t, err)
	return srv, ts
}

func do(srv http.Handler, method, target string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestIndex_RendersPage(t *testing.T) {
	srv, ts := newTestServer(t)
	_, _, err := ts.AddTask("Buy <milk>")
	require.NoError(t, err)

	rec := do(srv, http.MethodGet, "/", nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "1. Buy &lt;milk&gt;")
	assert.Contains(t, body, `id="task-list"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestIndex_FilterQuery(t *testing.T) {
	srv, ts := newTestServer(t)

	rec := do(srv, http.MethodGet, "/?filter=done", nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.FilterDone, ts.Snapshot().Filter)

	rec = do(srv, http.MethodGet, "/?filter=later", nil, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTask_HTMXReturnsPartial(t *testing.T) {
	srv, ts := newTestServer(t)

	rec := do(srv, http.MethodPost, "/tasks", url.Values{"name": {"Walk dog"}}, true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1. Walk dog")
	assert.NotContains(t, rec.Body.String(), "<html")
	assert.Len(t, ts.Snapshot().Tasks, 1)
}

func TestCreateTask_PlainRedirects(t *testing.T) {
	srv, ts := newTestServer(t)

	rec := do(srv, http.MethodPost, "/tasks", url.Values{"name": {"Walk dog"}}, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Len(t, ts.Snapshot().Tasks, 1)
}

func TestCreateTask_BlankIsIgnored(t *testing.T) {
	srv, ts := newTestServer(t)

	rec := do(srv, http.MethodPost, "/tasks", url.Values{"name": {"   "}}, true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, ts.Snapshot().Tasks)
}

func TestToggleAndDelete(t *testing.T) {
	srv, ts := newTestServer(t)
	_, _, _ = ts.AddTask("Buy milk")
	_, _, _ = ts.AddTask("Walk dog")

	rec := do(srv, http.MethodPost, "/tasks/1/toggle", nil, true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `class="task-item completed"`)

	rec = do(srv, http.MethodDelete, "/tasks/1", nil, true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []domain.Task{{ID: 2, Name: "Walk dog"}}, ts.Snapshot().Tasks)

	rec = do(srv, http.MethodPost, "/tasks/2/delete", nil, false)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Empty(t, ts.Snapshot().Tasks)
}

func TestToggle_UnknownAndBadIDs(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := do(srv, http.MethodPost, "/tasks/99/toggle", nil, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(srv, http.MethodPost, "/tasks/abc/toggle", nil, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetFilter_RenumbersVisibleRows(t *testing.T) {
	srv, ts := newTestServer(t)
	_, _, _ = ts.AddTask("Buy milk")
	_, _, _ = ts.AddTask("Walk dog")
	_, _ = ts.ToggleTask(1)

	rec := do(srv, http.MethodPost, "/filter", url.Values{"filter": {"todo"}}, true)
	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "1. Walk dog")
	assert.NotContains(t, body, "Buy milk")

	rec = do(srv, http.MethodPost, "/filter", url.Values{"filter": {"bogus"}}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.FilterTodo, ts.Snapshot().Filter)
}

func TestListTasksJSON(t *testing.T) {
	srv, ts := newTestServer(t)
	_, _, _ = ts.AddTask("Buy milk")
	_, _, _ = ts.AddTask("Walk dog")
	_, _ = ts.ToggleTask(1)

	rec := do(srv, http.MethodGet, "/api/tasks?filter=done", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp taskListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.FilterDone, resp.Filter)
	assert.Equal(t, []domain.Task{{ID: 1, Name: "Buy milk", Completed: true}}, resp.Tasks)
	assert.Equal(t, domain.FilterAll, ts.Snapshot().Filter, "query filter does not change session filter")
}

func TestRequestIDIsPropagated(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
}
