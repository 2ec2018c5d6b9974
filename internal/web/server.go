package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"git.sr.ht/~jakintosh/tasklist/internal/domain"
	"git.sr.ht/~jakintosh/tasklist/internal/tasks"
)

// TaskService is the slice of *tasks.Store the server drives.
type TaskService interface {
	AddTask(name string) (domain.Task, bool, error)
	ToggleTask(id int) (bool, error)
	DeleteTask(id int) (bool, error)
	SetFilter(f domain.Filter)
	Snapshot() tasks.Snapshot
}

type ServerOptions struct {
	Logger *slog.Logger
}

type Server struct {
	store        TaskService
	router       *http.ServeMux
	handler      http.Handler
	presentation *Presentation
	log          *slog.Logger
}

func NewServer(store TaskService, opts ServerOptions) (*Server, error) {
	pres, err := NewPresentation()
	if err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	s := &Server{
		store:        store,
		router:       http.NewServeMux(),
		presentation: pres,
		log:          opts.Logger,
	}
	s.routes()
	s.handler = chain(s.router,
		withRequestID,
		withAccessLog(s.log),
		withRecover(s.log),
	)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

func (s *Server) routes() {
	// Page Routes
	s.router.HandleFunc("GET /{$}", s.handleIndex)

	// HTMX Routes
	s.router.HandleFunc("POST /tasks", s.handleCreateTask)
	s.router.HandleFunc("POST /tasks/{id}/toggle", s.handleToggleTask)
	s.router.HandleFunc("DELETE /tasks/{id}", s.handleDeleteTask)
	s.router.HandleFunc("POST /tasks/{id}/delete", s.handleDeleteTask)
	s.router.HandleFunc("POST /filter", s.handleSetFilter)

	// JSON
	s.router.HandleFunc("GET /api/tasks", s.handleListTasks)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("filter"); raw != "" {
		f, err := domain.ParseFilter(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.store.SetFilter(f)
	}

	view := NewListView(s.store.Snapshot())
	if err := s.presentation.RenderIndex(w, view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, _, err := s.store.AddTask(r.FormValue("name"))
	s.respond(w, r, err)
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	_, err := s.store.ToggleTask(id)
	s.respond(w, r, err)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	_, err := s.store.DeleteTask(id)
	s.respond(w, r, err)
}

func (s *Server) handleSetFilter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := domain.ParseFilter(r.FormValue("filter"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.store.SetFilter(f)
	s.respond(w, r, nil)
}

type taskListResponse struct {
	Filter domain.Filter `json:"filter"`
	Tasks  []domain.Task `json:"tasks"`
}

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Snapshot()
	if raw := r.URL.Query().Get("filter"); raw != "" {
		f, err := domain.ParseFilter(raw)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		snap.Filter = f
		snap.Visible = domain.NewTaskList(snap.Tasks).Visible(f)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(taskListResponse{
		Filter: snap.Filter,
		Tasks:  snap.Visible,
	})
}

// respond finishes a mutating request: a storage failure becomes a 500,
// HTMX callers get the refreshed list, everyone else goes back to the page.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		s.log.Error("task operation failed",
			"request_id", RequestIDFromContext(r.Context()),
			"error", err,
		)
		http.Error(w, "failed to save tasks", http.StatusInternalServerError)
		return
	}

	ctx := parseRequestContext(r)
	if !ctx.wantsPartial() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	view := NewListView(s.store.Snapshot())
	if err := s.presentation.RenderTaskList(w, view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

var errBadID = errors.New("invalid task id")

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, errBadID.Error(), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
