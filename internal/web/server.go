package web

import (
	"log"
	"net/http"
	"sync"

	"anotador-app/internal/model"
	"anotador-app/internal/store"

	"github.com/go-chi/chi/v5"
)

// Server owns the authoritative MatchState for the session. Every mutation
// happens under the lock and is followed by a full-state save; a failing save
// is logged and the in-memory state stays authoritative.
type Server struct {
	mu        sync.Mutex
	state     model.MatchState
	store     store.Store
	templates *Templates
}

func NewServer(store store.Store, templates *Templates) *Server {
	return &Server{
		state:     store.LoadState(),
		store:     store,
		templates: templates,
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/", s.handleHome)
	r.Post("/onboarding", s.handleOnboarding)
	r.Post("/rounds", s.handleRoundCreate)
	r.Post("/rounds/undo", s.handleRoundUndo)
	r.Post("/match/reset", s.handleMatchReset)
	r.Get("/settings", s.handleSettings)
	r.Post("/settings", s.handleSettingsPost)
	r.Get("/export", s.handleExport)
	r.Post("/import", s.handleImport)
	r.Get("/unlock", s.handleUnlock)
	r.Post("/unlock", s.handleUnlockPost)
	r.Post("/dev/load-sample", s.handleDevLoadSample)

	return r
}

// snapshotState copies the aggregate for rendering and export.
func (s *Server) snapshotState() model.MatchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	state.Rounds = append([]model.Round{}, s.state.Rounds...)
	return state
}

// persistLocked writes the current state; callers hold s.mu. Storage trouble
// loses durability, not the session.
func (s *Server) persistLocked() {
	if err := s.store.SaveState(s.state); err != nil {
		log.Printf("save state: %v", err)
	}
}
