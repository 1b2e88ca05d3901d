package web

import (
	"net/http"
	"os"
	"strings"

	"anotador-app/internal/model"
	"anotador-app/internal/scoring"
)

// handleDevLoadSample seeds a mid-match state so the board can be eyeballed
// without clicking through forms. Dev mode only.
func (s *Server) handleDevLoadSample(w http.ResponseWriter, r *http.Request) {
	if !isDevMode() {
		http.NotFound(w, r)
		return
	}

	sample := model.NewMatchState()
	sample.OnboardingComplete = true
	sample.Config = model.MatchConfig{
		TeamAName:       "Rojos",
		TeamBName:       "Azules",
		DoubleFirstHand: true,
	}
	_, _ = scoring.ApplyRound(&sample, 30, 10)
	_, _ = scoring.ApplyRound(&sample, 25, 40)
	sample.WinsA = 2
	sample.WinsB = 1

	s.mu.Lock()
	s.state = sample
	s.persistLocked()
	s.mu.Unlock()

	http.Redirect(w, r, "/?notice=sample_loaded", http.StatusSeeOther)
}

func isDevMode() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv("APP")), "dev")
}
