package web

import (
	"net/http"
	"net/url"
	"strings"

	"anotador-app/internal/model"
	"anotador-app/internal/scoring"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	state := s.snapshotState()
	if !state.OnboardingComplete {
		view := OnboardingView{
			BaseView:  BaseView{Title: "Bienvenido", Error: errorMessage(r)},
			TeamAName: state.Config.TeamAName,
			TeamBName: state.Config.TeamBName,
		}
		if err := s.templates.Render(w, "onboarding.html", view); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	view := scoreboardView(state, flashMessage(r), errorMessage(r))
	if err := s.templates.Render(w, "home.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func scoreboardView(state model.MatchState, flash, errMsg string) ScoreboardView {
	totalA, totalB := scoring.ComputeTotals(state.Rounds)
	return ScoreboardView{
		BaseView:        BaseView{Title: "Marcador", Flash: flash, Error: errMsg},
		Config:          state.Config,
		TotalA:          totalA,
		TotalB:          totalB,
		WinsA:           state.WinsA,
		WinsB:           state.WinsB,
		Rounds:          buildRoundViews(state.Rounds),
		Target:          model.TargetScore,
		NextRoundDouble: state.Config.DoubleFirstHand && len(state.Rounds) == 0,
	}
}

func (s *Server) renderScoreboard(w http.ResponseWriter, flash, errMsg string) {
	view := scoreboardView(s.snapshotState(), flash, errMsg)
	if err := s.templates.RenderPartial(w, "scoreboard.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleOnboarding(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "datos inválidos", http.StatusBadRequest)
		return
	}
	teamA := strings.TrimSpace(r.FormValue("team_a"))
	teamB := strings.TrimSpace(r.FormValue("team_b"))
	double := r.FormValue("double_first_hand") == "on"

	s.mu.Lock()
	err := scoring.CompleteOnboarding(&s.state, teamA, teamB, double)
	if err == nil {
		s.persistLocked()
	}
	s.mu.Unlock()

	if err != nil {
		view := OnboardingView{
			BaseView:        BaseView{Title: "Bienvenido", Error: validationMessage(err)},
			TeamAName:       teamA,
			TeamBName:       teamB,
			DoubleFirstHand: double,
		}
		if err := s.templates.Render(w, "onboarding.html", view); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleRoundCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "datos inválidos", http.StatusBadRequest)
		return
	}
	rawA, rawB, err := parseRoundForm(r)
	var outcome scoring.Outcome
	if err == nil {
		s.mu.Lock()
		outcome, err = scoring.ApplyRound(&s.state, rawA, rawB)
		if err == nil {
			s.persistLocked()
		}
		s.mu.Unlock()
	}

	if err != nil {
		if isHTMX(r) {
			s.renderScoreboard(w, "", validationMessage(err))
			return
		}
		http.Redirect(w, r, "/?error=invalid_round", http.StatusSeeOther)
		return
	}
	if isHTMX(r) {
		if outcome.Won {
			s.renderScoreboard(w, "¡"+outcome.Winner+" gana la partida!", "")
			return
		}
		s.renderScoreboard(w, "Mano anotada.", "")
		return
	}
	if outcome.Won {
		http.Redirect(w, r, "/?notice=match_won&winner="+url.QueryEscape(outcome.Winner), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/?notice=round_added", http.StatusSeeOther)
}

func (s *Server) handleRoundUndo(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	undone := scoring.UndoLastRound(&s.state)
	if undone {
		s.persistLocked()
	}
	s.mu.Unlock()

	notice := "round_undone"
	flash := "Última mano deshecha."
	if !undone {
		notice = "nothing_to_undo"
		flash = "No hay manos que deshacer."
	}
	if isHTMX(r) {
		s.renderScoreboard(w, flash, "")
		return
	}
	http.Redirect(w, r, "/?notice="+notice, http.StatusSeeOther)
}

func (s *Server) handleMatchReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	scoring.ResetCurrentMatch(&s.state)
	s.persistLocked()
	s.mu.Unlock()

	if isHTMX(r) {
		s.renderScoreboard(w, "Partida reiniciada.", "")
		return
	}
	http.Redirect(w, r, "/?notice=match_reset", http.StatusSeeOther)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	state := s.snapshotState()
	view := SettingsView{
		BaseView: BaseView{Title: "Configuración", Flash: flashMessage(r), Error: errorMessage(r)},
		Config:   state.Config,
	}
	if err := s.templates.Render(w, "settings.html", view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (s *Server) handleSettingsPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "datos inválidos", http.StatusBadRequest)
		return
	}
	teamA := strings.TrimSpace(r.FormValue("team_a"))
	teamB := strings.TrimSpace(r.FormValue("team_b"))
	double := r.FormValue("double_first_hand") == "on"

	s.mu.Lock()
	err := scoring.UpdateConfig(&s.state, teamA, teamB, double)
	if err == nil {
		s.persistLocked()
	}
	s.mu.Unlock()

	if err != nil {
		view := SettingsView{
			BaseView: BaseView{Title: "Configuración", Error: validationMessage(err)},
			Config: model.MatchConfig{
				TeamAName:       teamA,
				TeamBName:       teamB,
				DoubleFirstHand: double,
			},
		}
		if err := s.templates.Render(w, "settings.html", view); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	http.Redirect(w, r, "/settings?notice=settings_saved", http.StatusSeeOther)
}
