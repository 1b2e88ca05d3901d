package web

import (
	"net/http"

	"anotador-app/internal/model"
	"anotador-app/internal/scoring"
)

// parseRoundForm reads the two score fields; an empty field scores zero for
// that side.
func parseRoundForm(r *http.Request) (rawA, rawB int, err error) {
	rawA, err = scoring.ParseScoreField(r.FormValue("points_a"))
	if err != nil {
		return 0, 0, err
	}
	rawB, err = scoring.ParseScoreField(r.FormValue("points_b"))
	if err != nil {
		return 0, 0, err
	}
	return rawA, rawB, nil
}

func buildRoundViews(rounds []model.Round) []RoundView {
	views := make([]RoundView, 0, len(rounds))
	for i, round := range rounds {
		views = append(views, RoundView{
			Number:   i + 1,
			Round:    round,
			ScoreA:   round.AppliedA,
			ScoreB:   round.AppliedB,
			IsDouble: round.IsDouble,
		})
	}
	return views
}
