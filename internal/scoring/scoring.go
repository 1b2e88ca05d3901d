package scoring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"anotador-app/internal/model"

	"github.com/google/uuid"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidRound  = errors.New("invalid round")
)

// Outcome describes the effect of a successfully applied round.
type Outcome struct {
	Round  model.Round
	TotalA int
	TotalB int
	Won    bool
	Winner string
}

func ValidateTeamNames(a, b string) error {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return fmt.Errorf("%w: team name is required", ErrInvalidConfig)
	}
	if strings.EqualFold(a, b) {
		return fmt.Errorf("%w: team names must differ", ErrInvalidConfig)
	}
	return nil
}

func ValidateRoundInput(rawA, rawB int) error {
	if rawA < 0 || rawB < 0 {
		return fmt.Errorf("%w: points cannot be negative", ErrInvalidRound)
	}
	if rawA == 0 && rawB == 0 {
		return fmt.Errorf("%w: at least one team must score", ErrInvalidRound)
	}
	return nil
}

// ParseScoreField converts a form field to a point value. An empty field
// counts as zero for that side.
func ParseScoreField(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: points must be a whole number", ErrInvalidRound)
	}
	return parsed, nil
}

// ComputeTotals sums applied points over the current ledger only.
func ComputeTotals(rounds []model.Round) (totalA, totalB int) {
	for _, round := range rounds {
		totalA += round.AppliedA
		totalB += round.AppliedB
	}
	return totalA, totalB
}

// ApplyRound validates the input, credits the round (doubling it when the
// ledger is empty and the first-hand rule is on), and settles the match when a
// team reaches the target with a strict lead. On a win the winner's counter
// goes up and the ledger is cleared for the next match; otherwise the round is
// appended. State is untouched on validation failure.
func ApplyRound(state *model.MatchState, rawA, rawB int) (Outcome, error) {
	if err := ValidateRoundInput(rawA, rawB); err != nil {
		return Outcome{}, err
	}

	isDouble := state.Config.DoubleFirstHand && len(state.Rounds) == 0
	round := model.Round{
		ID:       uuid.NewString(),
		RawA:     rawA,
		RawB:     rawB,
		AppliedA: rawA,
		AppliedB: rawB,
		IsDouble: isDouble,
	}
	if isDouble {
		round.AppliedA = rawA * 2
		round.AppliedB = rawB * 2
	}

	candidate := append(append([]model.Round{}, state.Rounds...), round)
	totalA, totalB := ComputeTotals(candidate)

	outcome := Outcome{Round: round, TotalA: totalA, TotalB: totalB}
	switch {
	case totalA >= model.TargetScore && totalA > totalB:
		outcome.Won = true
		outcome.Winner = state.Config.TeamAName
		state.WinsA++
		state.Rounds = []model.Round{}
	case totalB >= model.TargetScore && totalB > totalA:
		outcome.Won = true
		outcome.Winner = state.Config.TeamBName
		state.WinsB++
		state.Rounds = []model.Round{}
	default:
		state.Rounds = candidate
	}
	return outcome, nil
}

// UndoLastRound drops the most recent round of the current match. It reports
// whether anything was removed; win counters are never touched.
func UndoLastRound(state *model.MatchState) bool {
	if len(state.Rounds) == 0 {
		return false
	}
	state.Rounds = state.Rounds[:len(state.Rounds)-1]
	return true
}

// ResetCurrentMatch clears the ledger without touching wins or configuration.
func ResetCurrentMatch(state *model.MatchState) {
	state.Rounds = []model.Round{}
}

func CompleteOnboarding(state *model.MatchState, teamA, teamB string, doubleFirstHand bool) error {
	if err := ValidateTeamNames(teamA, teamB); err != nil {
		return err
	}
	state.Config = model.MatchConfig{
		TeamAName:       strings.TrimSpace(teamA),
		TeamBName:       strings.TrimSpace(teamB),
		DoubleFirstHand: doubleFirstHand,
	}
	state.OnboardingComplete = true
	return nil
}

// UpdateConfig changes names and rules mid-match. The doubling flag is read
// when a round is applied, so a change takes effect from the next round on.
func UpdateConfig(state *model.MatchState, teamA, teamB string, doubleFirstHand bool) error {
	if err := ValidateTeamNames(teamA, teamB); err != nil {
		return err
	}
	state.Config = model.MatchConfig{
		TeamAName:       strings.TrimSpace(teamA),
		TeamBName:       strings.TrimSpace(teamB),
		DoubleFirstHand: doubleFirstHand,
	}
	return nil
}
