// Package snapshot is the canonical serialization of MatchState. The same
// document shape is written to the persistence slot, offered as a backup
// download, and required from imports, so load and import share one shape
// check.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"anotador-app/internal/model"
)

var ErrInvalidBackup = errors.New("invalid backup")

// Encode renders the state as pretty-printed JSON.
func Encode(state model.MatchState) ([]byte, error) {
	if state.Rounds == nil {
		state.Rounds = []model.Round{}
	}
	return json.MarshalIndent(state, "", "  ")
}

// Decode parses and shape-checks a snapshot document. Anything that is not a
// complete, well-typed MatchState fails with ErrInvalidBackup.
func Decode(data []byte) (model.MatchState, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.MatchState{}, fmt.Errorf("%w: not a JSON document", ErrInvalidBackup)
	}
	if err := checkShape(raw); err != nil {
		return model.MatchState{}, err
	}
	var state model.MatchState
	if err := json.Unmarshal(data, &state); err != nil {
		return model.MatchState{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if state.Rounds == nil {
		state.Rounds = []model.Round{}
	}
	return state, nil
}

func checkShape(raw map[string]any) error {
	if _, ok := raw["onboardingComplete"].(bool); !ok {
		return fieldErr("onboardingComplete")
	}
	config, ok := raw["config"].(map[string]any)
	if !ok {
		return fieldErr("config")
	}
	if _, ok := config["teamAName"].(string); !ok {
		return fieldErr("config.teamAName")
	}
	if _, ok := config["teamBName"].(string); !ok {
		return fieldErr("config.teamBName")
	}
	if _, ok := config["doubleFirstHand"].(bool); !ok {
		return fieldErr("config.doubleFirstHand")
	}
	if !isCount(raw["winsA"]) {
		return fieldErr("winsA")
	}
	if !isCount(raw["winsB"]) {
		return fieldErr("winsB")
	}
	rounds, ok := raw["rounds"].([]any)
	if !ok {
		return fieldErr("rounds")
	}
	for i, entry := range rounds {
		round, ok := entry.(map[string]any)
		if !ok {
			return fieldErr(fmt.Sprintf("rounds[%d]", i))
		}
		if _, ok := round["id"].(string); !ok {
			return fieldErr(fmt.Sprintf("rounds[%d].id", i))
		}
		for _, key := range []string{"rawA", "rawB", "appliedA", "appliedB"} {
			if !isCount(round[key]) {
				return fieldErr(fmt.Sprintf("rounds[%d].%s", i, key))
			}
		}
		if _, ok := round["isDouble"].(bool); !ok {
			return fieldErr(fmt.Sprintf("rounds[%d].isDouble", i))
		}
	}
	return nil
}

// isCount accepts non-negative integer JSON numbers.
func isCount(value any) bool {
	number, ok := value.(float64)
	return ok && number >= 0 && number == math.Trunc(number)
}

func fieldErr(field string) error {
	return fmt.Errorf("%w: missing or mistyped field %s", ErrInvalidBackup, field)
}
