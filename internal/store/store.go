package store

import "anotador-app/internal/model"

// StateKey is the fixed slot the aggregate is saved under. The version suffix
// keeps older incompatible shapes from being picked up by the shape check.
const StateKey = "anotador_state_v1"

// Store persists the whole MatchState as a single snapshot. LoadState never
// fails the caller: an absent or malformed slot yields the default state.
type Store interface {
	LoadState() model.MatchState
	SaveState(state model.MatchState) error
}
