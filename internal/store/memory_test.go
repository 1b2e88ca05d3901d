package store

import (
	"reflect"
	"testing"

	"anotador-app/internal/model"
)

func TestMemoryStore_DefaultWhenEmpty(t *testing.T) {
	s := NewMemoryStore()
	state := s.LoadState()
	if state.OnboardingComplete || len(state.Rounds) != 0 {
		t.Errorf("want default state, got %+v", state)
	}
	if state.Config.TeamAName != model.DefaultTeamA || state.Config.TeamBName != model.DefaultTeamB {
		t.Errorf("want default team names, got %+v", state.Config)
	}
}

func TestMemoryStore_SaveLoad(t *testing.T) {
	s := NewMemoryStore()
	state := model.NewMatchState()
	state.OnboardingComplete = true
	state.Config.TeamAName = "Rojos"
	state.Config.TeamBName = "Azules"
	state.Rounds = []model.Round{{ID: "r1", RawA: 30, RawB: 10, AppliedA: 30, AppliedB: 10}}
	state.WinsB = 4

	if err := s.SaveState(state); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded := s.LoadState()
	if !reflect.DeepEqual(state, loaded) {
		t.Errorf("load mismatch:\n got %+v\nwant %+v", loaded, state)
	}
}

func TestMemoryStore_MalformedSlotFallsBackToDefault(t *testing.T) {
	s := NewMemoryStore()
	s.payload = []byte("{broken")
	state := s.LoadState()
	if state.OnboardingComplete || state.WinsA != 0 {
		t.Errorf("malformed slot should load as default, got %+v", state)
	}
}
