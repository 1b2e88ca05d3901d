package web

import "anotador-app/internal/model"

type BaseView struct {
	Title string
	Flash string
	Error string
}

type ScoreboardView struct {
	BaseView
	Config          model.MatchConfig
	TotalA          int
	TotalB          int
	WinsA           int
	WinsB           int
	Rounds          []RoundView
	Target          int
	NextRoundDouble bool
}

type RoundView struct {
	Number   int
	Round    model.Round
	ScoreA   int
	ScoreB   int
	IsDouble bool
}

type OnboardingView struct {
	BaseView
	TeamAName       string
	TeamBName       string
	DoubleFirstHand bool
}

type SettingsView struct {
	BaseView
	Config model.MatchConfig
}

type UnlockView struct {
	BaseView
}
