package model

const (
	// TargetScore is the total a team has to reach to close a match.
	TargetScore = 150

	DefaultTeamA = "Nosotros"
	DefaultTeamB = "Ellos"
)

// MatchConfig holds the two team names and the house rules picked during
// onboarding. It can be edited mid-match from the settings screen.
type MatchConfig struct {
	TeamAName       string `json:"teamAName"`
	TeamBName       string `json:"teamBName"`
	DoubleFirstHand bool   `json:"doubleFirstHand"`
}

// Round is a single completed hand. Applied values differ from raw values only
// when the first-hand doubling rule fired for this round.
type Round struct {
	ID       string `json:"id"`
	RawA     int    `json:"rawA"`
	RawB     int    `json:"rawB"`
	AppliedA int    `json:"appliedA"`
	AppliedB int    `json:"appliedB"`
	IsDouble bool   `json:"isDouble"`
}

// MatchState is the whole persisted aggregate: configuration, the ledger of
// the current unfinished match, and win counters that survive across matches.
type MatchState struct {
	OnboardingComplete bool        `json:"onboardingComplete"`
	Config             MatchConfig `json:"config"`
	Rounds             []Round     `json:"rounds"`
	WinsA              int         `json:"winsA"`
	WinsB              int         `json:"winsB"`
}

func NewMatchState() MatchState {
	return MatchState{
		Config: MatchConfig{
			TeamAName: DefaultTeamA,
			TeamBName: DefaultTeamB,
		},
		Rounds: []Round{},
	}
}
