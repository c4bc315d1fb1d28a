package components

import "github.com/yohamta/donburi"

// Outcome is the per-tick physics result for the current run.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

type FlowData struct {
	Outcome Outcome
}

var Flow = donburi.NewComponentType[FlowData]()
