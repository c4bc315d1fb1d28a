package systems

import (
	"testing"

	"github.com/campusgames/cityhop/components"
	"github.com/campusgames/cityhop/systems/factory"
)

func TestFlowTransitions(t *testing.T) {
	tests := []struct {
		name    string
		outcome components.Outcome
		want    interface{}
	}{
		{"win", components.OutcomeWin, "win scene"},
		{"lose", components.OutcomeLose, "lose scene"},
		{"none", components.OutcomeNone, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestWorld()
			flowEntry := factory.CreateFlow(e)
			components.Flow.Get(flowEntry).Outcome = tt.outcome

			sc := &fakeSceneChanger{}
			update := NewUpdateFlow(sc,
				func() interface{} { return "win scene" },
				func() interface{} { return "lose scene" },
			)
			update(e)

			if sc.changed != tt.want {
				t.Errorf("changed scene = %v, want %v", sc.changed, tt.want)
			}
		})
	}
}

func TestFlowWithoutFlowEntityIsANoOp(t *testing.T) {
	e := newTestWorld()
	sc := &fakeSceneChanger{}
	update := NewUpdateFlow(sc,
		func() interface{} { return "win scene" },
		func() interface{} { return "lose scene" },
	)

	update(e)

	if sc.changed != nil {
		t.Errorf("changed scene = %v, want nil", sc.changed)
	}
}
