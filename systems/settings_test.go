package systems

import "testing"

func TestStepVolumeMovesAlongConfiguredSteps(t *testing.T) {
	if got := stepVolume(0.5, 1); got != 0.75 {
		t.Errorf("stepVolume(0.5, +1) = %v, want 0.75", got)
	}
	if got := stepVolume(0.5, -1); got != 0.25 {
		t.Errorf("stepVolume(0.5, -1) = %v, want 0.25", got)
	}
}

func TestStepVolumeClampsAtTheEnds(t *testing.T) {
	if got := stepVolume(0, -1); got != 0 {
		t.Errorf("stepVolume(0, -1) = %v, want 0", got)
	}
	if got := stepVolume(1, 1); got != 1 {
		t.Errorf("stepVolume(1, +1) = %v, want 1", got)
	}
}

func TestStepVolumeSnapsToTheNearestStep(t *testing.T) {
	// An off-grid volume (e.g. from an edited save file) snaps first.
	if got := stepVolume(0.6, 1); got != 0.75 {
		t.Errorf("stepVolume(0.6, +1) = %v, want 0.75", got)
	}
}

func TestVolumeSettersClamp(t *testing.T) {
	defer SetSFXVolume(SFXVolume())

	SetSFXVolume(1.5)
	if got := SFXVolume(); got != 1 {
		t.Errorf("SFXVolume after setting 1.5 = %v, want 1", got)
	}
	SetSFXVolume(-0.5)
	if got := SFXVolume(); got != 0 {
		t.Errorf("SFXVolume after setting -0.5 = %v, want 0", got)
	}
}
