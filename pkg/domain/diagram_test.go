package domain

import (
	"math"
	"testing"
)

func TestStableIndex(t *testing.T) {
	metal := Entry{Phase: PhaseSolid, Composition: map[string]float64{"Fe": 1}, Energy: 0}
	ion := Entry{Phase: PhaseIon, Composition: map[string]float64{"Fe": 1}, Energy: -0.82, Charge: 2, Concentration: 1e-6}
	entries := []Entry{metal, ion}

	// Deep in the reducing window the metal survives; at oxidizing
	// potentials the ion takes over.
	if got := StableIndex(entries, 0, -2.5); got != 0 {
		t.Errorf("StableIndex at E=-2.5 = %d, want 0 (metal)", got)
	}
	if got := StableIndex(entries, 0, 1.5); got != 1 {
		t.Errorf("StableIndex at E=1.5 = %d, want 1 (ion)", got)
	}
}

func TestStableIndex_TieBreaksToLowestIndex(t *testing.T) {
	a := Entry{EntryID: "a", Phase: PhaseSolid, Composition: map[string]float64{"Ni": 1}, Energy: -1}
	b := Entry{EntryID: "b", Phase: PhaseSolid, Composition: map[string]float64{"Ni": 1}, Energy: -1}
	if got := StableIndex([]Entry{a, b}, 7, 0); got != 0 {
		t.Errorf("tie resolved to %d, want 0", got)
	}
	if got := StableIndex([]Entry{b, a}, 7, 0); got != 0 {
		t.Errorf("tie resolved to %d, want 0", got)
	}
}

func TestStableIndex_SkipsPureSolventSpecies(t *testing.T) {
	water := Entry{Phase: PhaseSolid, Composition: map[string]float64{"H": 2, "O": 1}, Energy: -100}
	metal := Entry{Phase: PhaseSolid, Composition: map[string]float64{"Ni": 1}, Energy: 0}
	if got := StableIndex([]Entry{water, metal}, 7, 0); got != 1 {
		t.Errorf("StableIndex = %d, want 1 (solvent species excluded)", got)
	}
	if got := StableIndex([]Entry{water}, 7, 0); got != -1 {
		t.Errorf("StableIndex = %d, want -1 for solvent-only set", got)
	}
}

func TestDiagram_GridCoordinates(t *testing.T) {
	d := Diagram{
		Limits:  Limits{PHMin: 0, PHMax: 14, EMin: -3, EMax: 3},
		PHSteps: 14,
		ESteps:  6,
	}
	if got := d.PH(0); got != 0.5 {
		t.Errorf("PH(0) = %v, want 0.5", got)
	}
	if got := d.PH(13); got != 13.5 {
		t.Errorf("PH(13) = %v, want 13.5", got)
	}
	if got := d.E(0); got != -2.5 {
		t.Errorf("E(0) = %v, want -2.5", got)
	}
	if got := d.E(5); got != 2.5 {
		t.Errorf("E(5) = %v, want 2.5", got)
	}
}

func TestWaterLines(t *testing.T) {
	if got := OxygenLine(0); got != OxygenLineOffset {
		t.Errorf("OxygenLine(0) = %v, want %v", got, OxygenLineOffset)
	}
	if got := HydrogenLine(0); got != 0 {
		t.Errorf("HydrogenLine(0) = %v, want 0", got)
	}
	// The window between the lines is the water stability band; its
	// width is independent of pH.
	width := OxygenLine(7) - HydrogenLine(7)
	if math.Abs(width-OxygenLineOffset) > 1e-12 {
		t.Errorf("water window width = %v, want %v", width, OxygenLineOffset)
	}
}
