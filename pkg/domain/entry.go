package domain

import (
	"fmt"
	"math"
)

// Phase distinguishes solid species from dissolved ions.
type Phase string

const (
	PhaseSolid Phase = "solid"
	PhaseIon   Phase = "ion"
)

// Entry describes one candidate chemical species used as input to the
// stability computation. Entries are immutable once loaded; all derived
// quantities are computed on demand.
//
// Energy is the formation free energy in eV, referenced against the
// elements and liquid water, as stored in the per-element JSON files.
type Entry struct {
	EntryID       string             `json:"entry_id" yaml:"entry_id"`
	Name          string             `json:"name" yaml:"name"`
	Phase         Phase              `json:"phase" yaml:"phase"`
	Composition   map[string]float64 `json:"composition" yaml:"composition"`
	Energy        float64            `json:"energy" yaml:"energy"`
	Charge        float64            `json:"charge,omitempty" yaml:"charge,omitempty"`
	Concentration float64            `json:"concentration,omitempty" yaml:"concentration,omitempty"`
}

// NH2O is the number of water molecules consumed when forming the
// species from the reference element, protons and electrons. Every
// oxygen atom is sourced from water.
func (e Entry) NH2O() float64 {
	return e.Composition["O"]
}

// NPH is the number of protons released by the formation reaction.
func (e Entry) NPH() float64 {
	return e.Composition["H"] - 2*e.Composition["O"]
}

// NPhi is the number of electrons released by the formation reaction.
func (e Entry) NPhi() float64 {
	return e.NPH() - e.Charge
}

// NonSolventAtoms counts the atoms that are neither hydrogen nor
// oxygen. Energies are compared per non-solvent atom so that, say,
// Fe2O3 and Fe3O4 compete on equal footing.
func (e Entry) NonSolventAtoms() float64 {
	var n float64
	for el, count := range e.Composition {
		if el == "H" || el == "O" {
			continue
		}
		n += count
	}
	return n
}

// concTerm is the free energy contribution of the ion concentration.
// Solids sit at unit activity and contribute nothing.
func (e Entry) concTerm() float64 {
	if e.Phase != PhaseIon {
		return 0
	}
	c := e.Concentration
	if c <= 0 {
		c = DefaultConcentration
	}
	return PrefacPH * math.Log10(c)
}

// CorrectedEnergy is the formation energy adjusted for the water
// reference and, for ions, the concentration term.
func (e Entry) CorrectedEnergy() float64 {
	return e.Energy + e.concTerm() - MuH2O*e.NH2O()
}

// EnergyAt evaluates the species free energy at the given pH and
// electrode potential (V vs SHE).
func (e Entry) EnergyAt(pH, v float64) float64 {
	return e.CorrectedEnergy() + e.NPH()*PrefacPH*pH + e.NPhi()*v
}

// NormalizedEnergyAt is EnergyAt scaled per non-solvent atom. It is the
// quantity the diagram builder minimizes. Entries with no non-solvent
// atoms (pure H/O species) have no normalization and must be filtered
// out before comparison.
func (e Entry) NormalizedEnergyAt(pH, v float64) float64 {
	return e.EnergyAt(pH, v) / e.NonSolventAtoms()
}

// Label returns the display name for the species, falling back to the
// formatted composition when no name was recorded.
func (e Entry) Label() string {
	if e.Name != "" {
		return e.Name
	}
	name := FormatComposition(e.Composition)
	if e.Phase == PhaseIon {
		return name + chargeSuffix(e.Charge)
	}
	return name
}

// Validate reports whether the entry can participate in a diagram.
func (e Entry) Validate() error {
	if len(e.Composition) == 0 {
		return fmt.Errorf("entry %q has no composition: %w", e.EntryID, ErrMalformedEntries)
	}
	for el, count := range e.Composition {
		if el == "" || count <= 0 {
			return fmt.Errorf("entry %q has invalid composition term %q=%v: %w", e.EntryID, el, count, ErrMalformedEntries)
		}
	}
	switch e.Phase {
	case PhaseSolid, PhaseIon:
	default:
		return fmt.Errorf("entry %q has unknown phase %q: %w", e.EntryID, e.Phase, ErrMalformedEntries)
	}
	return nil
}

func chargeSuffix(q float64) string {
	switch {
	case q == 0:
		return ""
	case q == 1:
		return "[+]"
	case q == -1:
		return "[-]"
	case q > 0:
		return fmt.Sprintf("[%v+]", q)
	default:
		return fmt.Sprintf("[%v-]", -q)
	}
}
