package domain

// Limits is the window of pH and electrode potential a diagram covers.
type Limits struct {
	PHMin float64 `json:"ph_min" yaml:"ph_min"`
	PHMax float64 `json:"ph_max" yaml:"ph_max"`
	EMin  float64 `json:"e_min" yaml:"e_min"`
	EMax  float64 `json:"e_max" yaml:"e_max"`
}

// DefaultLimits is the conventional aqueous window: the full pH scale
// and three volts either side of SHE.
func DefaultLimits() Limits {
	return Limits{PHMin: 0, PHMax: 14, EMin: -3, EMax: 3}
}

// Domain is the region of a diagram where one species is stable.
type Domain struct {
	// Entry indexes into Diagram.Entries.
	Entry int `json:"entry"`
	// Label is the display name of the stable species.
	Label string `json:"label"`
	// CentroidPH and CentroidE locate the mean cell of the region,
	// where the renderer places the label.
	CentroidPH float64 `json:"centroid_ph"`
	CentroidE  float64 `json:"centroid_e"`
	// Cells counts grid cells in the region.
	Cells int `json:"cells"`
}

// Diagram is the computed stability map for one entry set. It is a
// value derived deterministically from its entries: building twice
// from the same set yields an equal diagram.
type Diagram struct {
	Limits Limits `json:"limits"`
	// PHSteps and ESteps are the grid cell counts per axis.
	PHSteps int `json:"ph_steps"`
	ESteps  int `json:"e_steps"`
	// Winners holds, row-major by potential then pH, the index into
	// Entries of the stable species in each cell.
	Winners []int `json:"winners"`
	// Entries is the (validated, comparable) entry set the diagram
	// was built from.
	Entries []Entry `json:"entries"`
	// Domains lists the distinct stable species, ordered by entry index.
	Domains []Domain `json:"domains"`
}

// PH returns the pH at the center of grid column i.
func (d *Diagram) PH(i int) float64 {
	step := (d.Limits.PHMax - d.Limits.PHMin) / float64(d.PHSteps)
	return d.Limits.PHMin + (float64(i)+0.5)*step
}

// E returns the potential at the center of grid row j.
func (d *Diagram) E(j int) float64 {
	step := (d.Limits.EMax - d.Limits.EMin) / float64(d.ESteps)
	return d.Limits.EMin + (float64(j)+0.5)*step
}

// WinnerAt returns the stable entry index in cell (i, j).
func (d *Diagram) WinnerAt(i, j int) int {
	return d.Winners[j*d.PHSteps+i]
}

// StableAt evaluates the entry energies directly at an arbitrary
// condition and returns the stable entry. Ties resolve to the lowest
// entry index, matching the builder.
func (d *Diagram) StableAt(pH, v float64) (Entry, bool) {
	idx := StableIndex(d.Entries, pH, v)
	if idx < 0 {
		return Entry{}, false
	}
	return d.Entries[idx], true
}

// StableIndex returns the index of the entry with the lowest normalized
// energy at the given condition, or -1 when no entry is comparable.
// Ties resolve to the lowest index, which keeps the result stable
// across runs for identical inputs.
func StableIndex(entries []Entry, pH, v float64) int {
	best := -1
	var bestEnergy float64
	for i, e := range entries {
		if e.NonSolventAtoms() <= 0 {
			continue
		}
		g := e.NormalizedEnergyAt(pH, v)
		if best < 0 || g < bestEnergy {
			best, bestEnergy = i, g
		}
	}
	return best
}

// OxygenLine is the oxygen evolution potential at the given pH; above
// it water oxidizes.
func OxygenLine(pH float64) float64 {
	return OxygenLineOffset - PrefacPH*pH
}

// HydrogenLine is the hydrogen evolution potential at the given pH;
// below it water reduces.
func HydrogenLine(pH float64) float64 {
	return -PrefacPH * pH
}
