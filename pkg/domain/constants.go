package domain

// Electrochemical constants, in eV at 298.15 K.
const (
	// PrefacPH is kB*T*ln(10): the free energy cost of one pH unit
	// per proton, and of one decade of ion concentration.
	PrefacPH = 0.0591

	// MuH2O is the chemical potential of liquid water per molecule.
	MuH2O = -2.4583

	// OxygenLineOffset is the standard potential of the oxygen
	// evolution line (E = OxygenLineOffset - PrefacPH*pH).
	OxygenLineOffset = 1.229

	// DefaultConcentration is assumed for dissolved species that do
	// not declare one, in mol/l.
	DefaultConcentration = 1e-6
)

// NeutralPH is the pH of the neutral axis drawn on rendered diagrams.
const NeutralPH = 7.0
