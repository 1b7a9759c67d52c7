package mp

import (
	"fmt"
	"strings"

	"github.com/elchem/pourbaix/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// entryPayload mirrors the fields of one API record we care about.
// The API serializes numbers loosely (counts may arrive as ints or
// floats), so decoding goes through mapstructure with weak typing.
type entryPayload struct {
	EntryID       string             `mapstructure:"entry_id"`
	Name          string             `mapstructure:"name"`
	Formula       string             `mapstructure:"formula"`
	PhaseType     string             `mapstructure:"phase_type"`
	Composition   map[string]float64 `mapstructure:"composition"`
	Energy        float64            `mapstructure:"energy"`
	Charge        float64            `mapstructure:"charge"`
	Concentration float64            `mapstructure:"concentration"`
}

// normalize converts raw API records into validated domain entries.
func normalize(records []map[string]any) ([]domain.Entry, error) {
	entries := make([]domain.Entry, 0, len(records))
	for i, record := range records {
		var p entryPayload
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &p,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(record); err != nil {
			return nil, fmt.Errorf("record %d: %v: %w", i, err, domain.ErrMalformedEntries)
		}

		entry, err := p.toDomain()
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (p entryPayload) toDomain() (domain.Entry, error) {
	comp := p.Composition
	charge := p.Charge
	if len(comp) == 0 {
		if p.Formula == "" {
			return domain.Entry{}, fmt.Errorf("record %q has neither composition nor formula: %w", p.EntryID, domain.ErrMalformedEntries)
		}
		parsed, parsedCharge, err := domain.ParseFormula(p.Formula)
		if err != nil {
			return domain.Entry{}, err
		}
		comp = parsed
		if charge == 0 {
			charge = parsedCharge
		}
	}

	phase := domain.PhaseSolid
	if strings.EqualFold(p.PhaseType, "ion") || strings.EqualFold(p.PhaseType, "aqueous") {
		phase = domain.PhaseIon
	}

	conc := p.Concentration
	if phase == domain.PhaseIon && conc <= 0 {
		conc = domain.DefaultConcentration
	}

	entry := domain.Entry{
		EntryID:       p.EntryID,
		Name:          p.Name,
		Phase:         phase,
		Composition:   comp,
		Energy:        p.Energy,
		Charge:        charge,
		Concentration: conc,
	}
	if err := entry.Validate(); err != nil {
		return domain.Entry{}, err
	}
	return entry, nil
}
