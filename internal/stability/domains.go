package stability

import (
	"sort"

	"github.com/elchem/pourbaix/pkg/domain"
)

// extractDomains aggregates the winner grid into one domain per stable
// species, with the mean cell position as the label anchor.
func extractDomains(d *domain.Diagram) []domain.Domain {
	type acc struct {
		cells int
		sumPH float64
		sumE  float64
	}
	accs := make(map[int]*acc)

	for j := 0; j < d.ESteps; j++ {
		for i := 0; i < d.PHSteps; i++ {
			w := d.WinnerAt(i, j)
			a, ok := accs[w]
			if !ok {
				a = &acc{}
				accs[w] = a
			}
			a.cells++
			a.sumPH += d.PH(i)
			a.sumE += d.E(j)
		}
	}

	indices := make([]int, 0, len(accs))
	for idx := range accs {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	domains := make([]domain.Domain, 0, len(indices))
	for _, idx := range indices {
		a := accs[idx]
		domains = append(domains, domain.Domain{
			Entry:      idx,
			Label:      d.Entries[idx].Label(),
			CentroidPH: a.sumPH / float64(a.cells),
			CentroidE:  a.sumE / float64(a.cells),
			Cells:      a.cells,
		})
	}
	return domains
}
