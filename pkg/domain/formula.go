package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// ParseFormula turns a chemical formula such as "Fe2O3" or "Ca(OH)2"
// into a composition map. A trailing charge in brackets ("Fe[3+]",
// "HCO3[-]") is parsed and returned separately. Fractional counts
// ("Fe0.5") are accepted.
func ParseFormula(formula string) (map[string]float64, float64, error) {
	formula = strings.TrimSpace(formula)
	if formula == "" {
		return nil, 0, fmt.Errorf("empty formula: %w", ErrMalformedEntries)
	}

	charge := 0.0
	if i := strings.IndexByte(formula, '['); i >= 0 {
		if !strings.HasSuffix(formula, "]") {
			return nil, 0, fmt.Errorf("formula %q: unterminated charge: %w", formula, ErrMalformedEntries)
		}
		var err error
		charge, err = parseCharge(formula[i+1 : len(formula)-1])
		if err != nil {
			return nil, 0, fmt.Errorf("formula %q: %w", formula, err)
		}
		formula = formula[:i]
	}

	comp := make(map[string]float64)
	if err := parseGroup(formula, 1, comp); err != nil {
		return nil, 0, err
	}
	if len(comp) == 0 {
		return nil, 0, fmt.Errorf("formula has no elements: %w", ErrMalformedEntries)
	}
	return comp, charge, nil
}

// parseGroup scans one parenthesis-free-or-nested segment, multiplying
// every count by factor.
func parseGroup(s string, factor float64, comp map[string]float64) error {
	for i := 0; i < len(s); {
		switch {
		case s[i] == '(':
			depth, j := 1, i+1
			for ; j < len(s) && depth > 0; j++ {
				switch s[j] {
				case '(':
					depth++
				case ')':
					depth--
				}
			}
			if depth != 0 {
				return fmt.Errorf("unbalanced parentheses in %q: %w", s, ErrMalformedEntries)
			}
			inner := s[i+1 : j-1]
			count, next := scanCount(s, j)
			if err := parseGroup(inner, factor*count, comp); err != nil {
				return err
			}
			i = next

		case unicode.IsUpper(rune(s[i])):
			j := i + 1
			for j < len(s) && unicode.IsLower(rune(s[j])) {
				j++
			}
			el := s[i:j]
			count, next := scanCount(s, j)
			comp[el] += factor * count
			i = next

		default:
			return fmt.Errorf("unexpected character %q in formula %q: %w", s[i], s, ErrMalformedEntries)
		}
	}
	return nil
}

// scanCount reads an optional decimal count starting at i, defaulting to 1.
func scanCount(s string, i int) (float64, int) {
	j := i
	for j < len(s) && (unicode.IsDigit(rune(s[j])) || s[j] == '.') {
		j++
	}
	if j == i {
		return 1, i
	}
	n, err := strconv.ParseFloat(s[i:j], 64)
	if err != nil {
		return 1, j
	}
	return n, j
}

// parseCharge reads forms like "2+", "+", "3-", "-2".
func parseCharge(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty charge: %w", ErrMalformedEntries)
	}
	sign := 1.0
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '.' {
			return r
		}
		return -1
	}, s)
	if strings.ContainsRune(s, '-') {
		sign = -1
	} else if !strings.ContainsRune(s, '+') {
		return 0, fmt.Errorf("charge %q has no sign: %w", s, ErrMalformedEntries)
	}
	if digits == "" {
		return sign, nil
	}
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, fmt.Errorf("charge %q: %w", s, ErrMalformedEntries)
	}
	return sign * n, nil
}

// FormatComposition renders a composition map as a conventional
// formula string with elements in Hill-like order (the non-solvent
// elements alphabetically, then H, then O).
func FormatComposition(comp map[string]float64) string {
	elements := make([]string, 0, len(comp))
	for el := range comp {
		if el == "H" || el == "O" {
			continue
		}
		elements = append(elements, el)
	}
	sort.Strings(elements)
	if _, ok := comp["H"]; ok {
		elements = append(elements, "H")
	}
	if _, ok := comp["O"]; ok {
		elements = append(elements, "O")
	}

	var b strings.Builder
	for _, el := range elements {
		b.WriteString(el)
		if n := comp[el]; n != 1 {
			b.WriteString(strconv.FormatFloat(n, 'f', -1, 64))
		}
	}
	return b.String()
}
