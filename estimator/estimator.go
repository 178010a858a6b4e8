package estimator

import (
	"fmt"
	"strings"
)

// Estimator selects a correlation function formula.
// The zero value is Natural.
type Estimator int

const (
	// Natural is DD/RR − 1.
	Natural Estimator = iota
	// DavisPeebles is DD/DR − 1.
	DavisPeebles
	// Hewett is (DD − DR)/RR.
	Hewett
	// Hamilton is DD·RR/DR² − 1.
	Hamilton
	// LandySzalay is (DD − 2DR + RR)/RR.
	LandySzalay
)

var names = [...]string{
	Natural:      "Natural",
	DavisPeebles: "Davis-Peebles",
	Hewett:       "Hewett",
	Hamilton:     "Hamilton",
	LandySzalay:  "Landy-Szalay",
}

// String returns the canonical name, e.g. "Landy-Szalay".
func (e Estimator) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Estimator(%d)", int(e))
	}

	return names[e]
}

// Valid reports whether e is one of the five formulas.
func (e Estimator) Valid() bool {
	return e >= Natural && e <= LandySzalay
}

// All lists every estimator in declaration order.
func All() []Estimator {
	return []Estimator{Natural, DavisPeebles, Hewett, Hamilton, LandySzalay}
}

// Parse maps a name to its Estimator. Matching ignores case, and '-', '_'
// and ' ' are interchangeable or may be omitted: "landy_szalay",
// "LandySzalay" and "Landy-Szalay" are the same estimator.
func Parse(name string) (Estimator, error) {
	key := fold(name)
	for _, e := range All() {
		if fold(names[e]) == key {
			return e, nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedEstimator)
}

func fold(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(s)))
}

// Requirements says which pair counts a formula reads.
type Requirements struct {
	DD, DR, RR bool
}

// Requirements returns the counts e consumes. Natural never reads DR and
// Davis-Peebles never reads RR; the others need all three.
func (e Estimator) Requirements() Requirements {
	switch e {
	case Natural:
		return Requirements{DD: true, RR: true}
	case DavisPeebles:
		return Requirements{DD: true, DR: true}
	default:
		return Requirements{DD: true, DR: true, RR: true}
	}
}

// Set implements pflag.Value so an Estimator can be bound to a flag directly.
func (e *Estimator) Set(s string) error {
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*e = v

	return nil
}

// Type implements pflag.Value.
func (e *Estimator) Type() string { return "estimator" }
