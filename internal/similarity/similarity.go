// Package similarity scores how close two strings are on a 0..1 scale.
package similarity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/pmezard/go-difflib/difflib"
)

// Func scores two strings; 1 means identical, 0 means nothing in common.
type Func func(a, b string) float64

// Algorithm names a scoring function
type Algorithm string

const (
	RatcliffObershelp Algorithm = "ratcliff-obershelp"
	Levenshtein       Algorithm = "levenshtein"
	JaroWinkler       Algorithm = "jaro-winkler"
)

var ErrUnknownAlgorithm = errors.New("unknown similarity algorithm")

// Ratio returns the Ratcliff-Obershelp similarity of a and b: twice the number
// of code points in matching blocks divided by the total number of code points.
// Two empty strings have ratio 1.
func Ratio(a, b string) float64 {
	// The longest-match tie-break depends on argument order; fix the order so
	// Ratio(a, b) == Ratio(b, a).
	if b < a {
		a, b = b, a
	}
	m := difflib.NewMatcherWithJunk(explode(a), explode(b), false, nil)
	return m.Ratio()
}

// ForAlgorithm returns the scorer registered under name
func ForAlgorithm(name Algorithm) (Func, error) {
	switch name {
	case RatcliffObershelp, "":
		return Ratio, nil
	case Levenshtein:
		return edlibScorer(edlib.Levenshtein), nil
	case JaroWinkler:
		return edlibScorer(edlib.JaroWinkler), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Algorithms lists the accepted algorithm names
func Algorithms() []Algorithm {
	return []Algorithm{RatcliffObershelp, Levenshtein, JaroWinkler}
}

func edlibScorer(algo edlib.Algorithm) Func {
	return func(a, b string) float64 {
		if a == b {
			return 1.0
		}
		if a == "" || b == "" {
			return 0.0
		}
		if b < a {
			a, b = b, a
		}
		score, err := edlib.StringsSimilarity(a, b, algo)
		if err != nil {
			return 0.0
		}
		return clamp(float64(score))
	}
}

// explode splits s into one element per code point
func explode(s string) []string {
	return strings.Split(s, "")
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
