package gasket

import (
	"math"
	"strconv"
	"strings"
)

// ParseDimension converts a human-entered dimension string into a scalar.
// Accepted grammars, in priority order:
//
//	"3 1/2"  mixed fraction (a hyphen separator "3-1/2" is also accepted)
//	"3/4"    simple fraction
//	"3.5"    decimal
//
// The exact quotient is returned; nothing is rounded or clamped. An empty
// string, an unparseable token, a zero denominator or a non-finite value
// yields a *ParseError.
func ParseDimension(text string) (float64, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &ParseError{Text: text, Reason: "empty"}
	}
	// Hyphens are a common handwritten separator between the whole part and
	// the fraction ("1-1/2"). Normalize them to spaces before tokenizing.
	s = strings.ReplaceAll(s, "-", " ")

	if whole, frac, ok := strings.Cut(s, " "); ok {
		w, err := strconv.ParseFloat(strings.TrimSpace(whole), 64)
		if err != nil {
			return 0, &ParseError{Text: text, Reason: "bad whole part"}
		}
		f, perr := parseFraction(text, strings.TrimSpace(frac))
		if perr != nil {
			return 0, perr
		}
		return finite(text, w+f)
	}
	if strings.Contains(s, "/") {
		f, perr := parseFraction(text, s)
		if perr != nil {
			return 0, perr
		}
		return finite(text, f)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParseError{Text: text, Reason: "not a number"}
	}
	return finite(text, v)
}

func parseFraction(orig, s string) (float64, *ParseError) {
	num, den, ok := strings.Cut(s, "/")
	if !ok {
		return 0, &ParseError{Text: orig, Reason: "expected a fraction"}
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, &ParseError{Text: orig, Reason: "bad numerator"}
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil {
		return 0, &ParseError{Text: orig, Reason: "bad denominator"}
	}
	if d == 0 {
		return 0, &ParseError{Text: orig, Reason: "zero denominator"}
	}
	return n / d, nil
}

func finite(orig string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Text: orig, Reason: "not finite"}
	}
	return v, nil
}
