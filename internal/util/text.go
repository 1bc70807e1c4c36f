package util

import (
	"regexp"
	"strings"
)

var (
	reQuotes  = regexp.MustCompile(`["'` + "`" + `«»]`)
	reSymbols = regexp.MustCompile(`[^\pL\pN\-/\s.]`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// NormalizeText upper-cases a product name and strips everything that
// is noise for comparison purposes (quotes, punctuation, repeated
// whitespace). Accented letters are kept as-is.
func NormalizeText(input string) string {
	s := strings.ToUpper(input)
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reQuotes.ReplaceAllString(s, " ")
	s = reSymbols.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func Tokenize(input string) []string {
	norm := NormalizeText(input)
	parts := strings.Split(norm, " ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len([]rune(p)) >= 2 {
			out = append(out, p)
		}
	}
	return out
}

// DiceCoefficient scores two strings by shared character bigrams.
func DiceCoefficient(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1
	}

	pairs := func(s string) []string {
		r := []rune(s)
		if len(r) < 2 {
			return nil
		}
		out := make([]string, 0, len(r)-1)
		for i := 0; i < len(r)-1; i++ {
			out = append(out, string(r[i:i+2]))
		}
		return out
	}

	aPairs := pairs(a)
	bPairs := pairs(b)
	if len(aPairs) == 0 || len(bPairs) == 0 {
		return 0
	}

	bCount := map[string]int{}
	for _, p := range bPairs {
		bCount[p]++
	}
	inter := 0
	for _, p := range aPairs {
		if bCount[p] > 0 {
			inter++
			bCount[p]--
		}
	}

	return float64(2*inter) / float64(len(aPairs)+len(bPairs))
}
