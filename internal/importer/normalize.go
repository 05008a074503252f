package importer

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// Greedy: a label with several parenthesized groups loses everything
	// from the first '(' to the last ')'.
	parenRe = regexp.MustCompile(`\(.*\)`)
	noteRe  = regexp.MustCompile(`\(([^)]*)\)`)

	titleCaser = cases.Title(language.English)
)

// CleanName strips parenthesized notes and asterisk markers from a raw
// label, singularizes the remainder with a naive heuristic, and title-cases
// the result. The heuristic mis-singularizes some words (Grapes -> Grap);
// that is an accepted approximation of the source data, not a rule of
// English.
func CleanName(text string) string {
	name := parenRe.ReplaceAllString(text, "")
	name = strings.ReplaceAll(name, "*", "")
	name = strings.TrimSpace(name)
	name = singularize(name)
	return titleCaser.String(name)
}

func singularize(name string) string {
	lower := strings.ToLower(name)
	switch {
	case len(name) > 3 && strings.HasSuffix(lower, "ies"):
		// Berries -> Berry
		return name[:len(name)-3] + "y"
	case len(name) > 3 && strings.HasSuffix(lower, "oes"):
		// Tomatoes -> Tomato
		return name[:len(name)-2]
	case strings.HasSuffix(lower, "es"):
		if len(name) > 3 && !isVowel(lower[len(lower)-3]) {
			// Radishes -> Radish
			return name[:len(name)-2]
		}
		return name
	case strings.HasSuffix(lower, "s"):
		if len(name) > 2 && lower[len(lower)-2] != 's' {
			// Carrots -> Carrot; Molasses is left alone by the 'ss' guard
			return name[:len(name)-1]
		}
		return name
	default:
		return name
	}
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// ExtractNotes collects the content of the first parenthesized group in the
// label plus a moderation qualifier derived from asterisk markers, joined
// with ", ". Returns "" when the label carries neither.
func ExtractNotes(text string) string {
	var notes []string

	if m := noteRe.FindStringSubmatch(text); m != nil {
		notes = append(notes, m[1])
	}

	if strings.Contains(text, "**") {
		notes = append(notes, "okay rarely")
	} else if strings.Contains(text, "*") {
		notes = append(notes, "okay in moderation")
	}

	return strings.Join(notes, ", ")
}
