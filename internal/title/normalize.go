// Package title cleans noisy commercial disc titles and classifies them.
//
// Barcode directories return retailer listings like
// "20th Century Fox Home Entertainment The Matrix (Blu-ray) [2011]"; the
// normalizer reduces those to a searchable title through an ordered rule
// pipeline: studio prefix strip, bracketed span strip, format/edition token
// strip, whitespace collapse, trailing punctuation trim.
package title

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// yearRegex matches a 4-digit token enclosed in brackets or parentheses.
var yearRegex = regexp.MustCompile(`[\[(](\d{4})[\])]`)

// bracketRegex matches bracketed and parenthesized spans, including the
// leading whitespace so removal doesn't leave double spaces.
var bracketRegex = regexp.MustCompile(`\s*[\(\[][^)\]]*[\)\]]`)

// studioPrefixes are known distributor names anchored at the start of
// directory titles. Matched case-insensitively, longest first.
var studioPrefixes = []string{
	"20th Century Fox Home Entertainment",
	"20th Century Fox",
	"Sony Pictures Home Entertainment",
	"Sony Pictures",
	"Universal Studios Home Entertainment",
	"Universal Studios",
	"Warner Bros. Home Entertainment",
	"Warner Bros",
	"Warner Home Video",
	"Paramount Home Entertainment",
	"Paramount Pictures",
	"Walt Disney Video",
	"Walt Disney Studios",
	"Lionsgate Home Entertainment",
	"Lionsgate",
	"Mill Creek Entertainment",
	"MGM Home Entertainment",
	"Criterion Collection",
}

// formatTokens are resolution and format markers stripped wherever they appear.
var formatTokens = []string{"3D", "4K", "UHD", "Ultra HD", "HD"}

// suffixVocabulary are trailing words the directory appends: media formats,
// edition names, and genre labels that are not part of the title. Stripped
// repeatedly from the end, case-insensitively.
var suffixVocabulary = []string{
	"Blu-ray", "Blu-Ray", "BluRay", "DVD", "Digital",
	"Widescreen", "Full Screen", "Fullscreen",
	"Special Edition", "Collector's Edition", "Limited Edition",
	"Anniversary Edition", "Extended Edition", "Director's Cut",
	"Steelbook", "Mill Creek",
	"Comedy", "Drama", "Action", "Horror", "Thriller",
}

// ExtractYear scans for a 4-digit token enclosed in brackets or parentheses
// and returns the first plausible release year.
func ExtractYear(raw string) (int, bool) {
	for _, m := range yearRegex.FindAllStringSubmatch(raw, -1) {
		year, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if year >= 1880 && year <= 2100 {
			return year, true
		}
	}
	return 0, false
}

// Clean strips packaging and studio noise from a raw directory title.
// It never fails on malformed input, and on a string with no recognizable
// noise it is the identity transform, so Clean(Clean(x)) == Clean(x).
func Clean(raw string) string {
	s := strings.TrimSpace(raw)

	// 1. Studio prefix strip, anchored at the start.
	for _, prefix := range studioPrefixes {
		if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
			s = strings.TrimLeft(s[len(prefix):], " \t-–—:")
			break
		}
	}

	// 2. Bracketed span strip.
	s = bracketRegex.ReplaceAllString(s, "")

	// 3. Format token strip.
	for _, token := range formatTokens {
		s = removePhrase(s, token)
	}

	// 4. Suffix vocabulary strip, repeated until stable.
	const separators = " \t-–—:;,."
	for {
		next := strings.TrimRight(s, separators)
		for _, suffix := range suffixVocabulary {
			if len(next) <= len(suffix) || !strings.EqualFold(next[len(next)-len(suffix):], suffix) {
				continue
			}
			rest := next[:len(next)-len(suffix)]
			// Strip only at a word boundary.
			if trimmed := strings.TrimRight(rest, separators); trimmed != rest {
				next = trimmed
				break
			}
		}
		if next == s {
			break
		}
		s = next
	}

	// 5. Whitespace collapse and trailing punctuation trim.
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimRight(s, " -–—:;,.")
}

// removePhrase removes whole-word occurrences of a phrase, case-insensitively.
// Multi-word phrases like "Ultra HD" match as consecutive words.
func removePhrase(s, phrase string) string {
	want := strings.Fields(phrase)
	fields := strings.Fields(s)
	var kept []string
	for i := 0; i < len(fields); {
		if phraseAt(fields[i:], want) {
			i += len(want)
			continue
		}
		kept = append(kept, fields[i])
		i++
	}
	return strings.Join(kept, " ")
}

func phraseAt(fields, want []string) bool {
	if len(fields) < len(want) {
		return false
	}
	for i := range want {
		if !strings.EqualFold(fields[i], want[i]) {
			return false
		}
	}
	return true
}

// Fold lowercases a title and removes accents for comparison purposes.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return result
}
