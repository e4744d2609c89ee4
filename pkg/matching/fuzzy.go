package matching

import (
	"regexp"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

func normalizeFuzzy(s string, insensitive bool) string {
	s = nonWordRe.ReplaceAllString(s, "")
	if insensitive {
		s = strings.ToLower(s)
	}
	return s
}

// PartialRatio scores how well the shorter string matches the best aligned
// window of the longer one, from 0 to 100. Windows one rune shorter and
// longer than the needle are also tried so a single dropped or doubled
// character costs one edit.
func PartialRatio(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) == 0 {
		return 0
	}

	needle := string(short)
	best := 0
	for size := len(short) - 1; size <= len(short)+1; size++ {
		if size < 1 || size > len(long) {
			continue
		}
		for i := 0; i+size <= len(long); i++ {
			window := string(long[i : i+size])
			dist := fuzzy.LevenshteinDistance(needle, window)
			score := 100 - dist*100/max(len(short), size)
			if score > best {
				best = score
				if best == 100 {
					return best
				}
			}
		}
	}
	return best
}

func matchFuzzy(pattern, text string, insensitive bool, threshold int) (bool, string) {
	p := strings.TrimSpace(normalizeFuzzy(pattern, insensitive))
	t := normalizeFuzzy(text, insensitive)
	if p == "" || t == "" {
		return false, ""
	}
	if PartialRatio(p, t) >= threshold {
		return true, p
	}
	return false, ""
}
