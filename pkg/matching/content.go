package matching

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/docflow/pkg/errors"
	"github.com/arthur-debert/docflow/pkg/logging"
	"github.com/arthur-debert/docflow/pkg/types"
)

// DefaultFuzzyThreshold is the minimum partial similarity, in percent, for a
// FUZZY match.
const DefaultFuzzyThreshold = 90

// ContentMatcher applies content matching algorithms to document text.
type ContentMatcher struct {
	FuzzyThreshold int
}

// NewContentMatcher returns a matcher using threshold for FUZZY matching.
// Thresholds outside 1..100 fall back to DefaultFuzzyThreshold.
func NewContentMatcher(threshold int) ContentMatcher {
	if threshold <= 0 || threshold > 100 {
		threshold = DefaultFuzzyThreshold
	}
	return ContentMatcher{FuzzyThreshold: threshold}
}

// MatchesContent matches text with the default fuzzy threshold.
func MatchesContent(alg types.MatchingAlgorithm, pattern, text string, insensitive bool) (bool, string, error) {
	return NewContentMatcher(DefaultFuzzyThreshold).Match(alg, pattern, text, insensitive)
}

// Match reports whether text satisfies pattern under alg and returns the
// term that matched. A malformed pattern yields false and a PATTERN_INVALID
// error.
func (m ContentMatcher) Match(alg types.MatchingAlgorithm, pattern, text string, insensitive bool) (bool, string, error) {
	logger := logging.GetLogger("matching.content")

	switch alg {
	case types.MatchNone:
		return true, "", nil
	case types.MatchLiteral:
		return matchLiteral(pattern, text, insensitive), pattern, nil
	case types.MatchAnyWord:
		return matchWords(pattern, text, insensitive, false)
	case types.MatchAllWords:
		return matchWords(pattern, text, insensitive, true)
	case types.MatchRegex:
		re, err := compileRegex(pattern, insensitive)
		if err != nil {
			logger.Warn().Err(err).Str("pattern", pattern).Msg("invalid content regex")
			return false, "", err
		}
		loc := re.FindStringIndex(text)
		if loc == nil {
			return false, "", nil
		}
		return true, text[loc[0]:loc[1]], nil
	case types.MatchFuzzy:
		ok, term := matchFuzzy(pattern, text, insensitive, m.FuzzyThreshold)
		return ok, term, nil
	}

	return false, "", errors.Newf(errors.ErrInvalidInput, "unknown matching algorithm %d", int(alg)).
		WithDetail("algorithm", int(alg))
}

func matchLiteral(pattern, text string, insensitive bool) bool {
	if pattern == "" {
		return false
	}
	if insensitive {
		return strings.Contains(strings.ToLower(text), strings.ToLower(pattern))
	}
	return strings.Contains(text, pattern)
}

func compileRegex(pattern string, insensitive bool) (*regexp.Regexp, error) {
	expr := pattern
	if insensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid regular expression %q", pattern).
			WithDetail("pattern", pattern)
	}
	return re, nil
}

var (
	termRe  = regexp.MustCompile(`"([^"]+)"|(\S+)`)
	spaceRe = regexp.MustCompile(`\s+`)
)

// SplitTerms splits a word pattern into terms. Double-quoted phrases stay
// together with their inner whitespace normalized.
func SplitTerms(pattern string) []string {
	var terms []string
	for _, m := range termRe.FindAllStringSubmatch(pattern, -1) {
		term := m[1]
		if term == "" {
			term = m[2]
		}
		term = spaceRe.ReplaceAllString(strings.TrimSpace(term), " ")
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// Word boundaries for terms. RE2's \b only knows ASCII word characters, so
// letters such as "é" or "ß" are guarded explicitly.
const (
	wordStart = `(?:^|[^\p{L}\p{N}_])`
	wordEnd   = `(?:$|[^\p{L}\p{N}_])`
)

func termRegex(term string, insensitive bool) (*regexp.Regexp, error) {
	quoted := strings.ReplaceAll(regexp.QuoteMeta(term), " ", `\s+`)
	return compileRegex(wordStart+quoted+wordEnd, insensitive)
}

// matchWords matches terms on word boundaries. With all set every term must
// be present; otherwise the first present term wins.
func matchWords(pattern, text string, insensitive, all bool) (bool, string, error) {
	terms := SplitTerms(pattern)
	if len(terms) == 0 {
		return false, "", nil
	}
	for _, term := range terms {
		re, err := termRegex(term, insensitive)
		if err != nil {
			return false, "", err
		}
		found := re.MatchString(text)
		if all && !found {
			return false, "", nil
		}
		if !all && found {
			return true, term, nil
		}
	}
	if all {
		return text != "", pattern, nil
	}
	return false, "", nil
}
