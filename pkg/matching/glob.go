package matching

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/docflow/pkg/errors"
	"github.com/arthur-debert/docflow/pkg/logging"
)

// MatchesGlob reports whether candidate matches pattern in full. Supported
// wildcards are "*", "?" and "[seq]" (with "[!seq]" negation). An unclosed
// "[" is matched literally. Matching is case sensitive.
func MatchesGlob(pattern, candidate string) bool {
	re, err := CompileGlob(pattern)
	if err != nil {
		logger := logging.GetLogger("matching.glob")
		logger.Warn().
			Err(err).
			Str("pattern", pattern).
			Msg("invalid glob pattern")
		return false
	}
	return re.MatchString(candidate)
}

// CompileGlob translates a glob pattern into an anchored regular expression.
func CompileGlob(pattern string) (*regexp.Regexp, error) {
	expr := translateGlob(pattern)
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "invalid glob pattern %q", pattern).
			WithDetail("pattern", pattern)
	}
	return re, nil
}

func translateGlob(pattern string) string {
	runes := []rune(pattern)
	var b strings.Builder
	b.WriteString(`^(?s:`)

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch c {
		case '*':
			// collapse runs of stars
			for i+1 < len(runes) && runes[i+1] == '*' {
				i++
			}
			b.WriteString(`.*`)
		case '?':
			b.WriteString(`.`)
		case '[':
			end := classEnd(runes, i)
			if end < 0 {
				b.WriteString(`\[`)
				continue
			}
			b.WriteString(translateClass(runes[i+1 : end]))
			i = end
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteString(`)$`)
	return b.String()
}

// classEnd returns the index of the "]" closing the class opened at start,
// or -1 when the class is unclosed. A "]" directly after "[" or "[!" is a
// member, not the terminator.
func classEnd(runes []rune, start int) int {
	j := start + 1
	if j < len(runes) && runes[j] == '!' {
		j++
	}
	if j < len(runes) && runes[j] == ']' {
		j++
	}
	for ; j < len(runes); j++ {
		if runes[j] == ']' {
			return j
		}
	}
	return -1
}

func translateClass(body []rune) string {
	var b strings.Builder
	b.WriteString(`[`)
	if len(body) > 0 && body[0] == '!' {
		b.WriteString(`^`)
		body = body[1:]
	}
	for _, c := range body {
		if c == '-' {
			b.WriteRune(c)
			continue
		}
		switch c {
		case '\\', '[', ']', '^':
			b.WriteRune('\\')
		}
		b.WriteRune(c)
	}
	b.WriteString(`]`)
	return b.String()
}
