// Package checkkey converts raw check-number values into canonical keys
// used for matching. Normalization is a pure function of the input value
// and the active options; identical inputs always produce identical keys.
package checkkey

import (
	"regexp"
	"strings"

	"github.com/checkmatch-dev/checkmatch/internal/model"
)

// NoKey is the sentinel for "no usable check number". It never matches
// any reference entry.
const NoKey = ""

// Options enumerates the independently togglable normalization steps,
// applied in a fixed order: numeric coercion, trim, trailing-.0 strip,
// digit extraction.
type Options struct {
	TrimSpaces            bool
	StringifyNumeric      bool
	StripTrailingDotZero  bool
	ExtractDigitsFromText bool
}

// DefaultOptions enables every normalization step: trimmed, numeric
// 101.0 and 101 both keyed as "101", and values like "Check 101" keyed
// by their digits.
func DefaultOptions() Options {
	return Options{
		TrimSpaces:            true,
		StringifyNumeric:      true,
		StripTrailingDotZero:  true,
		ExtractDigitsFromText: true,
	}
}

var (
	// Prefixed forms like "Check 101", "Cheque #101", "CHK-101".
	prefixedPattern = regexp.MustCompile(`(?i)^\s*(?:check|cheque|chk)\s*[-:#]*\s*(\d+)\s*$`)
	digitRunPattern = regexp.MustCompile(`\d+`)
	allDigits       = regexp.MustCompile(`^\d+$`)
)

// Normalize derives the canonical key for a raw check-number cell.
// Empty or whitespace-only values yield NoKey.
func Normalize(cell model.Cell, opts Options) string {
	if cell.IsEmpty() {
		return NoKey
	}

	text := cell.Text
	if cell.Numeric && opts.StringifyNumeric {
		text = cell.Number.String()
	}

	if opts.TrimSpaces {
		text = strings.TrimSpace(text)
	}

	// Whitespace-only counts as missing regardless of the trim option.
	if strings.TrimSpace(text) == "" {
		return NoKey
	}

	if opts.StripTrailingDotZero {
		if rest, ok := strings.CutSuffix(text, ".0"); ok && allDigits.MatchString(rest) {
			text = rest
		}
	}

	if opts.ExtractDigitsFromText {
		if m := prefixedPattern.FindStringSubmatch(text); m != nil {
			return m[1]
		}
		if run := digitRunPattern.FindString(text); run != "" {
			return run
		}
		// No digits anywhere: fall through to the text itself.
	}

	return text
}
