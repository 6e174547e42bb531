package compute

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/GriffinCanCode/cloudapi/pkg/types"
)

// disallowedPattern matches every run of characters that clean removes
var disallowedPattern = regexp.MustCompile(`[^A-Za-z0-9 ]+`)

// ProcessText applies op to text
func ProcessText(text string, op types.TextOperation) (types.TextResult, error) {
	var processed string
	switch op {
	case types.TextUpper:
		processed = cases.Upper(language.Und).String(text)
	case types.TextReverse:
		processed = Reverse(text)
	case types.TextClean:
		processed = Clean(text)
	default:
		return types.TextResult{}, fmt.Errorf("%w: %q (expected one of upper, reverse, clean)", ErrInvalidOperation, op)
	}

	return types.TextResult{
		OriginalText:  text,
		ProcessedText: processed,
		Operation:     op,
	}, nil
}

// Reverse reverses text by code point
func Reverse(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Clean deletes every character outside [A-Za-z0-9 ], then collapses runs of
// spaces to one and trims the ends. Removed characters are not replaced by a
// space: "a--b" becomes "ab" and "Hello World!" becomes "Hello World".
func Clean(text string) string {
	kept := disallowedPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(kept), " ")
}
