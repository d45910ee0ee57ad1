package rules

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	// HexRegex requires at least one hex digit.
	HexRegex = regexp.MustCompile(`^[A-Fa-f0-9]+$`)
	// HexLooseRegex also matches the empty string.
	HexLooseRegex = regexp.MustCompile(`(?i)^[0-9a-f]*$`)
)

type regexMatcher interface{ MatchString(string) bool }

// matchRegex reports whether val is a string matched by m.
func matchRegex(m regexMatcher, val any) bool {
	v, ok := val.(string)
	if !ok {
		return false
	}
	return m.MatchString(v)
}

// HexValidator accepts non-empty strings made only of hex digits.
type HexValidator struct{}

func NewHexValidator(args ...any) (any, error) {
	return HexValidator{}, nil
}

func (HexValidator) Test(val any) bool {
	return matchRegex(HexRegex, val)
}

// IsHexLoose is the closure flavour of the hex check meant for Registry.From.
// Unlike HexValidator it accepts the empty string.
func IsHexLoose(val any) bool {
	return matchRegex(HexLooseRegex, val)
}

// Pattern accepts strings matched by a regular expression supplied at
// construction time.
type Pattern struct {
	re *regexp.Regexp
}

func NewPattern(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, errors.New("validation rule 'Pattern' requires 1 expression argument")
	}

	expr, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("validation rule 'Pattern' expects a string expression, got %T", args[0])
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("validation rule 'Pattern': %w", err)
	}
	return Pattern{re: re}, nil
}

func (p Pattern) Test(val any) bool {
	return matchRegex(p.re, val)
}

func (p Pattern) String() string {
	return p.re.String()
}
