package rules

import (
	"errors"
	"fmt"

	"github.com/leodido/go-urn"
	"github.com/michaelolof/vregistry/utils"
	"github.com/valyala/fastjson"
)

// CharCount accepts strings whose byte length is at most Max.
type CharCount struct {
	max int
}

func NewCharCount(args ...any) (any, error) {
	if len(args) != 1 {
		return nil, errors.New("validation rule 'CharCount' requires 1 limit argument")
	}

	max, err := utils.AnyValueToInt(args[0])
	if err != nil {
		return nil, fmt.Errorf("validation rule 'CharCount': %w", err)
	}
	if max < 0 {
		return nil, fmt.Errorf("validation rule 'CharCount': limit %d must not be negative", max)
	}

	return CharCount{max: max}, nil
}

func (c CharCount) Test(val any) bool {
	v, ok := val.(string)
	return ok && len(v) <= c.max
}

// Urn accepts URNs as per RFC 2141.
type Urn struct{}

func NewUrn(args ...any) (any, error) {
	return Urn{}, nil
}

func (Urn) Test(val any) bool {
	v, ok := val.(string)
	if !ok {
		return false
	}
	_, match := urn.Parse([]byte(v))
	return match
}

// Json accepts strings or byte slices holding well-formed JSON text.
type Json struct{}

func NewJson(args ...any) (any, error) {
	return Json{}, nil
}

func (Json) Test(val any) bool {
	switch v := val.(type) {
	case string:
		return fastjson.Validate(v) == nil
	case []byte:
		return fastjson.ValidateBytes(v) == nil
	default:
		return false
	}
}
