package cont

import (
	"errors"
	"fmt"

	"github.com/valyala/fastjson"
)

type ContentType string

const (
	ApplicationJson ContentType = "application/json"
)

var parserPool fastjson.ParserPool

// Parse parses bs and hands the document to fn. The value must not be
// retained after fn returns since the parser goes back to the pool.
func Parse(bs []byte, fn func(v *fastjson.Value) error) error {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(bs)
	if err != nil {
		return err
	}
	return fn(v)
}

// ParseValue decodes a JSON document into plain Go values: string, float64,
// bool, nil, []any and map[string]any.
func ParseValue(bs []byte) (any, error) {
	var out any
	err := Parse(bs, func(v *fastjson.Value) error {
		var err error
		out, err = ToAny(v)
		return err
	})
	return out, err
}

// ToAny converts a parsed fastjson value into plain Go values.
func ToAny(v *fastjson.Value) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch v.Type() {
	case fastjson.TypeNull:
		return nil, nil
	case fastjson.TypeTrue:
		return true, nil
	case fastjson.TypeFalse:
		return false, nil
	case fastjson.TypeString:
		bs, err := v.StringBytes()
		if err != nil {
			return nil, err
		}
		return string(bs), nil
	case fastjson.TypeNumber:
		return v.Float64()
	case fastjson.TypeArray:
		items, err := v.Array()
		if err != nil {
			return nil, err
		}
		arr := make([]any, 0, len(items))
		for _, item := range items {
			val, err := ToAny(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case fastjson.TypeObject:
		obj, err := v.Object()
		if err != nil {
			return nil, err
		}
		mp := make(map[string]any, obj.Len())
		var visitErr error
		obj.Visit(func(key []byte, item *fastjson.Value) {
			if visitErr != nil {
				return
			}
			val, err := ToAny(item)
			if err != nil {
				visitErr = err
				return
			}
			mp[string(key)] = val
		})
		return mp, visitErr
	default:
		return nil, fmt.Errorf("unsupported json type %s", v.Type())
	}
}

// GetString returns the string stored under keys, or an error when it is
// missing or not a string.
func GetString(v *fastjson.Value, keys ...string) (string, error) {
	item := v.Get(keys...)
	if item == nil {
		return "", errors.New("missing json field")
	}
	bs, err := item.StringBytes()
	if err != nil {
		return "", err
	}
	return string(bs), nil
}
