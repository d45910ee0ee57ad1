package vregistry

import (
	"fmt"

	"github.com/michaelolof/vregistry/cont"
	"github.com/michaelolof/vregistry/validators"
	"github.com/valyala/fastjson"
)

// LoadManifest registers every entry of a JSON manifest in order:
//
//	{"validators": [
//	  {"type": "rules.CharCount", "name": "Short", "args": [32]},
//	  {"type": "HexValidator", "eager": true}
//	]}
//
// Loading stops at the first failing entry; entries before it stay registered.
func (r *Registry) LoadManifest(bs []byte) error {
	var defs []validators.Definition
	var eager []bool

	err := cont.Parse(bs, func(v *fastjson.Value) error {
		if v.Type() != fastjson.TypeObject {
			return fmt.Errorf("manifest: document must be an object")
		}

		var items []*fastjson.Value
		if vs := v.Get("validators"); vs != nil {
			if vs.Type() != fastjson.TypeArray {
				return fmt.Errorf("manifest: 'validators' must be an array")
			}
			items, _ = vs.Array()
		}

		for i, item := range items {
			typ, err := cont.GetString(item, "type")
			if err != nil {
				return fmt.Errorf("manifest: entry %d: type: %w", i, err)
			}

			def := validators.Definition{Type: typ}
			if item.Exists("name") {
				if def.Name, err = cont.GetString(item, "name"); err != nil {
					return fmt.Errorf("manifest: entry %d: name: %w", i, err)
				}
			}

			if args := item.Get("args"); args != nil && args.Type() != fastjson.TypeNull {
				raw, err := cont.ToAny(args)
				if err != nil {
					return fmt.Errorf("manifest: entry %d: args: %w", i, err)
				}
				list, ok := raw.([]any)
				if !ok {
					return fmt.Errorf("manifest: entry %d: args must be an array", i)
				}
				def.Args = list
			}

			var isEager bool
			if e := item.Get("eager"); e != nil {
				switch e.Type() {
				case fastjson.TypeTrue:
					isEager = true
				case fastjson.TypeFalse:
				default:
					return fmt.Errorf("manifest: entry %d: eager must be a boolean", i)
				}
			}

			defs = append(defs, def)
			eager = append(eager, isEager)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for i, def := range defs {
		opts := []RegisterOption{WithName(def.Name), WithArgs(def.Args...)}
		if eager[i] {
			opts = append(opts, Eager())
		}
		if err := r.Register(def.Type, opts...); err != nil {
			return fmt.Errorf("manifest: entry %d: %w", i, err)
		}
	}
	return nil
}

// RegisterDefinitions registers parsed definitions such as those returned by
// validators.ParseDefinitions, stopping at the first failure.
func (r *Registry) RegisterDefinitions(defs []validators.Definition) error {
	for _, def := range defs {
		if err := r.Register(def.Type, WithName(def.Name), WithArgs(def.Args...)); err != nil {
			return err
		}
	}
	return nil
}
