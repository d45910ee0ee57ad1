package rules

import "github.com/michaelolof/vregistry/validators"

// Namespace qualifies every built-in type identifier, e.g. "rules.CharCount".
const Namespace = "rules"

var BaseValidators = validators.MappedConstructors{
	"CharCount":    NewCharCount,
	"HexValidator": NewHexValidator,
	"Json":         NewJson,
	"Pattern":      NewPattern,
	"Urn":          NewUrn,
}

// Builtins returns a fresh catalog holding the built-in validator types.
func Builtins() *validators.Catalog {
	c := validators.NewCatalog(Namespace)
	if err := c.AddAll(BaseValidators); err != nil {
		panic(err)
	}
	return c
}
