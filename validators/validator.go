package validators

// Validator answers a single boolean question about a single input value.
// Implementations must not panic on a value of an unexpected type; they
// report false instead.
type Validator interface {
	Test(data any) bool
}

// Func adapts a plain function to the Validator interface.
type Func func(data any) bool

func (f Func) Test(data any) bool {
	return f(data)
}

// Named is a validator bound to the name it was registered under. It carries
// either a captured function or a type-based validator, never both.
type Named struct {
	name     string
	callable Func
	impl     Validator
}

// FromFunc wraps a captured function under name.
func FromFunc(name string, fn Func) *Named {
	return &Named{name: name, callable: fn}
}

// FromValidator wraps a constructed type-based validator under name.
func FromValidator(name string, v Validator) *Named {
	return &Named{name: name, impl: v}
}

func (n *Named) Name() string {
	return n.name
}

// HasCallable reports whether the validator was built from a captured function.
func (n *Named) HasCallable() bool {
	return n != nil && n.callable != nil
}

// Test runs the captured function when present, otherwise the type-based
// validation procedure. A nil or empty Named reports false.
func (n *Named) Test(data any) bool {
	if n == nil {
		return false
	}
	if n.callable != nil {
		return n.callable(data)
	}
	if n.impl != nil {
		return n.impl.Test(data)
	}
	return false
}
