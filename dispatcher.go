package vregistry

import "github.com/michaelolof/vregistry/validators"

// Dispatcher is the name-based surface of a Registry, implemented by *Registry.
type Dispatcher interface {
	Register(typeIdentifier string, opts ...RegisterOption) error
	From(name string, fn func(data any) bool) error
	Unregister(name string)
	Dispatch(name string, args ...any) (bool, error)
	Bind(name string) func(data any) (bool, error)
	State(name string) EntryState
	Names() (resolved []string, unresolved []string)
	Catalog() *validators.Catalog
}
