package vregistry

import (
	"sort"
	"sync"

	"github.com/michaelolof/vregistry/utils"
	"github.com/michaelolof/vregistry/validators"
)

// EntryState is the lifecycle position of a name inside a Registry.
type EntryState int

const (
	StateUnregistered EntryState = iota
	StateUnresolved
	StateResolved
)

func (s EntryState) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateResolved:
		return "resolved"
	default:
		return "unregistered"
	}
}

// deferredEntry records how to build a validator on its first dispatch.
type deferredEntry struct {
	typ  validators.TypeID
	args []any
}

// Registry maps names to validators. Entries are either resolved (a built,
// invocable validator) or unresolved (a type identifier plus constructor
// arguments, built on first dispatch). A Registry is safe for concurrent use.
//
// Constructors run while the registry lock is held and must not call back
// into the same Registry. Validators run outside the lock.
type Registry struct {
	mu         sync.Mutex
	resolved   map[string]*validators.Named
	unresolved map[string]deferredEntry

	catalog  *validators.Catalog
	logger   Logger
	fallback bool
}

var _ Dispatcher = (*Registry)(nil)

// New creates an empty registry.
func New(opts ...Option) *Registry {
	o := defaultRegistryOptions()
	for _, fn := range opts {
		fn(o)
	}
	o.resolve()

	return &Registry{
		resolved:   make(map[string]*validators.Named),
		unresolved: make(map[string]deferredEntry),
		catalog:    o.catalog,
		logger:     o.logger,
		fallback:   o.fallback,
	}
}

// Catalog returns the table of validator types known to the registry.
func (r *Registry) Catalog() *validators.Catalog {
	return r.catalog
}

// Register records that a validator of type typeIdentifier should be built
// under a name on its first dispatch. typeIdentifier may be qualified
// ("rules.CharCount") or not ("CharCount"). The name defaults to the
// unqualified type name. With Eager the validator is built immediately.
//
// Registering a name that is still unresolved replaces its pending entry.
func (r *Registry) Register(typeIdentifier string, opts ...RegisterOption) error {
	var o registerOptions
	for _, fn := range opts {
		fn(&o)
	}

	if typeIdentifier == "" {
		return newError(ErrInvalidRegistration, typeIdentifier, nil)
	}
	name := fallback(o.name, utils.LastSegment(typeIdentifier, "."))

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.resolved[name]; ok {
		return newError(ErrAlreadyRegistered, name, nil)
	}

	id, ok := r.catalog.Resolve(typeIdentifier)
	if !ok {
		return newError(ErrUnknownType, typeIdentifier, nil)
	}

	entry := deferredEntry{typ: id, args: append([]any(nil), o.args...)}

	if o.eager {
		named, err := r.construct(name, entry)
		if err != nil {
			return err
		}
		delete(r.unresolved, name)
		r.resolved[name] = named
		r.logger.Debug("validator registered", "name", name, "type", id.String(), "eager", true)
		return nil
	}

	if prev, ok := r.unresolved[name]; ok {
		r.logger.Warn("replacing unresolved validator", "name", name, "previous", prev.typ.String(), "type", id.String())
	}
	r.unresolved[name] = entry
	r.logger.Debug("validator registered", "name", name, "type", id.String(), "eager", false)
	return nil
}

// From registers fn as a resolved validator under name. A pending unresolved
// entry of the same name is dropped.
func (r *Registry) From(name string, fn func(data any) bool) error {
	if name == "" || fn == nil {
		return newError(ErrInvalidRegistration, name, nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.resolved[name]; ok {
		return newError(ErrAlreadyRegistered, name, nil)
	}

	if _, ok := r.unresolved[name]; ok {
		delete(r.unresolved, name)
		r.logger.Debug("unresolved validator superseded", "name", name)
	}
	r.resolved[name] = validators.FromFunc(name, fn)
	r.logger.Debug("validator registered", "name", name, "callable", true)
	return nil
}

// Unregister removes the resolved validator stored under name. Names that
// are not resolved are left alone.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.resolved[name]; !ok {
		return
	}
	delete(r.resolved, name)
	r.logger.Debug("validator unregistered", "name", name)
}

// Dispatch runs the validator registered under name against the first
// argument (nil when none is given; extra arguments are ignored).
//
// An unresolved entry is built first. A name with no entry at all is looked
// up in the catalog by upper-casing its first letter ("charCount" becomes
// "rules.CharCount"); when that type exists it is built with no arguments.
func (r *Registry) Dispatch(name string, args ...any) (bool, error) {
	v, err := r.lookup(name)
	if err != nil {
		return false, err
	}

	var data any
	if len(args) > 0 {
		data = args[0]
	}
	return v.Test(data), nil
}

// Bind returns a function dispatching to name, so callers can hold a typed
// handle instead of repeating the name.
func (r *Registry) Bind(name string) func(data any) (bool, error) {
	return func(data any) (bool, error) {
		return r.Dispatch(name, data)
	}
}

// State reports where name is in its lifecycle.
func (r *Registry) State(name string) EntryState {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.resolved[name]; ok {
		return StateResolved
	}
	if _, ok := r.unresolved[name]; ok {
		return StateUnresolved
	}
	return StateUnregistered
}

// Names returns the resolved and unresolved names in lexicographic order.
func (r *Registry) Names() (resolved []string, unresolved []string) {
	r.mu.Lock()
	resolved = make([]string, 0, len(r.resolved))
	for name := range r.resolved {
		resolved = append(resolved, name)
	}
	unresolved = make([]string, 0, len(r.unresolved))
	for name := range r.unresolved {
		unresolved = append(unresolved, name)
	}
	r.mu.Unlock()

	sort.Strings(resolved)
	sort.Strings(unresolved)
	return resolved, unresolved
}

func (r *Registry) lookup(name string) (*validators.Named, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.resolved[name]; ok {
		return v, nil
	}

	if entry, ok := r.unresolved[name]; ok {
		named, err := r.construct(name, entry)
		if err != nil {
			return nil, err
		}
		delete(r.unresolved, name)
		r.resolved[name] = named
		r.logger.Debug("validator resolved", "name", name, "type", entry.typ.String())
		return named, nil
	}

	if !r.fallback || name == "" {
		return nil, newError(ErrUnknownValidator, name, nil)
	}

	candidate := r.catalog.Qualify(utils.UpperFirst(name))
	if _, ok := r.catalog.Lookup(candidate); !ok {
		return nil, newError(ErrUnknownValidator, name, nil)
	}

	named, err := r.construct(name, deferredEntry{typ: candidate})
	if err != nil {
		return nil, err
	}
	r.resolved[name] = named
	r.logger.Debug("validator resolved by convention", "name", name, "type", candidate.String())
	return named, nil
}

// construct builds entry without touching registry state.
func (r *Registry) construct(name string, entry deferredEntry) (*validators.Named, error) {
	ctor, ok := r.catalog.Lookup(entry.typ)
	if !ok {
		return nil, newError(ErrUnknownType, entry.typ.String(), nil)
	}

	built, err := ctor(entry.args...)
	if err != nil {
		return nil, newError(ErrConstruction, name, err)
	}

	v, ok := built.(validators.Validator)
	if !ok || v == nil {
		return nil, newError(ErrInvalidValidatorType, entry.typ.String(), nil)
	}
	return validators.FromValidator(name, v), nil
}
