package vregistry

import (
	"log/slog"

	"github.com/michaelolof/vregistry/validators"
	"github.com/michaelolof/vregistry/validators/rules"
)

type registryOptions struct {
	catalog  *validators.Catalog
	logger   Logger
	fallback bool
}

func defaultRegistryOptions() *registryOptions {
	return &registryOptions{
		catalog:  nil,
		logger:   nil,
		fallback: true,
	}
}

// Option configures a Registry.
type Option func(*registryOptions)

// WithCatalog sets the table of known validator types. Defaults to rules.Builtins().
func WithCatalog(c *validators.Catalog) Option {
	return func(o *registryOptions) { o.catalog = c }
}

// WithLogger sets the registry logger. Defaults to slog.Default().
func WithLogger(l Logger) Option {
	return func(o *registryOptions) { o.logger = l }
}

// WithoutFallback disables convention-based lookup of unregistered names.
func WithoutFallback() Option {
	return func(o *registryOptions) { o.fallback = false }
}

func (o *registryOptions) resolve() {
	if o.catalog == nil {
		o.catalog = rules.Builtins()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
}

type registerOptions struct {
	name  string
	args  []any
	eager bool
}

// RegisterOption configures a single Register call.
type RegisterOption func(*registerOptions)

// WithName overrides the registration name. Defaults to the unqualified type name.
func WithName(name string) RegisterOption {
	return func(o *registerOptions) { o.name = name }
}

// WithArgs records constructor arguments forwarded when the validator is built.
func WithArgs(args ...any) RegisterOption {
	return func(o *registerOptions) { o.args = args }
}

// Eager constructs the validator during Register and stores it resolved,
// instead of deferring construction to the first dispatch.
func Eager() RegisterOption {
	return func(o *registerOptions) { o.eager = true }
}
