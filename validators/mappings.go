package validators

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/michaelolof/vregistry/utils"
)

// TypeID is a qualified validator type identifier such as "rules.CharCount".
type TypeID string

// Unqualified returns the type name without its namespace.
func (t TypeID) Unqualified() string {
	return utils.LastSegment(string(t), ".")
}

func (t TypeID) String() string {
	return string(t)
}

// Constructor builds a validator instance from constructor arguments. The
// result is checked against the Validator interface by the caller, so a
// constructor may return any value.
type Constructor = func(args ...any) (any, error)

type MappedConstructors = map[string]Constructor

// Catalog is the table of validator types known to a registry, keyed by
// qualified identifier. It is filled once at start-up and read afterwards;
// it is not safe for concurrent mutation.
type Catalog struct {
	namespace string
	types     map[TypeID]Constructor
}

func NewCatalog(namespace string) *Catalog {
	return &Catalog{
		namespace: strings.Trim(namespace, "."),
		types:     make(map[TypeID]Constructor),
	}
}

func (c *Catalog) Namespace() string {
	return c.namespace
}

// Qualify places typeName inside the catalog namespace. Names that already
// carry a namespace are returned as-is.
func (c *Catalog) Qualify(typeName string) TypeID {
	if strings.Contains(typeName, ".") || c.namespace == "" {
		return TypeID(typeName)
	}
	return TypeID(c.namespace + "." + typeName)
}

// Add registers a constructor under the qualified form of typeName.
func (c *Catalog) Add(typeName string, ctor Constructor) error {
	if typeName == "" || ctor == nil {
		return errors.New("catalog: invalid type name or constructor")
	}

	id := c.Qualify(typeName)
	if _, ok := c.types[id]; ok {
		return fmt.Errorf("catalog: type '%s' already added", id)
	}
	c.types[id] = ctor
	return nil
}

// AddAll adds every entry of mp, stopping at the first failure.
func (c *Catalog) AddAll(mp MappedConstructors) error {
	names := make([]string, 0, len(mp))
	for name := range mp {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := c.Add(name, mp[name]); err != nil {
			return err
		}
	}
	return nil
}

// Resolve maps a qualified or unqualified identifier to a known TypeID.
func (c *Catalog) Resolve(identifier string) (TypeID, bool) {
	if c == nil || identifier == "" {
		return "", false
	}
	id := c.Qualify(identifier)
	if _, ok := c.types[id]; ok {
		return id, true
	}
	return "", false
}

func (c *Catalog) Lookup(id TypeID) (Constructor, bool) {
	if c == nil {
		return nil, false
	}
	ctor, ok := c.types[id]
	return ctor, ok
}

// IDs returns every known identifier in lexicographic order.
func (c *Catalog) IDs() []TypeID {
	ids := make([]TypeID, 0, len(c.types))
	for id := range c.types {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
