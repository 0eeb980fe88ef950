package catalog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/specialistvlad/aeroconst/internal/native"
)

var (
	// ErrEmptyName is returned when an entry has no name.
	ErrEmptyName = errors.New("catalog entry has an empty name")
	// ErrDuplicateName is returned when two entries share a name.
	ErrDuplicateName = errors.New("catalog entry name is not unique")
	// ErrUnresolvedSymbol is returned when a native source lacks a symbol the catalog needs.
	ErrUnresolvedSymbol = errors.New("native symbol not found")
)

// Catalog is an immutable, ordered set of uniquely named constants.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New builds a catalog from entries, keeping their order. Integer entries
// are expected before text entries; New does not reorder them.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)

	for i, e := range c.entries {
		if e.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyName)
		}
		if prev, exists := c.index[e.Name]; exists {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateName, e.Name, prev, i)
		}
		c.index[e.Name] = i
	}
	return c, nil
}

// Build resolves the fixed option table against src and returns the catalog.
func Build(src native.Source) (*Catalog, error) {
	entries := make([]Entry, 0, len(numericTable)+len(textTable))
	var missing []string

	for _, def := range numericTable {
		v, ok := src.Lookup(def.symbol)
		if !ok {
			missing = append(missing, def.symbol)
			continue
		}
		entries = append(entries, Entry{Name: def.name, Symbol: def.symbol, Value: Int(v)})
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnresolvedSymbol, missing)
	}

	for _, def := range textTable {
		entries = append(entries, Entry{Name: def.name, Value: Text(def.value)})
	}
	return New(entries...)
}

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := Build(native.Linked)
	if err != nil {
		// The table and the linked symbols ship together; a failure here is a build defect.
		panic(fmt.Sprintf("catalog: invalid built-in table: %v", err))
	}
	return c
})

// Default returns the catalog resolved against the linked native library.
func Default() *Catalog {
	return defaultCatalog()
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns a copy of all entries in publication order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Names returns all entry names in publication order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the entry with the given name.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	i, ok := c.index[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Count returns the number of entries of the given kind.
func (c *Catalog) Count(kind Kind) int {
	n := 0
	for _, e := range c.entries {
		if e.Value.Kind() == kind {
			n++
		}
	}
	return n
}
