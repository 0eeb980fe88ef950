package catalog

import (
	"fmt"

	"github.com/specialistvlad/aeroconst/internal/native"
)

// DriftKind classifies a Drift.
type DriftKind int

const (
	// DriftMissing means the oracle does not define the entry's symbol.
	DriftMissing DriftKind = iota
	// DriftMismatch means the oracle defines the symbol with another value.
	DriftMismatch
)

func (k DriftKind) String() string {
	if k == DriftMissing {
		return "missing"
	}
	return "mismatch"
}

// Drift is a disagreement between a catalog entry and an external oracle.
type Drift struct {
	Kind   DriftKind
	Name   string
	Symbol string
	Have   int64
	Want   int64
}

func (d Drift) String() string {
	if d.Kind == DriftMissing {
		return fmt.Sprintf("%s: symbol %s not defined by oracle", d.Name, d.Symbol)
	}
	return fmt.Sprintf("%s: %s is %d, oracle has %d", d.Name, d.Symbol, d.Have, d.Want)
}

// Verify compares every integer entry with the value oracle defines for its
// symbol. Text entries are owned by the binding and are not checked. The
// result is in publication order and empty when nothing drifted.
func (c *Catalog) Verify(oracle native.Source) []Drift {
	var drifts []Drift
	for _, e := range c.entries {
		have, ok := e.Value.Int()
		if !ok {
			continue
		}
		want, found := oracle.Lookup(e.Symbol)
		switch {
		case !found:
			drifts = append(drifts, Drift{Kind: DriftMissing, Name: e.Name, Symbol: e.Symbol, Have: have})
		case want != have:
			drifts = append(drifts, Drift{Kind: DriftMismatch, Name: e.Name, Symbol: e.Symbol, Have: have, Want: want})
		}
	}
	return drifts
}
