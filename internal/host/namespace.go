package host

import (
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Namespace is a Class whose constants are visible to HCL expressions as
// attributes of one variable named after the class.
//
// Declarations are expected to happen during startup, before the namespace
// is handed to readers. Once sealed it is read-only.
type Namespace struct {
	name   string
	consts *xsync.MapOf[string, cty.Value]
	sealed atomic.Bool
}

var _ Class = (*Namespace)(nil)

// NewNamespace creates an empty namespace. The name must be a valid HCL identifier.
func NewNamespace(name string) (*Namespace, error) {
	if !hclsyntax.ValidIdentifier(name) {
		return nil, fmt.Errorf("%w: %q is not a valid identifier", ErrInvalidClass, name)
	}
	return &Namespace{
		name:   name,
		consts: xsync.NewMapOf[string, cty.Value](),
	}, nil
}

// Name returns the variable name the namespace is exposed under.
func (ns *Namespace) Name() string {
	return ns.name
}

// DeclareInt implements Class.
func (ns *Namespace) DeclareInt(name string, value int64) error {
	return ns.declare(name, cty.NumberIntVal(value))
}

// DeclareString implements Class.
func (ns *Namespace) DeclareString(name string, value string) error {
	return ns.declare(name, cty.StringVal(value))
}

// declare stores a constant. Redeclaring an identical value is a no-op.
func (ns *Namespace) declare(name string, v cty.Value) error {
	if ns == nil || ns.consts == nil {
		return ErrInvalidClass
	}
	if name == "" {
		return ErrEmptyName
	}
	if ns.sealed.Load() {
		return fmt.Errorf("%w: cannot declare %s on %s", ErrSealed, name, ns.name)
	}

	actual, loaded := ns.consts.LoadOrStore(name, v)
	if loaded && !sameValue(actual, v) {
		return fmt.Errorf("%w: %s", ErrConflict, name)
	}
	return nil
}

func sameValue(a, b cty.Value) bool {
	return a.Type().Equals(b.Type()) && a.Equals(b).True()
}

// Seal makes the namespace read-only.
func (ns *Namespace) Seal() {
	ns.sealed.Store(true)
}

// Sealed reports whether Seal has been called.
func (ns *Namespace) Sealed() bool {
	return ns.sealed.Load()
}

// Len returns the number of declared constants.
func (ns *Namespace) Len() int {
	return ns.consts.Size()
}

// Lookup returns the raw cty value of a constant.
func (ns *Namespace) Lookup(name string) (cty.Value, bool) {
	return ns.consts.Load(name)
}

// Int returns an integer constant.
func (ns *Namespace) Int(name string) (int64, error) {
	v, ok := ns.consts.Load(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if !v.Type().Equals(cty.Number) {
		return 0, fmt.Errorf("%w: %s is %s, not number", ErrWrongType, name, v.Type().FriendlyName())
	}
	var out int64
	if err := gocty.FromCtyValue(v, &out); err != nil {
		return 0, fmt.Errorf("read %s: %w", name, err)
	}
	return out, nil
}

// String returns a string constant.
func (ns *Namespace) String(name string) (string, error) {
	v, ok := ns.consts.Load(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if !v.Type().Equals(cty.String) {
		return "", fmt.Errorf("%w: %s is %s, not string", ErrWrongType, name, v.Type().FriendlyName())
	}
	return v.AsString(), nil
}

// Names returns all declared names, sorted.
func (ns *Namespace) Names() []string {
	names := make([]string, 0, ns.consts.Size())
	ns.consts.Range(func(name string, _ cty.Value) bool {
		names = append(names, name)
		return true
	})
	sort.Strings(names)
	return names
}

// Object returns the namespace as a cty object, one attribute per constant.
func (ns *Namespace) Object() cty.Value {
	attrs := make(map[string]cty.Value, ns.consts.Size())
	ns.consts.Range(func(name string, v cty.Value) bool {
		attrs[name] = v
		return true
	})
	if len(attrs) == 0 {
		return cty.EmptyObjectVal
	}
	return cty.ObjectVal(attrs)
}

// EvalContext returns an evaluation context in which the namespace is bound
// to its name, e.g. `Aerospike.OPT_TTL`.
func (ns *Namespace) EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			ns.name: ns.Object(),
		},
	}
}

// Eval parses and evaluates a single HCL expression against the namespace.
func (ns *Namespace) Eval(src string) (cty.Value, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "<eval>", hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to parse expression: %w", diags)
	}
	v, diags := expr.Value(ns.EvalContext())
	if diags.HasErrors() {
		return cty.NilVal, fmt.Errorf("failed to evaluate expression: %w", diags)
	}
	return v, nil
}
