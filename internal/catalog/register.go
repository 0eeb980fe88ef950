package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/specialistvlad/aeroconst/internal/ctxlog"
	"github.com/specialistvlad/aeroconst/internal/host"
)

// Register declares every entry of the catalog on class, in order. It stops
// at the first declaration the host rejects and returns that error wrapped
// with the entry name; constants declared before the failure stay declared.
func (c *Catalog) Register(class host.Class) error {
	if class == nil {
		return host.ErrInvalidClass
	}
	for _, e := range c.entries {
		if err := declare(class, e); err != nil {
			return fmt.Errorf("declare %s: %w", e.Name, err)
		}
	}
	return nil
}

// declare dispatches one entry to the host primitive for its kind.
func declare(class host.Class, e Entry) error {
	switch e.Value.Kind() {
	case KindInteger:
		v, _ := e.Value.Int()
		return class.DeclareInt(e.Name, v)
	case KindText:
		v, _ := e.Value.Text()
		return class.DeclareString(e.Name, v)
	default:
		return fmt.Errorf("unsupported value kind %s", e.Value.Kind())
	}
}

// ErrPublishedElsewhere is returned by Publish when the catalog was already
// published on a different class.
var ErrPublishedElsewhere = errors.New("constants already published on another class")

// Publisher registers a catalog at most once. Later calls with the same class
// return the result of the first one without touching it; calls with any
// other class fail with ErrPublishedElsewhere. Host classes must be
// comparable, which pointer receivers are.
type Publisher struct {
	catalog *Catalog
	once    sync.Once
	class   host.Class
	err     error
	done    atomic.Bool
}

// NewPublisher creates a Publisher for c.
func NewPublisher(c *Catalog) *Publisher {
	return &Publisher{catalog: c}
}

// Publish registers the catalog on class the first time it is called. The
// class of that first call is remembered; publishing again on it is a no-op.
func (p *Publisher) Publish(ctx context.Context, class host.Class) error {
	logger := ctxlog.FromContext(ctx)

	ran := false
	p.once.Do(func() {
		ran = true
		p.class = class
		logger.Debug("Registering option constants.", "count", p.catalog.Len(),
			"integers", p.catalog.Count(KindInteger), "texts", p.catalog.Count(KindText))
		p.err = p.catalog.Register(class)
		p.done.Store(p.err == nil)
	})

	if !ran {
		if class != p.class {
			logger.Warn("Option constants already published on another class.")
			return ErrPublishedElsewhere
		}
		logger.Debug("Option constants already registered, skipping.", "published", p.done.Load())
		return p.err
	}
	if p.err != nil {
		logger.Error("Option constant registration failed.", "error", p.err)
		return p.err
	}
	logger.Debug("Option constants registered.")
	return nil
}

// Published reports whether a Publish call has completed successfully.
func (p *Publisher) Published() bool {
	return p.done.Load()
}
