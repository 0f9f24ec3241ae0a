package form

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/octobees/automatelabs-site/internal/config"
	"github.com/octobees/automatelabs-site/internal/lead"
	"github.com/octobees/automatelabs-site/internal/logger"
)

var (
	// ErrInvalidID is returned for form ids that are not UUIDs.
	ErrInvalidID = errors.New("invalid form id")
	// ErrKindMismatch is returned when an id is reused for another form kind.
	ErrKindMismatch = errors.New("form id belongs to another form")
)

const minSweepInterval = time.Second

// Registry holds the live machine for every rendered form instance. Machines
// are created on first submission and released after their reset, when the
// visitor dismisses the form, or once they sit untouched for the TTL.
type Registry struct {
	submitter Submitter
	cfg       config.FormConfig
	log       *slog.Logger

	mu       sync.Mutex
	machines map[string]*Machine
}

func NewRegistry(submitter Submitter, cfg config.FormConfig, log *slog.Logger) *Registry {
	if log == nil {
		log = logger.Discard()
	}
	return &Registry{
		submitter: submitter,
		cfg:       cfg,
		log:       log.With(logger.Scope("forms")),
		machines:  make(map[string]*Machine),
	}
}

// NewID returns a fresh form instance id for rendering.
func NewID() string {
	return uuid.NewString()
}

// ResetDelay returns the success display time for a form kind.
func (r *Registry) ResetDelay(kind lead.Kind) time.Duration {
	if kind.Modal() {
		return r.cfg.ModalResetDelay
	}
	return r.cfg.InlineResetDelay
}

// Get returns the machine for id, creating an idle one for kind if none is
// live.
func (r *Registry) Get(id string, kind lead.Kind) (*Machine, error) {
	key, err := normalizeID(id)
	if err != nil {
		return nil, err
	}
	if kind.Table() == "" {
		return nil, lead.ErrUnknownKind
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.machines[key]; ok {
		if m.Kind() != kind {
			return nil, ErrKindMismatch
		}
		return m, nil
	}

	var m *Machine
	m = NewMachine(key, r.submitter, Options{
		Kind:       kind,
		ResetDelay: r.ResetDelay(kind),
		OnReset:    func() { r.release(key, m, "reset") },
	})
	m.Subscribe(func(s State) {
		r.log.Debug("form state changed", "form_id", key, "kind", string(kind), "state", string(s))
	})
	r.machines[key] = m
	r.log.Debug("form instance created", "form_id", key, "kind", string(kind))
	return m, nil
}

// Lookup returns the live machine for id.
func (r *Registry) Lookup(id string) (*Machine, bool) {
	key, err := normalizeID(id)
	if err != nil {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.machines[key]
	return m, ok
}

// Close dismisses the instance with id. It reports whether one was live.
func (r *Registry) Close(id string) bool {
	m, ok := r.Lookup(id)
	if !ok {
		return false
	}
	r.release(m.ID(), m, "closed")
	return true
}

// Len returns the number of live instances.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.machines)
}

// Sweep releases instances untouched since now minus the TTL. Loading
// instances are left alone.
func (r *Registry) Sweep(now time.Time) int {
	ttl := r.cfg.InstanceTTL
	if ttl <= 0 {
		return 0
	}
	cutoff := now.Add(-ttl)

	r.mu.Lock()
	var stale []*Machine
	for _, m := range r.machines {
		if m.State() != StateLoading && m.Touched().Before(cutoff) {
			stale = append(stale, m)
		}
	}
	r.mu.Unlock()

	for _, m := range stale {
		r.release(m.ID(), m, "expired")
	}
	return len(stale)
}

// Run sweeps expired instances until ctx is done.
func (r *Registry) Run(ctx context.Context) {
	interval := r.cfg.InstanceTTL / 2
	if interval < minSweepInterval {
		interval = minSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := r.Sweep(now); n > 0 {
				r.log.Info("expired form instances released", "count", n)
			}
		}
	}
}

// Shutdown closes every live instance, canceling in-flight inserts.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	machines := r.machines
	r.machines = make(map[string]*Machine)
	r.mu.Unlock()

	for _, m := range machines {
		m.Close()
	}
}

func (r *Registry) release(key string, m *Machine, reason string) {
	r.mu.Lock()
	if current, ok := r.machines[key]; ok && current == m {
		delete(r.machines, key)
	}
	r.mu.Unlock()

	m.Close()
	r.log.Debug("form instance released", "form_id", key, "reason", reason)
}

func normalizeID(id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", ErrInvalidID
	}
	return parsed.String(), nil
}
