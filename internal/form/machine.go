package form

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/octobees/automatelabs-site/internal/lead"
)

// State is the lifecycle position of one rendered form instance.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

var (
	// ErrBusy is returned when a submission is attempted while another one
	// is in flight or the success copy is still showing.
	ErrBusy = errors.New("form is busy")
	// ErrClosed is returned once the instance has been dismissed.
	ErrClosed = errors.New("form is closed")
)

// Submitter performs the single insert a form submission maps to.
type Submitter interface {
	Insert(ctx context.Context, table string, record any) bool
}

// Options configures a Machine.
type Options struct {
	Kind lead.Kind
	// ResetDelay is how long the success state lasts before the form
	// returns to idle.
	ResetDelay time.Duration
	// OnReset runs after the automatic success to idle transition.
	OnReset func()
}

// Machine drives one form through idle, loading, success and error. A
// Machine is safe for concurrent use; at most one submission runs at a
// time.
type Machine struct {
	id        string
	kind      lead.Kind
	table     string
	submitter Submitter
	delay     time.Duration
	onReset   func()

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	state   State
	closed  bool
	timer   *time.Timer
	touched time.Time
	subs    map[int]func(State)
	nextSub int
}

// NewMachine returns an idle machine posting to the kind's table.
func NewMachine(id string, submitter Submitter, opts Options) *Machine {
	ctx, cancel := context.WithCancel(context.Background())
	return &Machine{
		id:        id,
		kind:      opts.Kind,
		table:     opts.Kind.Table(),
		submitter: submitter,
		delay:     opts.ResetDelay,
		onReset:   opts.OnReset,
		ctx:       ctx,
		cancel:    cancel,
		state:     StateIdle,
		touched:   time.Now(),
		subs:      make(map[int]func(State)),
	}
}

func (m *Machine) ID() string { return m.id }

func (m *Machine) Kind() lead.Kind { return m.kind }

// ResetDelay reports how long a success is shown before the form resets.
func (m *Machine) ResetDelay() time.Duration { return m.delay }

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Closed reports whether Close has been called.
func (m *Machine) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Touched returns the time of the last submission activity.
func (m *Machine) Touched() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.touched
}

// Subscribe registers fn for every state change. The returned func removes
// the subscription.
func (m *Machine) Subscribe(fn func(State)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Submit sends record and blocks until the insert settles. Submissions are
// accepted from idle or error; loading and success answer ErrBusy.
//
// The insert is abandoned when ctx is canceled or the machine is closed.
// A success schedules the return to idle after the reset delay; an error
// stays until the next submission.
func (m *Machine) Submit(ctx context.Context, record any) (State, error) {
	m.mu.Lock()
	switch {
	case m.closed:
		m.mu.Unlock()
		return "", ErrClosed
	case m.state == StateLoading || m.state == StateSuccess:
		state := m.state
		m.mu.Unlock()
		return state, ErrBusy
	}
	m.state = StateLoading
	m.touched = time.Now()
	subs := m.subscribersLocked()
	m.mu.Unlock()
	notify(subs, StateLoading)

	callCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(m.ctx, cancel)
	ok := m.submitter.Insert(callCtx, m.table, record)
	stop()
	cancel()

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return "", ErrClosed
	}
	next := StateError
	if ok {
		next = StateSuccess
		m.timer = time.AfterFunc(m.delay, m.reset)
	}
	m.state = next
	m.touched = time.Now()
	subs = m.subscribersLocked()
	m.mu.Unlock()
	notify(subs, next)

	return next, nil
}

func (m *Machine) reset() {
	m.mu.Lock()
	if m.closed || m.state != StateSuccess {
		m.mu.Unlock()
		return
	}
	m.state = StateIdle
	m.timer = nil
	subs := m.subscribersLocked()
	m.mu.Unlock()
	notify(subs, StateIdle)

	if m.onReset != nil {
		m.onReset()
	}
}

// Close dismisses the instance. An in-flight insert is canceled, a pending
// reset never fires and later submissions return ErrClosed.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	m.cancel()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	clear(m.subs)
}

func (m *Machine) subscribersLocked() []func(State) {
	if len(m.subs) == 0 {
		return nil
	}
	out := make([]func(State), 0, len(m.subs))
	for _, fn := range m.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []func(State), state State) {
	for _, fn := range subs {
		fn(state)
	}
}
