package sim

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/roach88/hyperkey/internal/karabiner"
	"github.com/roach88/hyperkey/internal/keycode"
)

var (
	// ErrKeyHeld is returned when pressing a key that is already down.
	ErrKeyHeld = errors.New("key already held")
	// ErrKeyNotHeld is returned when releasing a key that is not down.
	ErrKeyNotHeld = errors.New("key not held")
)

// Machine holds the daemon state between input events.
type Machine struct {
	rules []karabiner.Rule
	log   *zap.Logger
	clock *Clock

	now      int64
	vars     map[string]int
	language string
	held     []*press
	pending  *delayed
	trace    []Event
}

// press is a key currently held down.
type press struct {
	key string
	at  int64

	// manipulator is nil when the key passed through.
	manipulator *karabiner.Manipulator
	// modifiers are what this key contributes to later triggers.
	modifiers []keycode.Modifier

	interrupted bool
	heldFired   bool
}

type delayed struct {
	action *karabiner.DelayedAction
	due    int64
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(m *Machine) { m.log = log }
}

// WithLanguage sets the initial input source language. Default "en".
func WithLanguage(lang string) Option {
	return func(m *Machine) { m.language = lang }
}

// New creates a Machine evaluating rules.
func New(rules []karabiner.Rule, opts ...Option) *Machine {
	m := &Machine{
		rules:    rules,
		log:      zap.NewNop(),
		clock:    NewClock(),
		vars:     make(map[string]int),
		language: "en",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// KeyDown presses key. key is a key_code or an apple_vendor_top_case_key_code.
func (m *Machine) KeyDown(key string) error {
	if m.find(key) >= 0 {
		return fmt.Errorf("%w: %s", ErrKeyHeld, key)
	}
	m.record(Event{Type: EventKeyDown, Key: key})

	for _, p := range m.held {
		p.interrupted = true
	}

	p := &press{key: key, at: m.now}
	manipulator, rule := m.match(key)
	if manipulator == nil {
		m.log.Debug("passthrough", zap.String("key", key))
		m.record(Event{Type: EventPassthrough, Key: key})
		if mod, ok := keycode.Code(key).Modifier(); ok {
			p.modifiers = []keycode.Modifier{mod}
		}
	} else {
		m.log.Debug("matched",
			zap.String("key", key),
			zap.String("rule", rule),
			zap.String("manipulator", manipulator.Description))
		p.manipulator = manipulator
		p.modifiers = emittedModifiers(manipulator.To)
		m.run(manipulator.To)
	}

	// A new press cancels the pending delayed action, after the press
	// itself has been matched against the state that action left behind.
	if m.pending != nil {
		pending := m.pending
		m.pending = nil
		m.log.Debug("delayed action canceled", zap.String("key", key))
		m.run(pending.action.ToIfCanceled)
	}
	if manipulator != nil && manipulator.ToDelayedAction != nil {
		m.pending = &delayed{
			action: manipulator.ToDelayedAction,
			due:    m.now + int64(manipulator.Parameters.Get(karabiner.ParamToDelayedActionDelay)),
		}
	}

	m.held = append(m.held, p)
	return nil
}

// KeyUp releases key.
func (m *Machine) KeyUp(key string) error {
	i := m.find(key)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrKeyNotHeld, key)
	}
	p := m.held[i]
	m.held = slices.Delete(m.held, i, i+1)

	m.record(Event{Type: EventKeyUp, Key: key})
	if p.manipulator == nil {
		return nil
	}

	timeout := int64(p.manipulator.Parameters.Get(karabiner.ParamToIfAloneTimeout))
	if !p.interrupted && !p.heldFired && m.now-p.at < timeout {
		m.run(p.manipulator.ToIfAlone)
	}
	m.run(p.manipulator.ToAfterKeyUp)
	return nil
}

// Tap presses and releases key with no time in between.
func (m *Machine) Tap(key string) error {
	if err := m.KeyDown(key); err != nil {
		return err
	}
	return m.KeyUp(key)
}

// Wait advances the clock by ms, firing held-down and delayed actions whose
// thresholds pass, in time order.
func (m *Machine) Wait(ms int64) {
	target := m.now + ms
	for {
		due, fire := m.nextTimer(target)
		if fire == nil {
			break
		}
		m.now = due
		fire()
	}
	m.now = target
}

// nextTimer returns the earliest timer due at or before limit.
func (m *Machine) nextTimer(limit int64) (int64, func()) {
	due := limit + 1
	var fire func()

	for _, p := range m.held {
		if p.manipulator == nil || len(p.manipulator.ToIfHeldDown) == 0 || p.heldFired || p.interrupted {
			continue
		}
		at := p.at + int64(p.manipulator.Parameters.Get(karabiner.ParamToIfHeldDownThreshold))
		if at < due {
			due = at
			fire = func() {
				p.heldFired = true
				m.log.Debug("held down", zap.String("key", p.key))
				m.run(p.manipulator.ToIfHeldDown)
			}
		}
	}

	if m.pending != nil && m.pending.due < due {
		due = m.pending.due
		pending := m.pending
		fire = func() {
			m.pending = nil
			m.log.Debug("delayed action invoked")
			m.run(pending.action.ToIfInvoked)
		}
	}
	return due, fire
}

// Variable returns a variable's value. Unset variables are 0.
func (m *Machine) Variable(name string) int {
	return m.vars[name]
}

// Variables returns a copy of the variable store.
func (m *Machine) Variables() map[string]int {
	return maps.Clone(m.vars)
}

// Language returns the current input source language.
func (m *Machine) Language() string {
	return m.language
}

// Now returns the logical time in milliseconds.
func (m *Machine) Now() int64 {
	return m.now
}

// Held returns the keys currently down, in press order.
func (m *Machine) Held() []string {
	keys := make([]string, len(m.held))
	for i, p := range m.held {
		keys[i] = p.key
	}
	return keys
}

// Trace returns a copy of every event recorded so far.
func (m *Machine) Trace() []Event {
	return slices.Clone(m.trace)
}

func (m *Machine) find(key string) int {
	return slices.IndexFunc(m.held, func(p *press) bool { return p.key == key })
}

// match returns the first manipulator triggered by key, and its rule's
// description.
func (m *Machine) match(key string) (*karabiner.Manipulator, string) {
	held := m.heldModifiers()
	for ri := range m.rules {
		rule := &m.rules[ri]
		for mi := range rule.Manipulators {
			man := &rule.Manipulators[mi]
			if matchFrom(man.From, key, held) && m.matchConditions(man.Conditions) {
				return man, rule.Description
			}
		}
	}
	return nil, ""
}

func (m *Machine) heldModifiers() []keycode.Modifier {
	var mods []keycode.Modifier
	for _, p := range m.held {
		mods = append(mods, p.modifiers...)
	}
	return mods
}

// run applies output events in order.
func (m *Machine) run(to []karabiner.To) {
	for _, t := range to {
		switch {
		case t.SetVariable != nil:
			m.vars[t.SetVariable.Name] = t.SetVariable.Value
			value := t.SetVariable.Value
			m.record(Event{Type: EventSetVariable, Variable: t.SetVariable.Name, Value: &value})
		case t.SelectInputSource != nil:
			if t.SelectInputSource.Language != "" {
				m.language = t.SelectInputSource.Language
			}
			m.record(Event{Type: EventSelectInputSource, Language: t.SelectInputSource.Language})
		case t.ShellCommand != "":
			m.record(Event{Type: EventShell, Command: t.ShellCommand})
		case t.KeyCode == keycode.VKNone:
			// swallowed
		case t.KeyCode != "":
			m.record(Event{Type: EventEmit, Key: string(t.KeyCode), Modifiers: slices.Clone(t.Modifiers)})
		}
	}
}

func (m *Machine) record(e Event) {
	e.Seq = m.clock.Next()
	e.Time = m.now
	m.trace = append(m.trace, e)
}

// emittedModifiers are the modifiers a manipulator's output keeps held
// while its trigger is down.
func emittedModifiers(to []karabiner.To) []keycode.Modifier {
	var mods []keycode.Modifier
	for _, t := range to {
		if mod, ok := t.KeyCode.Modifier(); ok {
			mods = append(mods, mod)
		}
	}
	return mods
}
