// Package career switches between the education and career panels. The
// panel being opened plays its motif's transition sweep first; the switch
// commits when the sweep reports completion.
package career

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/Jheathc1/jhWebsite/internal/motif"
)

// ErrUnknownSection is returned for a section name that is not a panel.
var ErrUnknownSection = errors.New("career: unknown section")

// Section names a panel.
type Section string

const (
	Education Section = "education"
	Career    Section = "career"
)

// Sections in page order.
var Sections = []Section{Education, Career}

// ParseSection validates a section name.
func ParseSection(name string) (Section, error) {
	for _, s := range Sections {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSection, name)
}

func (s Section) index() int {
	for i, v := range Sections {
		if v == s {
			return i
		}
	}
	return -1
}

// Panel receives motif props for one section. *motif.Driver is a Panel.
type Panel interface {
	Update(motif.Props)
}

// Switcher owns the active section and orchestrates transitions.
//
// Props are pushed to panels while holding the switcher lock; panels must
// not call back into the switcher synchronously from Update.
type Switcher struct {
	mu            sync.Mutex
	active        Section
	pending       Section
	transitioning bool
	direction     motif.TabDirection
	gen           uint64

	panels   map[Section]Panel
	onCommit []func(Section)
	log      *slog.Logger
}

// New returns a switcher showing initial. An empty initial means Education.
func New(initial Section, log *slog.Logger) (*Switcher, error) {
	if initial == "" {
		initial = Education
	}
	if initial.index() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, initial)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Switcher{active: initial, panels: make(map[Section]Panel), log: log}, nil
}

// Register attaches a panel and hands it its current props.
func (s *Switcher) Register(sec Section, p Panel) error {
	if sec.index() < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownSection, sec)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panels[sec] = p
	p.Update(s.propsLocked(sec))
	return nil
}

// OnCommit registers fn to run after each committed switch.
func (s *Switcher) OnCommit(fn func(Section)) {
	s.mu.Lock()
	s.onCommit = append(s.onCommit, fn)
	s.mu.Unlock()
}

// Select starts a transition to sec. It reports false when sec is
// already active or another transition is running.
func (s *Switcher) Select(sec Section) (bool, error) {
	if sec.index() < 0 {
		return false, fmt.Errorf("%w: %q", ErrUnknownSection, sec)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sec == s.active || s.transitioning {
		return false, nil
	}
	s.gen++
	s.pending = sec
	s.transitioning = true
	s.direction = motif.CounterClockwise
	if sec.index() > s.active.index() {
		s.direction = motif.Clockwise
	}
	s.log.Debug("career: transition started", "from", s.active, "to", sec)
	s.pushLocked()
	return true, nil
}

// complete commits the transition started under gen.
func (s *Switcher) complete(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || !s.transitioning {
		s.mu.Unlock()
		return
	}
	s.active = s.pending
	s.pending = ""
	s.transitioning = false
	committed := s.active
	hooks := slices.Clone(s.onCommit)
	s.pushLocked()
	s.mu.Unlock()

	s.log.Debug("career: transition committed", "active", committed)
	for _, fn := range hooks {
		fn(committed)
	}
}

// Active is the committed section.
func (s *Switcher) Active() Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Pending is the section being opened, or "" when settled.
func (s *Switcher) Pending() Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Transitioning reports whether a sweep is running.
func (s *Switcher) Transitioning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitioning
}

// Props returns the motif props for sec's panel.
func (s *Switcher) Props(sec Section) motif.Props {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.propsLocked(sec)
}

// propsLocked: collapsed panels show the motif, and only the panel being
// opened sweeps.
func (s *Switcher) propsLocked(sec Section) motif.Props {
	p := motif.Props{
		Active:        sec != s.active,
		Transitioning: s.transitioning && s.pending == sec,
		Direction:     s.direction,
	}
	if p.Transitioning {
		gen := s.gen
		p.OnTransitionComplete = func() { s.complete(gen) }
	}
	return p
}

func (s *Switcher) pushLocked() {
	for _, sec := range Sections {
		if p, ok := s.panels[sec]; ok {
			p.Update(s.propsLocked(sec))
		}
	}
}
