// Package catalog holds the static module catalog: the immutable table of
// modules, weeks, days and activities that progress records reference by id.
package catalog

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrModuleNotFound indicates an unknown module id.
	ErrModuleNotFound = errors.New("module not found")

	// ErrActivityNotFound indicates an unknown activity id.
	ErrActivityNotFound = errors.New("activity not found")
)

// Catalog is an indexed, read-only view over a set of modules.
type Catalog struct {
	modules    []Module
	byID       map[string]*Module
	activities map[string]activityRef
}

// activityRef locates an activity inside its module.
type activityRef struct {
	moduleID string
	activity *Activity
}

// New builds a Catalog from modules, validating structure and indexing ids.
func New(modules []Module) (*Catalog, error) {
	c := &Catalog{
		modules:    modules,
		byID:       make(map[string]*Module, len(modules)),
		activities: make(map[string]activityRef),
	}

	for i := range c.modules {
		m := &c.modules[i]
		if err := validateModule(m); err != nil {
			return nil, fmt.Errorf("module %q: %w", m.ID, err)
		}
		if _, dup := c.byID[m.ID]; dup {
			return nil, fmt.Errorf("duplicate module id %q", m.ID)
		}
		c.byID[m.ID] = m

		for wi := range m.Weeks {
			for di := range m.Weeks[wi].Days {
				day := &m.Weeks[wi].Days[di]
				for ai := range day.Activities {
					a := &day.Activities[ai]
					if _, dup := c.activities[a.ID]; dup {
						return nil, fmt.Errorf("duplicate activity id %q", a.ID)
					}
					c.activities[a.ID] = activityRef{moduleID: m.ID, activity: a}
				}
			}
		}
	}

	return c, nil
}

func validateModule(m *Module) error {
	if m.ID == "" {
		return errors.New("empty id")
	}
	if len(m.Weeks) == 0 {
		return errors.New("no weeks")
	}
	for wi, w := range m.Weeks {
		if w.Number != wi+1 {
			return fmt.Errorf("week %d numbered %d, weeks must be numbered 1..n in order", wi+1, w.Number)
		}
		if len(w.Days) == 0 {
			return fmt.Errorf("week %d has no days", w.Number)
		}
		for di, d := range w.Days {
			if d.Number != di+1 {
				return fmt.Errorf("week %d day %d numbered %d, days must be numbered 1..n in order", w.Number, di+1, d.Number)
			}
			if len(d.Activities) == 0 {
				return fmt.Errorf("week %d day %d has no activities", w.Number, d.Number)
			}
			for _, a := range d.Activities {
				if a.ID == "" {
					return fmt.Errorf("week %d day %d: activity with empty id", w.Number, d.Number)
				}
				if !a.Type.Valid() {
					return fmt.Errorf("activity %q: unknown type %q", a.ID, a.Type)
				}
				if a.XP <= 0 {
					return fmt.Errorf("activity %q: XP must be positive, got %d", a.ID, a.XP)
				}
			}
		}
	}
	return nil
}

// Modules returns all modules sorted by id.
func (c *Catalog) Modules() []Module {
	out := make([]Module, len(c.modules))
	copy(out, c.modules)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Module returns the module with the given id.
func (c *Catalog) Module(id string) (*Module, error) {
	m, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModuleNotFound, id)
	}
	return m, nil
}

// Activity returns an activity and the id of the module that owns it.
func (c *Catalog) Activity(id string) (*Activity, string, error) {
	ref, ok := c.activities[id]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrActivityNotFound, id)
	}
	return ref.activity, ref.moduleID, nil
}

// ActivityXP resolves an activity id to its fixed XP value.
func (c *Catalog) ActivityXP(id string) (int, error) {
	a, _, err := c.Activity(id)
	if err != nil {
		return 0, err
	}
	return a.XP, nil
}

// ActivityCount returns the total number of activities in a module. It is the
// denominator for completion percentages.
func (c *Catalog) ActivityCount(moduleID string) (int, error) {
	m, err := c.Module(moduleID)
	if err != nil {
		return 0, err
	}
	return m.ActivityCount(), nil
}
