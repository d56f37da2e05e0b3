// Package session ties the domain pieces together for one learner: it loads
// profile and progress from the durable store, applies mutations through the
// domain packages, journals what happened and writes both records back.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avasseur/atelier/internal/catalog"
	"github.com/avasseur/atelier/internal/content"
	"github.com/avasseur/atelier/internal/profile"
	"github.com/avasseur/atelier/internal/progress"
	"github.com/avasseur/atelier/internal/store"
)

// schemaVersion is stamped into both persisted records so future layouts
// can migrate old databases.
const schemaVersion = 1

// profileRecord is the persisted envelope for the profile key.
type profileRecord struct {
	Version int              `json:"version"`
	Profile *profile.Profile `json:"profile"`
}

// progressRecord is the persisted envelope for the progress key.
type progressRecord struct {
	Version int                                 `json:"version"`
	Modules map[string]*progress.ModuleProgress `json:"modules"`
}

// Deps are the collaborators a session needs.
type Deps struct {
	Catalog *catalog.Catalog
	Content content.Store
	KV      store.KV
	Events  store.EventRepo

	// LearnerName and LearnerEmail seed a fresh profile when none is stored.
	LearnerName  string
	LearnerEmail string
}

// Session is the in-memory working copy of one learner's state. Mutations
// update memory first and then write the whole records back; a failed write
// is surfaced but never rolls the memory state back.
type Session struct {
	catalog *catalog.Catalog
	content content.Store
	kv      store.KV
	events  store.EventRepo

	profile *profile.Service
	ledger  *progress.Ledger

	pendingLevelUps []LevelUp
}

// LevelUp is one level transition observed during a mutation.
type LevelUp struct {
	From int
	To   int
}

// Load builds a session from the stored records. A missing or unreadable
// record falls back to a fresh default: the learner always gets a working
// session, at worst an empty one.
func Load(ctx context.Context, deps Deps) (*Session, error) {
	if deps.Catalog == nil || deps.KV == nil || deps.Events == nil {
		return nil, fmt.Errorf("load session: missing dependencies")
	}

	now := time.Now().UTC()

	p := loadProfile(ctx, deps, now)
	records := loadProgress(ctx, deps)

	s := &Session{
		catalog: deps.Catalog,
		content: deps.Content,
		kv:      deps.KV,
		events:  deps.Events,
		profile: profile.NewService(p),
		ledger:  progress.NewLedger(deps.Catalog, records),
	}
	s.profile.OnLevelUp(func(from, to int) {
		s.pendingLevelUps = append(s.pendingLevelUps, LevelUp{From: from, To: to})
	})
	return s, nil
}

func loadProfile(ctx context.Context, deps Deps, now time.Time) *profile.Profile {
	raw, ok, err := deps.KV.Get(ctx, store.KeyProfile)
	if err == nil && ok {
		var rec profileRecord
		if json.Unmarshal(raw, &rec) == nil && rec.Profile != nil {
			return rec.Profile
		}
	}
	return profile.New(deps.LearnerName, deps.LearnerEmail, now)
}

func loadProgress(ctx context.Context, deps Deps) map[string]*progress.ModuleProgress {
	raw, ok, err := deps.KV.Get(ctx, store.KeyProgress)
	if err == nil && ok {
		var rec progressRecord
		if json.Unmarshal(raw, &rec) == nil && rec.Modules != nil {
			return rec.Modules
		}
	}
	return nil
}

// Profile returns the learner's profile.
func (s *Session) Profile() *profile.Profile {
	return s.profile.Profile()
}

// Progress returns the progress record for a module, or nil if not started.
func (s *Session) Progress(moduleID string) *progress.ModuleProgress {
	return s.ledger.Get(moduleID)
}

// Catalog returns the module catalog the session was loaded with.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// Content returns the content store, which may be nil.
func (s *Session) Content() content.Store {
	return s.content
}

// Events returns the journal.
func (s *Session) Events() store.EventRepo {
	return s.events
}

// persist writes both records back to the store as whole JSON documents.
func (s *Session) persist(ctx context.Context) error {
	prof, err := json.Marshal(profileRecord{Version: schemaVersion, Profile: s.profile.Profile()})
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	prog, err := json.Marshal(progressRecord{Version: schemaVersion, Modules: s.ledger.Records()})
	if err != nil {
		return fmt.Errorf("encode progress: %w", err)
	}

	if err := s.kv.Set(ctx, store.KeyProfile, prof); err != nil {
		return err
	}
	return s.kv.Set(ctx, store.KeyProgress, prog)
}

// journal appends an event. Appends are best-effort: a journal failure
// never fails the learner action it describes.
func (s *Session) journal(ctx context.Context, typ store.EventType, payload any) {
	_ = s.events.Append(ctx, typ, payload)
}

// drainLevelUps journals and returns the level transitions accumulated since
// the last call.
func (s *Session) drainLevelUps(ctx context.Context) []LevelUp {
	ups := s.pendingLevelUps
	s.pendingLevelUps = nil
	for _, u := range ups {
		s.journal(ctx, store.EventLevelUp, store.LevelUpData{
			FromLevel: u.From,
			ToLevel:   u.To,
			TotalXP:   s.profile.Profile().TotalXP,
		})
	}
	return ups
}
