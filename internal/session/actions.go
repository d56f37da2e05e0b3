package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/avasseur/atelier/internal/badges"
	"github.com/avasseur/atelier/internal/catalog"
	"github.com/avasseur/atelier/internal/leveling"
	"github.com/avasseur/atelier/internal/progress"
	"github.com/avasseur/atelier/internal/quiz"
	"github.com/avasseur/atelier/internal/store"
)

var (
	// ErrNoQuiz indicates a quiz activity with no authored quiz content.
	ErrNoQuiz = errors.New("no quiz available for activity")

	// ErrNotAQuiz indicates a quiz submission against a non-quiz activity.
	ErrNotAQuiz = errors.New("activity is not a quiz")
)

// visualArtistScore is the minimum percentage on a final-week quiz that
// unlocks the Visual Artist badge.
const visualArtistScore = 85

// Outcome describes what one activity completion changed.
type Outcome struct {
	Applied         bool
	ModuleID        string
	Activity        *catalog.Activity
	XPAwarded       int
	Leveling        leveling.Breakdown
	LevelUps        []LevelUp
	NewBadges       []badges.Badge
	ModuleCompleted bool
	Progress        *progress.ModuleProgress
}

// QuizOutcome describes one quiz submission.
type QuizOutcome struct {
	AttemptID string
	Quiz      *quiz.Quiz
	Result    *quiz.Result
	// Completion is set when the attempt passed and the quiz activity was
	// folded into progress.
	Completion *Outcome
}

// StartModule creates a progress record for the module if none exists.
// The boolean reports whether a new record was created.
func (s *Session) StartModule(ctx context.Context, moduleID string, now time.Time) (*progress.ModuleProgress, bool, error) {
	rec, created, err := s.ledger.Start(moduleID, now)
	if err != nil {
		return nil, false, err
	}
	if !created {
		return rec, false, nil
	}

	s.journal(ctx, store.EventModuleStarted, store.ModuleStartedData{ModuleID: moduleID})
	if err := s.persist(ctx); err != nil {
		return rec, true, err
	}
	return rec, true, nil
}

// CompleteActivity marks an activity done, credits its XP, advances the
// week/day pointer and awards whatever badges the completion unlocks.
// Repeating a completed activity returns Applied=false and changes nothing.
func (s *Session) CompleteActivity(ctx context.Context, activityID string, now time.Time) (*Outcome, error) {
	act, moduleID, err := s.catalog.Activity(activityID)
	if err != nil {
		return nil, err
	}
	mod, err := s.catalog.Module(moduleID)
	if err != nil {
		return nil, err
	}

	rec, applied, err := s.ledger.CompleteActivity(moduleID, activityID, act.XP, now)
	if err != nil {
		return nil, err
	}

	out := &Outcome{
		Applied:  applied,
		ModuleID: moduleID,
		Activity: act,
		Leveling: s.profile.Profile().Leveling(),
		Progress: rec,
	}
	if !applied {
		return out, nil
	}

	breakdown, err := s.profile.AddXP(act.XP)
	if err != nil {
		return nil, fmt.Errorf("credit xp for %q: %w", activityID, err)
	}
	out.XPAwarded = act.XP
	out.Leveling = breakdown

	s.journal(ctx, store.EventActivityCompleted, store.ActivityCompletedData{
		ModuleID:   moduleID,
		ActivityID: activityID,
		XP:         act.XP,
	})
	out.LevelUps = s.drainLevelUps(ctx)

	if weekComplete(mod, rec, 1) {
		s.awardBadge(ctx, moduleID, badges.FirstStepID, now, out)
	}

	week, day, done := nextIncomplete(mod, rec)
	if !done {
		if err := s.ledger.Advance(moduleID, week, day, now); err != nil {
			return out, err
		}
	} else if s.profile.CompleteModule(moduleID) {
		out.ModuleCompleted = true
		if mod.BadgeID != "" {
			s.awardBadge(ctx, moduleID, mod.BadgeID, now, out)
		}
		if mod.Skill != "" {
			s.profile.RaiseSkill(mod.Skill, mod.SkillPoints)
		}
		s.journal(ctx, store.EventModuleCompleted, store.ModuleCompletedData{
			ModuleID: moduleID,
			EarnedXP: rec.EarnedXP,
		})
		s.awardPerfectionist(ctx, mod, now, out)
	}

	if err := s.persist(ctx); err != nil {
		return out, err
	}
	return out, nil
}

// SubmitQuiz scores one attempt against the activity's authored quiz. Every
// attempt is journaled; a passing attempt also completes the activity.
func (s *Session) SubmitQuiz(ctx context.Context, activityID string, answers map[string]string, now time.Time) (*QuizOutcome, error) {
	act, moduleID, err := s.catalog.Activity(activityID)
	if err != nil {
		return nil, err
	}
	if act.Type != catalog.ActivityQuiz {
		return nil, fmt.Errorf("submit quiz %q: %w", activityID, ErrNotAQuiz)
	}
	if s.content == nil {
		return nil, fmt.Errorf("submit quiz %q: %w", activityID, ErrNoQuiz)
	}
	q, ok := s.content.QuizByActivity(activityID)
	if !ok {
		return nil, fmt.Errorf("submit quiz %q: %w", activityID, ErrNoQuiz)
	}

	res, err := quiz.Score(q, answers)
	if err != nil {
		return nil, err
	}

	attemptID := uuid.NewString()
	s.journal(ctx, store.EventQuizSubmitted, store.QuizSubmittedData{
		AttemptID:  attemptID,
		ActivityID: activityID,
		QuizID:     q.ID,
		Percentage: res.Percentage,
		Passed:     res.Passed,
	})

	out := &QuizOutcome{AttemptID: attemptID, Quiz: q, Result: res}
	if !res.Passed {
		return out, nil
	}

	comp, err := s.CompleteActivity(ctx, activityID, now)
	out.Completion = comp
	if err != nil {
		return out, err
	}

	if res.Percentage >= visualArtistScore && comp.Applied {
		if mod, merr := s.catalog.Module(moduleID); merr == nil && inLastWeek(mod, activityID) {
			s.awardBadge(ctx, moduleID, "visual-artist", now, comp)
			if err := s.persist(ctx); err != nil {
				return out, err
			}
		}
	}
	return out, nil
}

// Reset wipes everything: profile back to defaults, progress records gone,
// stored records and journal cleared. The reset itself becomes the first
// entry of the fresh journal.
func (s *Session) Reset(ctx context.Context, now time.Time) error {
	s.profile.Reset(now)
	s.ledger.Reset()
	s.pendingLevelUps = nil

	if err := s.kv.Clear(ctx); err != nil {
		return err
	}
	if err := s.events.Purge(ctx); err != nil {
		return err
	}
	s.journal(ctx, store.EventReset, struct{}{})
	return nil
}

// awardBadge unlocks a badge on the profile and module record, once, and
// records the outcome. Unknown badge ids are skipped.
func (s *Session) awardBadge(ctx context.Context, moduleID, badgeID string, now time.Time, out *Outcome) {
	b, err := badges.ByID(badgeID)
	if err != nil {
		return
	}
	if !s.profile.AddBadge(b, now) {
		return
	}
	_ = s.ledger.AwardBadge(moduleID, badgeID)
	s.journal(ctx, store.EventBadgeUnlocked, store.BadgeUnlockedData{BadgeID: badgeID})
	out.NewBadges = append(out.NewBadges, b)
}

// awardPerfectionist checks the journal for the module's quiz history and
// unlocks Perfectionist when every quiz passed on its first attempt. The
// check is best-effort; a journal read failure just skips the badge.
func (s *Session) awardPerfectionist(ctx context.Context, mod *catalog.Module, now time.Time, out *Outcome) {
	quizIDs := make(map[string]bool)
	for _, a := range mod.Activities() {
		if a.Type == catalog.ActivityQuiz {
			quizIDs[a.ID] = false
		}
	}
	if len(quizIDs) == 0 {
		return
	}

	events, err := s.events.List(ctx, store.QueryOpts{Type: store.EventQuizSubmitted})
	if err != nil {
		return
	}

	// List returns newest first, so walking backwards visits attempts in
	// submission order and the first one seen per activity is the first try.
	firstPass := make(map[string]bool)
	for i := len(events) - 1; i >= 0; i-- {
		var data store.QuizSubmittedData
		if json.Unmarshal(events[i].Payload, &data) != nil {
			continue
		}
		if _, relevant := quizIDs[data.ActivityID]; !relevant {
			continue
		}
		if _, seen := firstPass[data.ActivityID]; !seen {
			firstPass[data.ActivityID] = data.Passed
		}
	}

	for id := range quizIDs {
		if !firstPass[id] {
			return
		}
	}
	s.awardBadge(ctx, mod.ID, "perfectionist", now, out)
}

// weekComplete reports whether every activity of the given week is done.
func weekComplete(mod *catalog.Module, rec *progress.ModuleProgress, week int) bool {
	ids := mod.WeekActivityIDs(week)
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if !rec.Completed(id) {
			return false
		}
	}
	return true
}

// nextIncomplete finds the earliest week/day that still holds an incomplete
// activity. done is true when the whole module is finished.
func nextIncomplete(mod *catalog.Module, rec *progress.ModuleProgress) (week, day int, done bool) {
	for _, w := range mod.Weeks {
		for _, d := range w.Days {
			for _, a := range d.Activities {
				if !rec.Completed(a.ID) {
					return w.Number, d.Number, false
				}
			}
		}
	}
	return 0, 0, true
}

// inLastWeek reports whether the activity belongs to the module's final week.
func inLastWeek(mod *catalog.Module, activityID string) bool {
	if len(mod.Weeks) == 0 {
		return false
	}
	last := mod.Weeks[len(mod.Weeks)-1].Number
	for _, id := range mod.WeekActivityIDs(last) {
		if id == activityID {
			return true
		}
	}
	return false
}
