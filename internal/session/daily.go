package session

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/avasseur/atelier/internal/store"
)

// DayStat aggregates one calendar day of completions from the journal.
type DayStat struct {
	Date       time.Time
	Activities int
	XP         int
}

// DailyStats folds the activity-completion journal into per-day totals for
// the last days calendar days (today included), oldest first. Days with no
// completions are omitted.
func (s *Session) DailyStats(ctx context.Context, days int) ([]DayStat, error) {
	if days < 1 {
		days = 1
	}
	from := midnight(time.Now().UTC()).AddDate(0, 0, -(days - 1))

	events, err := s.events.List(ctx, store.QueryOpts{
		Type: store.EventActivityCompleted,
		From: from,
	})
	if err != nil {
		return nil, err
	}

	byDay := make(map[time.Time]*DayStat)
	for _, ev := range events {
		var data store.ActivityCompletedData
		if json.Unmarshal(ev.Payload, &data) != nil {
			continue
		}
		day := midnight(ev.Timestamp.UTC())
		stat, ok := byDay[day]
		if !ok {
			stat = &DayStat{Date: day}
			byDay[day] = stat
		}
		stat.Activities++
		stat.XP += data.XP
	}

	out := make([]DayStat, 0, len(byDay))
	for _, stat := range byDay {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

// midnight truncates t to the start of its UTC calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
