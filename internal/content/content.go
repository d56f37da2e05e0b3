// Package content serves authored lesson and quiz content by activity id.
// Content is reference data: absence means "not yet authored" and degrades
// to a placeholder, never an error.
package content

import (
	"github.com/avasseur/atelier/internal/quiz"
)

// LessonSection is a titled block of lesson text.
type LessonSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Resource is a pointer to supporting material.
type Resource struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// Lesson is one authored lesson, keyed by the activity it teaches.
type Lesson struct {
	ID            string          `json:"id"`
	ActivityID    string          `json:"activity_id"`
	ModuleID      string          `json:"module_id"`
	Title         string          `json:"title"`
	Introduction  string          `json:"introduction,omitempty"`
	Sections      []LessonSection `json:"sections"`
	KeyPoints     []string        `json:"key_points,omitempty"`
	PracticalTips []string        `json:"practical_tips,omitempty"`
	Resources     []Resource      `json:"resources,omitempty"`
	Placeholder   bool            `json:"-"`
}

// Store provides read-only access to authored content. Lookups report
// presence with the second return; a false is normal, not an error.
type Store interface {
	LessonByActivity(activityID string) (*Lesson, bool)
	QuizByActivity(activityID string) (*quiz.Quiz, bool)
}

// PlaceholderLesson stands in for content that is not yet authored.
func PlaceholderLesson(activityID, title string) *Lesson {
	return &Lesson{
		ActivityID:   activityID,
		Title:        title,
		Introduction: "This lesson hasn't been written yet. Check back after the next content update.",
		Placeholder:  true,
	}
}
