package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/avasseur/atelier/internal/quiz"
)

//go:embed data/lessons/*.json data/quizzes/*.json
var dataFS embed.FS

// FSStore serves content parsed from a filesystem at construction time.
type FSStore struct {
	lessons map[string]*Lesson    // by activity id
	quizzes map[string]*quiz.Quiz // by activity id
}

var (
	defaultOnce  sync.Once
	defaultStore *FSStore
	defaultErr   error
)

// Default returns the store over the embedded content files.
func Default() (*FSStore, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = LoadFS(dataFS, "data")
	})
	return defaultStore, defaultErr
}

// LoadFS validates and indexes every lesson and quiz file under dir.
func LoadFS(fsys fs.FS, dir string) (*FSStore, error) {
	s := &FSStore{
		lessons: make(map[string]*Lesson),
		quizzes: make(map[string]*quiz.Quiz),
	}

	if err := eachJSON(fsys, dir+"/lessons", func(path string, raw []byte) error {
		if err := validateAgainst("lesson", lessonSchema, raw); err != nil {
			return err
		}
		var l Lesson
		if err := json.Unmarshal(raw, &l); err != nil {
			return err
		}
		if _, dup := s.lessons[l.ActivityID]; dup {
			return fmt.Errorf("duplicate lesson for activity %q", l.ActivityID)
		}
		s.lessons[l.ActivityID] = &l
		return nil
	}); err != nil {
		return nil, err
	}

	if err := eachJSON(fsys, dir+"/quizzes", func(path string, raw []byte) error {
		if err := validateAgainst("quiz", quizSchema, raw); err != nil {
			return err
		}
		var q quiz.Quiz
		if err := json.Unmarshal(raw, &q); err != nil {
			return err
		}
		if err := checkQuiz(&q); err != nil {
			return err
		}
		if _, dup := s.quizzes[q.ActivityID]; dup {
			return fmt.Errorf("duplicate quiz for activity %q", q.ActivityID)
		}
		s.quizzes[q.ActivityID] = &q
		return nil
	}); err != nil {
		return nil, err
	}

	return s, nil
}

// checkQuiz enforces the cross-field rules the schema can't express: every
// correct option must actually be one of the question's options.
func checkQuiz(q *quiz.Quiz) error {
	for _, question := range q.Questions {
		found := false
		for _, opt := range question.Options {
			if opt.ID == question.CorrectOption {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("quiz %q question %q: correct option %q not among options", q.ID, question.ID, question.CorrectOption)
		}
	}
	return nil
}

func eachJSON(fsys fs.FS, dir string, fn func(path string, raw []byte) error) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := dir + "/" + entry.Name()
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := fn(path, raw); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

// LessonByActivity returns the authored lesson for an activity, if any.
func (s *FSStore) LessonByActivity(activityID string) (*Lesson, bool) {
	l, ok := s.lessons[activityID]
	return l, ok
}

// QuizByActivity returns the authored quiz for an activity, if any.
func (s *FSStore) QuizByActivity(activityID string) (*quiz.Quiz, bool) {
	q, ok := s.quizzes[activityID]
	return q, ok
}
