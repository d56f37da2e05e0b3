package quiz

import (
	"errors"
	"math"
)

// ErrNoQuestions indicates a quiz whose questions carry zero total points.
// Scoring such a quiz is undefined, not a division by zero.
var ErrNoQuestions = errors.New("quiz has no scoreable questions")

// QuestionResult records the outcome of one question for review display.
type QuestionResult struct {
	QuestionID string
	Selected   string // option id the learner chose, empty if unanswered
	Correct    bool
	Points     int // points awarded
}

// Result is the outcome of scoring one answer set against a quiz.
type Result struct {
	Percentage   int
	Passed       bool
	EarnedPoints int
	MaxPoints    int
	Questions    []QuestionResult // in question order
}

// Score grades the learner's answers against the quiz. Answers maps question
// id to the selected option id; missing entries simply never match. Scoring
// is stateless: the same (quiz, answers) pair always yields the same Result.
func Score(q *Quiz, answers map[string]string) (*Result, error) {
	maxPoints := q.MaxPoints()
	if maxPoints == 0 {
		return nil, ErrNoQuestions
	}

	res := &Result{
		MaxPoints: maxPoints,
		Questions: make([]QuestionResult, 0, len(q.Questions)),
	}

	for _, question := range q.Questions {
		selected := answers[question.ID]
		qr := QuestionResult{
			QuestionID: question.ID,
			Selected:   selected,
		}
		if selected != "" && selected == question.CorrectOption {
			qr.Correct = true
			qr.Points = question.Points
			res.EarnedPoints += question.Points
		}
		res.Questions = append(res.Questions, qr)
	}

	res.Percentage = int(math.Round(float64(res.EarnedPoints) / float64(maxPoints) * 100))
	res.Passed = res.Percentage >= q.PassingScore
	return res, nil
}
