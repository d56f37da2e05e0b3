package quiz

import (
	"errors"
	"reflect"
	"testing"
)

// fourQuestionQuiz has four 10-point questions, passing at 70%.
func fourQuestionQuiz() *Quiz {
	mk := func(n int, id string) Question {
		return Question{
			ID:     id,
			Number: n,
			Type:   MultipleChoice,
			Options: []Option{
				{ID: "a", Text: "Option A"},
				{ID: "b", Text: "Option B"},
				{ID: "c", Text: "Option C"},
			},
			CorrectOption: "a",
			Points:        10,
		}
	}
	return &Quiz{
		ID:           "quiz-1",
		ActivityID:   "act-1",
		PassingScore: 70,
		Questions:    []Question{mk(1, "q1"), mk(2, "q2"), mk(3, "q3"), mk(4, "q4")},
	}
}

func TestScoreThreeOfFour(t *testing.T) {
	res, err := Score(fourQuestionQuiz(), map[string]string{
		"q1": "a",
		"q2": "a",
		"q3": "a",
		"q4": "b",
	})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if res.Percentage != 75 {
		t.Errorf("Percentage = %d, want 75", res.Percentage)
	}
	if !res.Passed {
		t.Error("Passed = false, want true")
	}
	if res.EarnedPoints != 30 || res.MaxPoints != 40 {
		t.Errorf("points = %d/%d, want 30/40", res.EarnedPoints, res.MaxPoints)
	}
}

func TestScoreBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		answers    map[string]string
		percentage int
		passed     bool
	}{
		{"all correct", map[string]string{"q1": "a", "q2": "a", "q3": "a", "q4": "a"}, 100, true},
		{"none correct", map[string]string{"q1": "b", "q2": "b", "q3": "b", "q4": "b"}, 0, false},
		{"empty submission", map[string]string{}, 0, false},
		{"nil submission", nil, 0, false},
		{"half is below threshold", map[string]string{"q1": "a", "q2": "a"}, 50, false},
		{"unknown question ids ignored", map[string]string{"zz": "a"}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Score(fourQuestionQuiz(), tt.answers)
			if err != nil {
				t.Fatalf("Score: %v", err)
			}
			if res.Percentage != tt.percentage {
				t.Errorf("Percentage = %d, want %d", res.Percentage, tt.percentage)
			}
			if res.Passed != tt.passed {
				t.Errorf("Passed = %v, want %v", res.Passed, tt.passed)
			}
		})
	}
}

func TestScorePassAtExactThreshold(t *testing.T) {
	q := fourQuestionQuiz()
	q.PassingScore = 75

	res, err := Score(q, map[string]string{"q1": "a", "q2": "a", "q3": "a"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Percentage != 75 || !res.Passed {
		t.Errorf("got %d%% passed=%v, want 75%% passed=true", res.Percentage, res.Passed)
	}
}

func TestScoreRoundsPercentage(t *testing.T) {
	// Three 1-point questions: 1/3 and 2/3 must round, not truncate.
	q := &Quiz{
		PassingScore: 60,
		Questions: []Question{
			{ID: "q1", CorrectOption: "a", Points: 1},
			{ID: "q2", CorrectOption: "a", Points: 1},
			{ID: "q3", CorrectOption: "a", Points: 1},
		},
	}

	res, err := Score(q, map[string]string{"q1": "a"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Percentage != 33 {
		t.Errorf("1/3 Percentage = %d, want 33", res.Percentage)
	}

	res, err = Score(q, map[string]string{"q1": "a", "q2": "a"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Percentage != 67 {
		t.Errorf("2/3 Percentage = %d, want 67", res.Percentage)
	}
}

func TestScoreWeightedPoints(t *testing.T) {
	q := &Quiz{
		PassingScore: 50,
		Questions: []Question{
			{ID: "q1", CorrectOption: "a", Points: 30},
			{ID: "q2", CorrectOption: "a", Points: 10},
		},
	}

	res, err := Score(q, map[string]string{"q1": "a"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Percentage != 75 || !res.Passed {
		t.Errorf("got %d%% passed=%v, want 75%% passed=true", res.Percentage, res.Passed)
	}
}

func TestScoreNoQuestions(t *testing.T) {
	for _, q := range []*Quiz{
		{PassingScore: 70},
		{PassingScore: 70, Questions: []Question{{ID: "q1", CorrectOption: "a", Points: 0}}},
	} {
		if _, err := Score(q, nil); !errors.Is(err, ErrNoQuestions) {
			t.Errorf("Score err = %v, want ErrNoQuestions", err)
		}
	}
}

func TestScoreIsReplaySafe(t *testing.T) {
	q := fourQuestionQuiz()
	answers := map[string]string{"q1": "a", "q2": "c", "q3": "a"}

	first, err := Score(q, answers)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Score(q, answers)
		if err != nil {
			t.Fatalf("Score: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("replay %d diverged: %+v vs %+v", i, first, again)
		}
	}
}

func TestScorePerQuestionReview(t *testing.T) {
	res, err := Score(fourQuestionQuiz(), map[string]string{"q1": "a", "q2": "b"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if len(res.Questions) != 4 {
		t.Fatalf("expected 4 question results, got %d", len(res.Questions))
	}
	want := []struct {
		correct  bool
		selected string
	}{
		{true, "a"}, {false, "b"}, {false, ""}, {false, ""},
	}
	for i, w := range want {
		qr := res.Questions[i]
		if qr.Correct != w.correct || qr.Selected != w.selected {
			t.Errorf("question %d result = %+v, want correct=%v selected=%q", i+1, qr, w.correct, w.selected)
		}
	}
}
