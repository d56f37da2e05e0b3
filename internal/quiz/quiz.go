// Package quiz defines quiz content and the scoring routine.
package quiz

// QuestionType identifies how a question presents its options.
type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
)

// Option is one selectable answer.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is a single quiz question with exactly one correct option.
type Question struct {
	ID            string       `json:"id"`
	Number        int          `json:"number"`
	Text          string       `json:"text"`
	Type          QuestionType `json:"type"`
	Options       []Option     `json:"options"`
	CorrectOption string       `json:"correct_option"`
	Explanation   string       `json:"explanation,omitempty"`
	Points        int          `json:"points"`
}

// Quiz is an ordered list of questions with a passing threshold.
type Quiz struct {
	ID           string     `json:"id"`
	ActivityID   string     `json:"activity_id"`
	ModuleID     string     `json:"module_id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	PassingScore int        `json:"passing_score"`
	TimeLimitMin int        `json:"time_limit_min,omitempty"`
	Questions    []Question `json:"questions"`
}

// MaxPoints sums the point values of all questions.
func (q *Quiz) MaxPoints() int {
	total := 0
	for _, question := range q.Questions {
		total += question.Points
	}
	return total
}

// Question returns the question with the given id, or nil.
func (q *Quiz) Question(id string) *Question {
	for i := range q.Questions {
		if q.Questions[i].ID == id {
			return &q.Questions[i]
		}
	}
	return nil
}
