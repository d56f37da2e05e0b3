package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/avasseur/atelier/internal/ui"
)

var quizAnswers []string

var quizCmd = &cobra.Command{
	Use:   "quiz <activity-id>",
	Short: "Take a quiz, or show its questions",
	Long: `Without --answer flags, prints the quiz questions and options.
With --answer flags, scores the attempt:

  atelier quiz photo-w1d1-exposure-quiz --answer q1=a --answer q2=true`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, st, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		activityID := args[0]
		q, ok := s.Content().QuizByActivity(activityID)
		if !ok {
			return fmt.Errorf("no quiz available for %q", activityID)
		}

		if len(quizAnswers) == 0 {
			fmt.Println(ui.Title.Render(q.Title))
			fmt.Println(ui.Subtitle.Render(fmt.Sprintf("%d questions · pass at %d%%", len(q.Questions), q.PassingScore)))
			fmt.Println()
			for _, question := range q.Questions {
				fmt.Printf("%s %s\n", ui.Highlight.Render(question.ID+"."), ui.Body.Render(question.Text))
				for _, opt := range question.Options {
					fmt.Printf("    %s  %s\n", ui.Subtitle.Render(opt.ID+")"), ui.Body.Render(opt.Text))
				}
			}
			fmt.Println()
			fmt.Println(ui.Hint.Render("Answer with: atelier quiz " + activityID + " --answer " + q.Questions[0].ID + "=<option>"))
			return nil
		}

		answers := make(map[string]string, len(quizAnswers))
		for _, a := range quizAnswers {
			qid, opt, found := strings.Cut(a, "=")
			if !found {
				return fmt.Errorf("bad --answer %q, want question=option", a)
			}
			answers[qid] = opt
		}

		out, err := s.SubmitQuiz(cmd.Context(), activityID, answers, time.Now().UTC())
		if err != nil {
			return err
		}

		res := out.Result
		if res.Passed {
			fmt.Println(ui.Good.Render(fmt.Sprintf("Passed! %d%% (%d/%d points)",
				res.Percentage, res.EarnedPoints, res.MaxPoints)))
		} else {
			fmt.Println(ui.Bad.Render(fmt.Sprintf("Not this time: %d%%, need %d%%",
				res.Percentage, q.PassingScore)))
		}

		var explanations []string
		for _, qr := range res.Questions {
			question := q.Question(qr.QuestionID)
			mark := ui.Good.Render("✓")
			if !qr.Correct {
				mark = ui.Bad.Render("✗")
				if question != nil && question.Explanation != "" {
					explanations = append(explanations, qr.QuestionID+": "+question.Explanation)
				}
			}
			fmt.Printf("  %s %s\n", mark, ui.Subtitle.Render(qr.QuestionID))
		}
		for _, e := range explanations {
			fmt.Println(ui.Hint.Render(e))
		}

		if out.Completion != nil {
			fmt.Println()
			printOutcome(out.Completion)
		}
		return nil
	},
}

func init() {
	quizCmd.Flags().StringArrayVar(&quizAnswers, "answer", nil, "Answer as question=option, repeatable")
}
