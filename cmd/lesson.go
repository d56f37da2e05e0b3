package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avasseur/atelier/internal/content"
	"github.com/avasseur/atelier/internal/ui"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson <activity-id>",
	Short: "Read the lesson for an activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, st, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		activityID := args[0]
		act, _, err := s.Catalog().Activity(activityID)
		if err != nil {
			return err
		}

		lesson, ok := s.Content().LessonByActivity(activityID)
		if !ok {
			lesson = content.PlaceholderLesson(activityID, act.Title)
		}

		fmt.Println(ui.Title.Render(lesson.Title))
		if lesson.Introduction != "" {
			fmt.Println(ui.Body.Render(lesson.Introduction))
			fmt.Println()
		}
		for _, sec := range lesson.Sections {
			fmt.Println(ui.Highlight.Render(sec.Title))
			fmt.Println(ui.Body.Render(sec.Content))
			fmt.Println()
		}
		if len(lesson.KeyPoints) > 0 {
			fmt.Println(ui.Highlight.Render("Key points"))
			for _, kp := range lesson.KeyPoints {
				fmt.Println(ui.Body.Render("  • " + kp))
			}
			fmt.Println()
		}
		if len(lesson.PracticalTips) > 0 {
			fmt.Println(ui.Highlight.Render("Practical tips"))
			for _, tip := range lesson.PracticalTips {
				fmt.Println(ui.Body.Render("  • " + tip))
			}
			fmt.Println()
		}
		for _, r := range lesson.Resources {
			fmt.Println(ui.Subtitle.Render(fmt.Sprintf("[%s] %s %s", r.Type, r.Title, r.URL)))
		}
		if !lesson.Placeholder {
			fmt.Println(ui.Hint.Render("Done reading? Collect XP with: atelier complete " + activityID))
		}
		return nil
	},
}
