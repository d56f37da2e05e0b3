package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avasseur/atelier/internal/session"
	"github.com/avasseur/atelier/internal/ui"
)

var statsDaily bool

var statsCmd = &cobra.Command{
	Use:   "stats [module-id]",
	Short: "Show module progress, or your recent daily activity",
	Long: `With a module id, shows the week-by-week plan and what you've completed.
With --daily, shows a per-day summary of the last week from the journal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, st, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if statsDaily {
			return printDailyStats(cmd, s)
		}
		if len(args) != 1 {
			return fmt.Errorf("need a module id (or --daily)")
		}

		moduleID := args[0]
		mod, err := s.Catalog().Module(moduleID)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", mod.Icon, ui.Title.Render(mod.Title))
		rec := s.Progress(moduleID)
		if rec == nil {
			fmt.Println(ui.Hint.Render("Not started. Begin with: atelier start " + moduleID))
			return nil
		}

		fmt.Println(ui.Bar("Progress", rec.CompletionPercentage/100, 44))
		fmt.Println(ui.Subtitle.Render(fmt.Sprintf("%d XP earned · on week %d, day %d",
			rec.EarnedXP, rec.CurrentWeek, rec.CurrentDay)))
		fmt.Println()

		for _, w := range mod.Weeks {
			fmt.Println(ui.Highlight.Render(fmt.Sprintf("Week %d: %s", w.Number, w.Title)))
			for _, d := range w.Days {
				fmt.Println(ui.Subtitle.Render(fmt.Sprintf("  Day %d · %s", d.Number, d.Title)))
				for _, a := range d.Activities {
					mark := ui.Subtitle.Render("○")
					if rec.Completed(a.ID) {
						mark = ui.Good.Render("●")
					}
					fmt.Printf("    %s %s %s  %s\n", mark, a.Type.Icon(),
						ui.Body.Render(a.Title),
						ui.Subtitle.Render(fmt.Sprintf("%d XP · %s", a.XP, a.ID)))
				}
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsDaily, "daily", false, "Show per-day totals for the last 7 days")
}

func printDailyStats(cmd *cobra.Command, s *session.Session) error {
	stats, err := s.DailyStats(cmd.Context(), 7)
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println(ui.Hint.Render("No activity in the last 7 days."))
		return nil
	}

	fmt.Println(ui.Title.Render("Last 7 days"))
	for _, day := range stats {
		fmt.Printf("%s  %s  %s\n",
			ui.Subtitle.Render(day.Date.Format("Mon 2006-01-02")),
			ui.Body.Render(fmt.Sprintf("%d activities", day.Activities)),
			ui.Highlight.Render(fmt.Sprintf("+%d XP", day.XP)))
	}
	return nil
}
