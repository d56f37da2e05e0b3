package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avasseur/atelier/internal/ui"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List available modules and your progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, st, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		for _, m := range s.Catalog().Modules() {
			fmt.Printf("%s %s  %s\n", m.Icon, ui.Title.Render(m.Title), ui.Subtitle.Render("("+m.ID+")"))
			fmt.Println("  " + ui.Body.Render(m.Description))
			fmt.Printf("  %s · %d activities · %d XP\n",
				ui.Subtitle.Render(string(m.Level)), m.ActivityCount(), m.TotalXP())

			if rec := s.Progress(m.ID); rec != nil {
				fmt.Println("  " + ui.Bar("", rec.CompletionPercentage/100, 40))
				fmt.Printf("  %s\n", ui.Subtitle.Render(
					fmt.Sprintf("week %d, day %d · %d XP earned", rec.CurrentWeek, rec.CurrentDay, rec.EarnedXP)))
			} else {
				fmt.Println("  " + ui.Hint.Render("not started · atelier start "+m.ID))
			}
			fmt.Println()
		}
		return nil
	},
}
