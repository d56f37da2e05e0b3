package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avasseur/atelier/internal/ui"
)

var startCmd = &cobra.Command{
	Use:   "start <module-id>",
	Short: "Start a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, st, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		moduleID := args[0]
		rec, created, err := s.StartModule(cmd.Context(), moduleID, time.Now().UTC())
		if err != nil {
			return err
		}

		mod, err := s.Catalog().Module(moduleID)
		if err != nil {
			return err
		}

		if !created {
			fmt.Println(ui.Hint.Render(fmt.Sprintf("%s already started, you're on week %d day %d.",
				mod.Title, rec.CurrentWeek, rec.CurrentDay)))
			return nil
		}

		fmt.Printf("%s %s\n", mod.Icon, ui.Good.Render("Started "+mod.Title))
		if len(mod.Weeks) > 0 {
			w := mod.Weeks[0]
			fmt.Println(ui.Subtitle.Render(fmt.Sprintf("Week 1: %s", w.Title)))
		}
		fmt.Println(ui.Hint.Render("See what's next with: atelier stats " + moduleID))
		return nil
	},
}
