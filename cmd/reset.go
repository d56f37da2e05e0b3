package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avasseur/atelier/internal/ui"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all learner data and start over",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Println(ui.Bad.Render("This wipes your profile, progress and history."))
			fmt.Println(ui.Hint.Render("Run again with --yes to confirm."))
			return nil
		}

		s, st, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := s.Reset(cmd.Context(), time.Now().UTC()); err != nil {
			return err
		}
		fmt.Println(ui.Good.Render("All data cleared. Fresh start!"))
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Confirm the wipe")
}
