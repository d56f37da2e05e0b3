package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avasseur/atelier/internal/catalog"
	"github.com/avasseur/atelier/internal/session"
	"github.com/avasseur/atelier/internal/ui"
)

var completeCmd = &cobra.Command{
	Use:   "complete <activity-id>",
	Short: "Mark an activity as done and collect its XP",
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
		if act.Type == catalog.ActivityQuiz {
			return fmt.Errorf("%q is a quiz, submit answers with: atelier quiz %s", activityID, activityID)
		}

		out, err := s.CompleteActivity(cmd.Context(), activityID, time.Now().UTC())
		if err != nil {
			return err
		}
		printOutcome(out)
		return nil
	},
}

// printOutcome renders the shared result block for activity completions.
func printOutcome(out *session.Outcome) {
	if !out.Applied {
		fmt.Println(ui.Hint.Render("Already completed, no XP awarded."))
		return
	}

	fmt.Printf("%s %s  %s\n", out.Activity.Type.Icon(),
		ui.Good.Render(out.Activity.Title+" done!"),
		ui.Highlight.Render(fmt.Sprintf("+%d XP", out.XPAwarded)))

	for _, up := range out.LevelUps {
		fmt.Println(ui.Highlight.Render(fmt.Sprintf("⬆ Level up! %d → %d", up.From, up.To)))
	}
	for _, b := range out.NewBadges {
		fmt.Printf("%s %s %s\n", b.Icon,
			ui.RarityStyle(b.Rarity).Render("Badge unlocked: "+b.Name),
			ui.Subtitle.Render("("+b.Rarity.DisplayName()+")"))
	}
	if out.ModuleCompleted {
		fmt.Println(ui.Good.Render("🎉 Module complete!"))
	}
	if out.Progress != nil {
		fmt.Println(ui.Bar("Module", out.Progress.CompletionPercentage/100, 40))
	}
}
