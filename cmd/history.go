package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avasseur/atelier/internal/store"
	"github.com/avasseur/atelier/internal/ui"
)

var (
	historyLimit int
	historyType  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the activity journal, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, st, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		events, err := s.Events().List(cmd.Context(), store.QueryOpts{
			Limit: historyLimit,
			Type:  store.EventType(historyType),
		})
		if err != nil {
			return err
		}
		if len(events) == 0 {
			fmt.Println(ui.Hint.Render("Nothing yet."))
			return nil
		}

		for _, ev := range events {
			fmt.Printf("%s  %s  %s\n",
				ui.Subtitle.Render(ev.Timestamp.Local().Format("2006-01-02 15:04")),
				ui.Body.Render(string(ev.Type)),
				ui.Hint.Render(describeEvent(ev)))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Max entries to show (0 = all)")
	historyCmd.Flags().StringVar(&historyType, "type", "", "Only show events of this type")
}

// describeEvent renders a one-line summary of an event payload.
func describeEvent(ev store.Event) string {
	switch ev.Type {
	case store.EventModuleStarted:
		var d store.ModuleStartedData
		if json.Unmarshal(ev.Payload, &d) == nil {
			return d.ModuleID
		}
	case store.EventActivityCompleted:
		var d store.ActivityCompletedData
		if json.Unmarshal(ev.Payload, &d) == nil {
			return fmt.Sprintf("%s (+%d XP)", d.ActivityID, d.XP)
		}
	case store.EventQuizSubmitted:
		var d store.QuizSubmittedData
		if json.Unmarshal(ev.Payload, &d) == nil {
			verdict := "failed"
			if d.Passed {
				verdict = "passed"
			}
			return fmt.Sprintf("%s %d%% %s", d.ActivityID, d.Percentage, verdict)
		}
	case store.EventLevelUp:
		var d store.LevelUpData
		if json.Unmarshal(ev.Payload, &d) == nil {
			return fmt.Sprintf("level %d → %d", d.FromLevel, d.ToLevel)
		}
	case store.EventBadgeUnlocked:
		var d store.BadgeUnlockedData
		if json.Unmarshal(ev.Payload, &d) == nil {
			return d.BadgeID
		}
	case store.EventModuleCompleted:
		var d store.ModuleCompletedData
		if json.Unmarshal(ev.Payload, &d) == nil {
			return fmt.Sprintf("%s (%d XP)", d.ModuleID, d.EarnedXP)
		}
	}
	return ""
}
