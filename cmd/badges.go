package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avasseur/atelier/internal/badges"
	"github.com/avasseur/atelier/internal/profile"
	"github.com/avasseur/atelier/internal/ui"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Show the badge collection, locked and unlocked",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, st, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p := s.Profile()
		for _, b := range badges.All() {
			name := ui.RarityStyle(b.Rarity).Render(b.Name)
			state := ui.Subtitle.Render("locked")
			icon := "🔒"
			if p.HasBadge(b.ID) {
				state = ui.Good.Render("unlocked")
				icon = b.Icon
			}
			fmt.Printf("%s %s  %s  %s\n", icon, name,
				ui.Subtitle.Render("["+b.Rarity.DisplayName()+"]"), state)
			fmt.Println("   " + ui.Hint.Render(b.Description))
		}
		return nil
	},
}

// badgeLine renders one unlocked badge with its unlock date.
func badgeLine(ub profile.UnlockedBadge) string {
	b, err := badges.ByID(ub.BadgeID)
	if err != nil {
		return ui.Subtitle.Render(ub.BadgeID)
	}
	return fmt.Sprintf("%s %s %s", b.Icon,
		ui.RarityStyle(b.Rarity).Render(b.Name),
		ui.Subtitle.Render(ub.UnlockedAt.Format("2006-01-02")))
}
