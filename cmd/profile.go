package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avasseur/atelier/internal/profile"
	"github.com/avasseur/atelier/internal/ui"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile: level, XP, skills and achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, st, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p := s.Profile()
		fmt.Println(ui.Title.Render(p.Name))
		fmt.Println(ui.XPLine(p.Leveling(), p.TotalXP))
		fmt.Println()

		fmt.Println(ui.Highlight.Render("Skills"))
		for _, sk := range p.Skills {
			fmt.Println("  " + ui.Bar(padSkill(sk), float64(sk.Level)/float64(sk.MaxLevel), 44))
		}
		fmt.Println()

		fmt.Println(ui.Highlight.Render(fmt.Sprintf("Badges (%d)", len(p.Badges))))
		if len(p.Badges) == 0 {
			fmt.Println(ui.Hint.Render("  None yet. Finish week 1 of a module to earn your first."))
		}
		for _, ub := range p.Badges {
			fmt.Println("  " + badgeLine(ub))
		}

		if len(p.CompletedModules) > 0 {
			fmt.Println()
			fmt.Println(ui.Highlight.Render("Completed modules"))
			for _, id := range p.CompletedModules {
				fmt.Println(ui.Body.Render("  ✓ " + id))
			}
		}
		return nil
	},
}

// padSkill right-pads skill names so the bars line up.
func padSkill(sk profile.Skill) string {
	return fmt.Sprintf("%-12s", sk.Name)
}
