package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/4rankng/tradeassist/internal/display"
	"github.com/4rankng/tradeassist/internal/skills"
)

func newSkillsCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List the research skills discovered on disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := skills.List(a.cfg.SkillsDir)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(found)
			}

			rows := make([][]string, 0, len(found))
			for _, s := range found {
				rows = append(rows, []string{s.Name, s.Description})
			}

			fmt.Println(display.Header("🛠  Skills"))
			fmt.Print(display.Table([]string{"NAME", "DESCRIPTION"}, rows))
			fmt.Println(display.Countf("%d skills", len(found)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print raw JSON")

	return cmd
}
