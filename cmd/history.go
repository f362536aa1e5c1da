package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-runewidth"
	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/color"
	"github.com/mydrama-tv/mydrama/history"
	"github.com/mydrama-tv/mydrama/icon"
	"github.com/mydrama-tv/mydrama/style"
	"github.com/mydrama-tv/mydrama/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the continue watching list",
}

func completionHistory(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	var ids []string
	_ = withStore(func(s storeHandles) error {
		ids = s.history.ProjectIDs()
		return nil
	})
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().BoolP("json", "j", false, "Print the raw entries as JSON")
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List watched projects, most recent first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var items []history.Item
		handleErr(withStore(func(s storeHandles) error {
			items = s.history.List()
			return nil
		}))

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(lo.Ternary(items == nil, []history.Item{}, items)))
			return
		}

		if len(items) == 0 {
			cmd.Println(style.Faint("Nessun titolo in cronologia"))
			return
		}

		// entries whose project left the catalog are listed by id
		projects, _ := fetchCatalog(cmd.Context(), false)

		for _, item := range items {
			name := item.ProjectID
			episode := ""
			if p, ok := catalog.Find(projects, item.ProjectID); ok {
				name = p.Title
				if p.Video.IsSeries {
					episode = p.EpisodeTitle(item.EpisodeIndex)
				}
			}

			cmd.Printf(
				"%s %s %s %s\n",
				style.Fg(color.Purple)(runewidth.FillRight(item.ProjectID, idColumn)),
				style.Bold(runewidth.FillRight(runewidth.Truncate(name, titleColumn, "…"), titleColumn)),
				style.Faint(item.Time().Format(time.DateTime)),
				episode,
			)
		}
	},
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
}

var historyRemoveCmd = &cobra.Command{
	Use:               "remove <id>...",
	Aliases:           []string{"rm"},
	Short:             "Remove projects from the history",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionHistory,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(withStore(func(s storeHandles) error {
			for _, id := range args {
				removed, err := s.history.Remove(id)
				if err != nil {
					return err
				}

				if removed {
					cmd.Printf("%s %s rimosso dalla cronologia\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(id))
				} else {
					cmd.Printf("%s %s\n", style.Fg(color.Purple)(id), style.Faint("non è in cronologia"))
				}
			}
			return nil
		}))
	},
}

func init() {
	historyCmd.AddCommand(historyClearCmd)
	historyClearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every entry from the history",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(withStore(func(s storeHandles) error {
			count := s.history.Len()
			if count == 0 {
				cmd.Println(style.Faint("Nessun titolo in cronologia"))
				return nil
			}

			if !lo.Must(cmd.Flags().GetBool("yes")) {
				confirm := survey.Confirm{
					Message: "Remove " + util.Quantify(count, "entry", "entries") + " from the history?",
					Default: false,
				}
				var response bool
				if err := survey.AskOne(&confirm, &response); err != nil {
					return err
				}

				if !response {
					return nil
				}
			}

			if err := s.history.Clear(); err != nil {
				return err
			}

			cmd.Printf("%s History cleared\n", style.Fg(color.Green)(icon.Get(icon.Success)))
			return nil
		}))
	},
}
