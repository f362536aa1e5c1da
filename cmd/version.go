package cmd

import (
	"encoding/json"
	"os"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mydrama-tv/mydrama/color"
	"github.com/mydrama-tv/mydrama/constant"
	"github.com/mydrama-tv/mydrama/style"
	"github.com/mydrama-tv/mydrama/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type buildInfo struct {
	Version  string `json:"version"`
	Revision string `json:"revision"`
	BuiltAt  string `json:"builtAt"`
	BuiltBy  string `json:"builtBy"`
	Platform string `json:"platform"`
	Go       string `json:"go"`
}

func currentBuild() buildInfo {
	return buildInfo{
		Version:  constant.Version,
		Revision: constant.Revision,
		BuiltAt:  strings.TrimSpace(constant.BuiltAt),
		BuiltBy:  constant.BuiltBy,
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
		Go:       runtime.Version(),
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
	versionCmd.Flags().BoolP("json", "j", false, "Print build information as JSON")
	versionCmd.MarkFlagsMutuallyExclusive("short", "json")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		info := currentBuild()

		switch {
		case lo.Must(cmd.Flags().GetBool("short")):
			cmd.Println(info.Version)
			return
		case lo.Must(cmd.Flags().GetBool("json")):
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
			return
		}

		defer version.Notify(cmd.Context())

		label := style.New().Faint(true).Width(12).Render
		rows := []string{
			style.Fg(color.Purple)("▇▇▇") + " " + style.Bold(constant.MyDrama),
			"",
			label("Version") + style.Bold(info.Version),
			label("Git Commit") + style.Bold(info.Revision),
			label("Build Date") + style.Bold(info.BuiltAt),
			label("Built By") + style.Bold(info.BuiltBy),
			label("Platform") + style.Bold(info.Platform),
			label("Go") + style.Bold(info.Go),
		}

		cmd.Println(lipgloss.JoinVertical(lipgloss.Left, rows[0], lipgloss.NewStyle().PaddingLeft(2).Render(strings.Join(rows[1:], "\n"))))
	},
}
