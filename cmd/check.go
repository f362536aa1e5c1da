package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/mydrama-tv/mydrama/constant"
	"github.com/mydrama-tv/mydrama/icon"
	"github.com/mydrama-tv/mydrama/style"
	"github.com/spf13/cobra"
)

var installHints = map[string]string{
	constant.Darwin:  "brew install mpv",
	constant.Linux:   "sudo apt install mpv",
	constant.Windows: "scoop install mpv",
	constant.Android: "pkg install mpv",
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the external programs mydrama needs are installed",
	Run: func(cmd *cobra.Command, args []string) {
		path, err := exec.LookPath("mpv")
		if err != nil {
			printMissingDependency("mpv")
			os.Exit(1)
		}

		cmd.Printf("%s mpv found at %s\n", style.Fg(style.SuccessColor)(icon.Get(icon.Success)), path)
	},
}

// CheckDependencies exits when mpv is not on PATH.
func CheckDependencies() {
	if _, err := exec.LookPath("mpv"); err != nil {
		printMissingDependency("mpv")
		os.Exit(1)
	}
}

func printMissingDependency(dep string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ErrorColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.ErrorColor).Render(fmt.Sprintf("%s Missing dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("%s was not found in your PATH, it is needed to play videos.", dep))

	var suggestion string
	if hint, ok := installHints[runtime.GOOS]; ok {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(hint))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
