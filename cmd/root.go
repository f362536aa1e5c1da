// Package cmd is the mydrama command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/color"
	"github.com/mydrama-tv/mydrama/constant"
	"github.com/mydrama-tv/mydrama/icon"
	"github.com/mydrama-tv/mydrama/key"
	"github.com/mydrama-tv/mydrama/log"
	"github.com/mydrama-tv/mydrama/style"
	"github.com/mydrama-tv/mydrama/tui"
	"github.com/mydrama-tv/mydrama/util"
	"github.com/mydrama-tv/mydrama/version"
	"github.com/mydrama-tv/mydrama/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func pageIDs() []string {
	return lo.Map(catalog.Pages, func(p catalog.Page, _ int) string {
		return p.ID()
	})
}

func completionPages(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return pageIDs(), cobra.ShellCompDirectiveNoFileComp
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant (emoji, kaomoji, plain, squares, nerd)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("page", "p", catalog.PageHome.ID(), "Page opened on start")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("page", completionPages))

	rootCmd.Flags().StringP("search", "s", "", "Open the search page with this query")
	rootCmd.MarkFlagsMutuallyExclusive("page", "search")

	rootCmd.Flags().BoolP("remote", "r", false, "Accept key events from a remote control over HTTP")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.Context())
	})

	// stale mpv sockets from a previous run
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.MyDrama,
	Short: "Browse the MyDrama fansub catalog and watch it with mpv",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse the MyDrama fansub catalog and watch it with mpv"),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.SetContext(cmd.Context())
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()

		options := tui.Options{
			Page:   catalog.PageHome,
			Search: lo.Must(cmd.Flags().GetString("search")),
			Remote: lo.Must(cmd.Flags().GetBool("remote")),
		}

		id := lo.Must(cmd.Flags().GetString("page"))
		page, ok := catalog.PageByID(id)
		if !ok {
			handleErr(fmt.Errorf("unknown page %q, available: %s", id, strings.Join(pageIDs(), ", ")))
		}
		options.Page = page

		if options.Search != "" {
			options.Page = catalog.PageSearch
		}

		handleErr(tui.Run(&options))
	},
}

// Execute runs the command line.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
