package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/mattn/go-runewidth"
	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/color"
	"github.com/mydrama-tv/mydrama/icon"
	"github.com/mydrama-tv/mydrama/key"
	"github.com/mydrama-tv/mydrama/style"
	"github.com/mydrama-tv/mydrama/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	idColumn    = 14
	titleColumn = 40
)

func kindOf(p *catalog.Project) string {
	if p.Video.IsSeries {
		return util.Quantify(p.EpisodeCount(), "episodio", "episodi")
	}
	return "film"
}

// printProjects writes one line per project. mark adds a leading symbol.
func printProjects(cmd *cobra.Command, projects []catalog.Project, asJson bool, mark func(*catalog.Project) string) {
	if asJson {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(projects))
		return
	}

	if len(projects) == 0 {
		cmd.Println(style.Faint("Nessun titolo"))
		return
	}

	for i := range projects {
		p := &projects[i]

		var prefix string
		if mark != nil {
			prefix = mark(p) + " "
		}

		title := runewidth.FillRight(runewidth.Truncate(p.Title, titleColumn, "…"), titleColumn)
		cmd.Printf(
			"%s%s %s %s\n",
			prefix,
			style.Fg(color.Purple)(runewidth.FillRight(p.ID, idColumn)),
			style.Bold(title),
			style.Faint(p.Category+" · "+p.SubCategory+" · "+kindOf(p)),
		)

		if p.IsOnAir() {
			cmd.Printf("%s%s %s\n", strings.Repeat(" ", runewidth.StringWidth(prefix)), strings.Repeat(" ", idColumn), style.Fg(color.HiRed)(icon.Get(icon.OnAir)+" On Air"))
		}
	}
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.PersistentFlags().BoolP("json", "j", false, "Print projects as JSON")
	catalogCmd.SetOut(os.Stdout)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the project catalog without opening the interface",
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogListCmd.Flags().StringP("page", "p", catalog.PageHome.ID(), "Page to list")
	catalogListCmd.Flags().StringP("sub", "s", "", "Only list projects of this sub category")
	catalogListCmd.Flags().BoolP("all", "a", false, "Do not cap categories on the home page")
	lo.Must0(catalogListCmd.RegisterFlagCompletionFunc("page", completionPages))
	lo.Must0(catalogListCmd.RegisterFlagCompletionFunc("sub", func(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		page, _ := catalog.PageByID(lo.Must(cmd.Flags().GetString("page")))
		category, _ := page.Category()
		return catalog.SubCategories(category), cobra.ShellCompDirectiveNoFileComp
	}))
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the projects of a page",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		id := lo.Must(cmd.Flags().GetString("page"))
		page, ok := catalog.PageByID(id)
		if !ok {
			handleErr(fmt.Errorf("unknown page %q, available: %s", id, strings.Join(pageIDs(), ", ")))
		}

		asJson := lo.Must(cmd.Flags().GetBool("json"))
		projects, err := fetchCatalog(cmd.Context(), asJson)
		handleErr(err)

		q := catalog.Query{
			Page:        page,
			SubCategory: lo.Must(cmd.Flags().GetString("sub")),
			HomeLimit:   viper.GetInt(key.CatalogHomeLimit),
		}
		if lo.Must(cmd.Flags().GetBool("all")) {
			q.HomeLimit = 0
		}

		handleErr(withStore(func(s storeHandles) error {
			q.Favorites = s.favorites.List()
			q.History = s.history.ProjectIDs()
			return nil
		}))

		printProjects(cmd, catalog.View(projects, q), asJson, nil)
	},
}

func init() {
	catalogCmd.AddCommand(catalogSearchCmd)
}

var catalogSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search titles, genres and actors",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		projects, err := fetchCatalog(cmd.Context(), asJson)
		handleErr(err)

		found := catalog.View(projects, catalog.Query{Page: catalog.PageSearch, Search: query})
		printProjects(cmd, found, asJson, nil)

		if len(found) == 0 && !asJson {
			if title, ok := catalog.DidYouMean(projects, query).Get(); ok {
				cmd.Printf("%s %s?\n", style.Faint("Forse cercavi"), style.Fg(color.Yellow)(title))
			}
		}
	},
}

func init() {
	catalogCmd.AddCommand(catalogSchemaCmd)
}

var catalogSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of a catalog project",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := jsonschema.Reflector{
			DoNotReference: true,
		}
		schema := reflector.Reflect(&catalog.Project{})
		schema.Title = "Project"
		schema.Description = "A movie or a series of the MyDrama catalog"

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
