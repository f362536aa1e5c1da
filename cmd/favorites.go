package cmd

import (
	"fmt"
	"os"

	"github.com/mydrama-tv/mydrama/catalog"
	"github.com/mydrama-tv/mydrama/color"
	"github.com/mydrama-tv/mydrama/icon"
	"github.com/mydrama-tv/mydrama/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.SetOut(os.Stdout)
}

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "Manage favorite projects",
}

// completionProjectIDs offers catalog ids, described by their titles.
func completionProjectIDs(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	projects, err := fetchCatalog(cmd.Context(), true)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return lo.Map(projects, func(p catalog.Project, _ int) string {
		return p.ID + "\t" + p.Title
	}), cobra.ShellCompDirectiveNoFileComp
}

func completionFavorites(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	var ids []string
	_ = withStore(func(s storeHandles) error {
		ids = s.favorites.List()
		return nil
	})
	return ids, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesListCmd.Flags().BoolP("json", "j", false, "Print projects as JSON")
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorite projects",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		asJson := lo.Must(cmd.Flags().GetBool("json"))

		var ids []string
		handleErr(withStore(func(s storeHandles) error {
			ids = s.favorites.List()
			return nil
		}))

		if len(ids) == 0 {
			if asJson {
				cmd.Println("[]")
			} else {
				cmd.Println(style.Faint("Nessun preferito"))
			}
			return
		}

		projects, err := fetchCatalog(cmd.Context(), asJson)
		handleErr(err)

		favorites := catalog.View(projects, catalog.Query{Page: catalog.PageFavorites, Favorites: ids})
		printProjects(cmd, favorites, asJson, func(*catalog.Project) string {
			return style.Fg(color.Rose)(icon.Get(icon.Heart))
		})
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesAddCmd)
}

var favoritesAddCmd = &cobra.Command{
	Use:               "add <id>...",
	Short:             "Add projects to the favorites",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionProjectIDs,
	Run: func(cmd *cobra.Command, args []string) {
		projects, err := fetchCatalog(cmd.Context(), false)
		handleErr(err)

		handleErr(withStore(func(s storeHandles) error {
			for _, id := range args {
				p, ok := catalog.Find(projects, id)
				if !ok {
					return fmt.Errorf("no project with id %s", id)
				}

				added, err := s.favorites.Add(id)
				if err != nil {
					return err
				}

				if added {
					cmd.Printf("%s %s aggiunto ai preferiti\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Bold(p.Title))
				} else {
					cmd.Printf("%s %s\n", style.Bold(p.Title), style.Faint("è già nei preferiti"))
				}
			}
			return nil
		}))
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesRemoveCmd)
}

var favoritesRemoveCmd = &cobra.Command{
	Use:               "remove <id>...",
	Aliases:           []string{"rm"},
	Short:             "Remove projects from the favorites",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completionFavorites,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(withStore(func(s storeHandles) error {
			for _, id := range args {
				removed, err := s.favorites.Remove(id)
				if err != nil {
					return err
				}

				if removed {
					cmd.Printf("%s %s rimosso dai preferiti\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Fg(color.Purple)(id))
				} else {
					cmd.Printf("%s %s\n", style.Fg(color.Purple)(id), style.Faint("non è nei preferiti"))
				}
			}
			return nil
		}))
	},
}
