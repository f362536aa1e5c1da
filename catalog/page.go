package catalog

// Macro categories of the catalog, in home page order.
const (
	CategoryFilm  = "film"
	CategoryDrama = "drama"
	CategoryMini  = "mini e web drama"
	CategoryOther = "altro"
)

// Categories lists the macro categories in home page order.
var Categories = []string{CategoryFilm, CategoryDrama, CategoryMini, CategoryOther}

var asianCountries = []string{"Cina", "Corea", "Giappone", "Hong Kong", "Taiwan", "Thailandia"}

var subCategories = map[string][]string{
	CategoryFilm:  asianCountries,
	CategoryDrama: asianCountries,
	CategoryMini:  asianCountries,
	CategoryOther: {"Cortometraggi", "Teaser Trailer", "Pubblicità"},
}

// SubCategories returns the filters offered on a category page.
func SubCategories(category string) []string {
	return subCategories[category]
}

// Page is an entry of the top menu.
type Page int

const (
	PageHome Page = iota
	PageHistory
	PageFavorites
	PageFilm
	PageDrama
	PageMini
	PageOther
	PageSearch
)

// Pages is the menu, left to right.
var Pages = []Page{PageHome, PageHistory, PageFavorites, PageFilm, PageDrama, PageMini, PageOther, PageSearch}

var pageInfo = map[Page]struct {
	id, label, category string
}{
	PageHome:      {"home", "Home", ""},
	PageHistory:   {"history", "Continua a guardare", ""},
	PageFavorites: {"favorites", "Preferiti", ""},
	PageFilm:      {"film", "Film", CategoryFilm},
	PageDrama:     {"drama", "Drama", CategoryDrama},
	PageMini:      {"mini", "Mini e Web Drama", CategoryMini},
	PageOther:     {"altro", "Altro", CategoryOther},
	PageSearch:    {"search", "Cerca", ""},
}

// ID is the stable identifier used on the command line.
func (p Page) ID() string {
	return pageInfo[p].id
}

func (p Page) String() string {
	return pageInfo[p].label
}

// Category returns the macro category listed by a category page.
func (p Page) Category() (string, bool) {
	c := pageInfo[p].category
	return c, c != ""
}

// PageByID resolves a page identifier.
func PageByID(id string) (Page, bool) {
	for _, p := range Pages {
		if p.ID() == id {
			return p, true
		}
	}
	return PageHome, false
}
