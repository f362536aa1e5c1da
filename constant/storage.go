package constant

// Keys of the persisted collections. They match the names the web client
// used in localStorage so exported data stays interchangeable.
const (
	FavoritesKey = "mydrama_favorites"
	HistoryKey   = "mydrama_history"
)

// Storage backends accepted by storage.backend.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
)

// DefaultCatalogURL is the public fansub catalog.
const DefaultCatalogURL = "https://raw.githubusercontent.com/mydramasubita-boop/listaprogettimydramafansub/refs/heads/main/metadati_fansub_test.json"
