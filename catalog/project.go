// Package catalog models the fansub catalog and the views the interface
// browses: home, favorites, history, category pages and search.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Episode is one playable part of a series.
type Episode struct {
	Title string `json:"titolo_episodio" jsonschema:"title=Episode title"`
	URL   string `json:"url_video" jsonschema:"format=uri"`
}

// VideoData is either a single URL (movie) or a list of episodes (series).
type VideoData struct {
	IsSeries bool      `json:"is_serie"`
	URL      string    `json:"url_video,omitempty" jsonschema:"format=uri"`
	Episodes []Episode `json:"episodi,omitempty"`
}

// Project is a catalog entry, a movie or a series.
type Project struct {
	ID          string    `json:"id_progetto" jsonschema:"required"`
	Title       string    `json:"titolo" jsonschema:"required"`
	Poster      string    `json:"url_poster_verticale" jsonschema:"format=uri"`
	Genres      []string  `json:"generi"`
	Actors      []string  `json:"attori"`
	Description string    `json:"descrizione"`
	Category    string    `json:"macro_categoria" jsonschema:"enum=film,enum=drama,enum=mini e web drama,enum=altro"`
	SubCategory string    `json:"sub_categoria"`
	Video       VideoData `json:"video_data" jsonschema:"required"`
}

var (
	ErrMissingID       = errors.New("missing id_progetto")
	ErrNoEpisodes      = errors.New("series without episodes")
	ErrMissingURL      = errors.New("movie without url_video")
	ErrEmptyEpisodeURL = errors.New("episode without url_video")
)

// Validate checks the invariants the player relies on.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return ErrMissingID
	}

	if p.Video.IsSeries {
		if len(p.Video.Episodes) == 0 {
			return fmt.Errorf("%s: %w", p.ID, ErrNoEpisodes)
		}
		for i, ep := range p.Video.Episodes {
			if ep.URL == "" {
				return fmt.Errorf("%s: episode %d: %w", p.ID, i+1, ErrEmptyEpisodeURL)
			}
		}
		return nil
	}

	if p.Video.URL == "" {
		return fmt.Errorf("%s: %w", p.ID, ErrMissingURL)
	}
	return nil
}

func isOnAirGenre(genre string) bool {
	g := strings.ToLower(strings.TrimSpace(genre))
	return g == "onair" || g == "on air"
}

// IsOnAir reports whether the project is still airing.
func (p *Project) IsOnAir() bool {
	return lo.ContainsBy(p.Genres, isOnAirGenre)
}

// DisplayGenres are the genres without the airing marker.
func (p *Project) DisplayGenres() []string {
	return lo.Reject(p.Genres, func(g string, _ int) bool { return isOnAirGenre(g) })
}

// EpisodeCount is the number of playable units: 1 for a movie.
func (p *Project) EpisodeCount() int {
	if p.Video.IsSeries {
		return len(p.Video.Episodes)
	}
	return 1
}

// EpisodeURL returns the video of unit i.
func (p *Project) EpisodeURL(i int) (string, bool) {
	if i < 0 || i >= p.EpisodeCount() {
		return "", false
	}
	if p.Video.IsSeries {
		return p.Video.Episodes[i].URL, true
	}
	return p.Video.URL, true
}

// EpisodeTitle returns a label for unit i, falling back to its number.
func (p *Project) EpisodeTitle(i int) string {
	if p.Video.IsSeries && i >= 0 && i < len(p.Video.Episodes) {
		if t := p.Video.Episodes[i].Title; t != "" {
			return t
		}
	}
	if !p.Video.IsSeries {
		return p.Title
	}
	return fmt.Sprintf("Episodio %d", i+1)
}

func (p *Project) String() string {
	return p.Title
}
