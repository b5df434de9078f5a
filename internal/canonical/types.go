// Package canonical defines the gateway's normalized item shapes and the
// rules that map heterogeneous provider responses onto them. Every field a
// client can display has a deterministic default; null never reaches the
// response schema.
package canonical

// Item is the canonical listing entry returned by all recent/search
// endpoints regardless of originating provider.
type Item struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
	ReleaseDate string `json:"releaseDate"`
	Status      string `json:"status"`

	// Capability-specific extras; omitted where the capability has no
	// sensible value rather than sent as null.
	Rating        string   `json:"rating,omitempty"`
	SubOrDub      string   `json:"subOrDub,omitempty"`
	Type          string   `json:"type,omitempty"`
	Year          int      `json:"year,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	EpisodeNumber float64  `json:"episodeNumber,omitempty"`
	URL           string   `json:"url,omitempty"`
}

// MangaInfo is the canonical single-manga detail shape.
type MangaInfo struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Status      string   `json:"status"`
	Year        int      `json:"year,omitempty"`
	Tags        []string `json:"tags"`
}

// Detail is the canonical detail shape for anime and movies: metadata plus
// the episode list in provider order.
type Detail struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	ReleaseDate string    `json:"releaseDate,omitempty"`
	Episodes    []Episode `json:"episodes"`
}

// Episode is one watchable episode reference. Ordering is preserved from
// the provider response, which is assumed chronological.
type Episode struct {
	ID     string  `json:"id"`
	Number float64 `json:"number,omitempty"`
	Title  string  `json:"title,omitempty"`
	URL    string  `json:"url,omitempty"`
}

// Chapter is one readable chapter reference. The Chapter field keeps the
// provider's numeric-string form ("9.5"); ordering is by its parsed value.
type Chapter struct {
	ID        string `json:"id"`
	Chapter   string `json:"chapter"`
	Title     string `json:"title"`
	Pages     int    `json:"pages"`
	PublishAt string `json:"publishAt"`
}

// Stream holds playable sources for one episode.
type Stream struct {
	Sources   []Source   `json:"sources"`
	Subtitles []Subtitle `json:"subtitles"`
	Download  string     `json:"download,omitempty"`
}

type Source struct {
	URL     string `json:"url"`
	Quality string `json:"quality,omitempty"`
	IsM3U8  bool   `json:"isM3U8,omitempty"`
}

type Subtitle struct {
	URL  string `json:"url"`
	Lang string `json:"lang,omitempty"`
}
