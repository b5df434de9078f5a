package canonical

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Defaults substituted when a provider omits a field.
const (
	UnknownTitle  = "Unknown Title"
	NoDescription = "No description available"
	StatusUnknown = "Unknown"
	SubOrDubSub   = "sub"
	TypeMovie     = "Movie"

	// PlaceholderImage is served when no cover exists. The image field is
	// never null: clients always get a loadable URL.
	PlaceholderImage = "https://placehold.co/300x450?text=No+Image"
)

// titlePrefs is the locale preference order for titles.
var titlePrefs = []string{"en", "en-us", "romaji", "ja-ro"}

// descriptionPrefs is the locale preference order for descriptions.
var descriptionPrefs = []string{"en", "en-us"}

// LocaleText is a field that providers ship either as a plain string or as a
// locale-keyed object ({"en": "...", "ja-ro": "..."}).
type LocaleText struct {
	plain   string
	locales map[string]string
}

func NewLocaleText(locales map[string]string) LocaleText {
	return LocaleText{locales: locales}
}

func PlainText(s string) LocaleText {
	return LocaleText{plain: s}
}

// UnmarshalJSON accepts a JSON string, a locale object, or null.
func (t *LocaleText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*t = LocaleText{}
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &t.plain)
	}
	return json.Unmarshal(data, &t.locales)
}

// Title resolves the display title: en, en-us, romaji, ja-ro, then the first
// available value, then "Unknown Title".
func (t LocaleText) Title() string {
	return t.resolve(titlePrefs, UnknownTitle)
}

// Description resolves the display description: en, en-us, then the first
// available value, then "No description available".
func (t LocaleText) Description() string {
	return t.resolve(descriptionPrefs, NoDescription)
}

func (t LocaleText) resolve(prefs []string, fallback string) string {
	if t.plain != "" {
		return t.plain
	}
	for _, pref := range prefs {
		for key, val := range t.locales {
			if strings.EqualFold(key, pref) && val != "" {
				return val
			}
		}
	}
	// First available value. Keys are sorted so repeated calls resolve the
	// same way regardless of map iteration order.
	keys := make([]string, 0, len(t.locales))
	for key, val := range t.locales {
		if val != "" {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return fallback
	}
	sort.Strings(keys)
	return t.locales[keys[0]]
}

// OrString returns s unless it is empty, in which case def is substituted.
func OrString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// ImageOrPlaceholder guarantees a non-empty image URL.
func ImageOrPlaceholder(url string) string {
	if url == "" {
		return PlaceholderImage
	}
	return url
}

// CoverProxyPath is the gateway path that re-serves a MangaDex cover under
// the gateway's own origin, avoiding browser cross-origin restrictions.
func CoverProxyPath(mangaID, fileName string) string {
	return "/content/manga/cover/" + mangaID + "/" + fileName
}

// SortChapters drops entries whose chapter value doesn't parse as a number
// and orders the rest ascending by the parsed value, so "10" sorts after "9"
// and "9.5" lands between them. The sort is stable: entries with equal
// chapter values keep provider order.
func SortChapters(chapters []Chapter) []Chapter {
	type numbered struct {
		ch    Chapter
		value float64
	}
	kept := make([]numbered, 0, len(chapters))
	for _, ch := range chapters {
		v, err := strconv.ParseFloat(ch.Chapter, 64)
		if err != nil {
			continue
		}
		kept = append(kept, numbered{ch: ch, value: v})
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].value < kept[j].value
	})
	out := make([]Chapter, len(kept))
	for i, n := range kept {
		out[i] = n.ch
	}
	return out
}

// Normalize fills a Stream's nil slices so the client always receives
// arrays, never null.
func (s *Stream) Normalize() {
	if s.Sources == nil {
		s.Sources = []Source{}
	}
	if s.Subtitles == nil {
		s.Subtitles = []Subtitle{}
	}
}
