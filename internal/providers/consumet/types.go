package consumet

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/streamhub/streamhub/internal/canonical"
)

// Consumet response shapes vary by scraped source: the same field can arrive
// as a string in one provider and a number in another. flexString and
// flexFloat absorb both forms so one flaky provider doesn't fail the decode.

type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	// Bare number: keep its literal form.
	*f = flexString(data)
	return nil
}

type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

type listResponse struct {
	Results []listResult `json:"results"`
}

type listResult struct {
	ID            string               `json:"id"`
	Title         canonical.LocaleText `json:"title"`
	Image         string               `json:"image"`
	URL           string               `json:"url"`
	EpisodeNumber flexFloat            `json:"episodeNumber"`
	ReleaseDate   flexString           `json:"releaseDate"`
	SubOrDub      string               `json:"subOrDub"`
	Status        string               `json:"status"`
	Type          string               `json:"type"`
}

type detailResponse struct {
	ID          string               `json:"id"`
	Title       canonical.LocaleText `json:"title"`
	Description canonical.LocaleText `json:"description"`
	Image       string               `json:"image"`
	ReleaseDate flexString           `json:"releaseDate"`
	Episodes    []episode            `json:"episodes"`
}

type episode struct {
	ID     string               `json:"id"`
	Number flexFloat            `json:"number"`
	Title  canonical.LocaleText `json:"title"`
	URL    string               `json:"url"`
}

type watchResponse struct {
	Sources   []source   `json:"sources"`
	Subtitles []subtitle `json:"subtitles"`
	Download  string     `json:"download"`
}

type source struct {
	URL     string `json:"url"`
	Quality string `json:"quality"`
	IsM3U8  bool   `json:"isM3U8"`
}

type subtitle struct {
	URL  string `json:"url"`
	Lang string `json:"lang"`
}

func (d detailResponse) toDetail() *canonical.Detail {
	episodes := make([]canonical.Episode, len(d.Episodes))
	for i, ep := range d.Episodes {
		title := ep.Title.Title()
		if title == canonical.UnknownTitle {
			title = ""
		}
		episodes[i] = canonical.Episode{
			ID:     ep.ID,
			Number: float64(ep.Number),
			Title:  title,
			URL:    ep.URL,
		}
	}
	return &canonical.Detail{
		ID:          d.ID,
		Title:       d.Title.Title(),
		Description: d.Description.Description(),
		Image:       canonical.ImageOrPlaceholder(d.Image),
		ReleaseDate: string(d.ReleaseDate),
		Episodes:    episodes,
	}
}

func (w watchResponse) toStream() *canonical.Stream {
	stream := &canonical.Stream{Download: w.Download}
	for _, s := range w.Sources {
		stream.Sources = append(stream.Sources, canonical.Source{URL: s.URL, Quality: s.Quality, IsM3U8: s.IsM3U8})
	}
	for _, s := range w.Subtitles {
		stream.Subtitles = append(stream.Subtitles, canonical.Subtitle{URL: s.URL, Lang: s.Lang})
	}
	stream.Normalize()
	return stream
}
