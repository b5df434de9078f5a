package mangadex

// Raw MangaDex API shapes. Only the fields the gateway reads are declared.

type mangaListResponse struct {
	Data []manga `json:"data"`
}

type mangaResponse struct {
	Data manga `json:"data"`
}

type manga struct {
	ID            string          `json:"id"`
	Attributes    mangaAttributes `json:"attributes"`
	Relationships []relationship  `json:"relationships"`
}

type mangaAttributes struct {
	Title         map[string]string `json:"title"`
	Description   map[string]string `json:"description"`
	Status        string            `json:"status"`
	Year          int               `json:"year"`
	ContentRating string            `json:"contentRating"`
	Tags          []tag             `json:"tags"`
}

type tag struct {
	Attributes struct {
		Name map[string]string `json:"name"`
	} `json:"attributes"`
}

type relationship struct {
	Type       string `json:"type"`
	Attributes struct {
		FileName string `json:"fileName"`
	} `json:"attributes"`
}

// coverFileName finds the cover_art relationship's file name, if any.
func (m manga) coverFileName() string {
	for _, rel := range m.Relationships {
		if rel.Type == "cover_art" {
			return rel.Attributes.FileName
		}
	}
	return ""
}

type feedResponse struct {
	Data []chapterData `json:"data"`
}

type chapterData struct {
	ID         string `json:"id"`
	Attributes struct {
		Chapter   string `json:"chapter"`
		Title     string `json:"title"`
		Pages     int    `json:"pages"`
		PublishAt string `json:"publishAt"`
	} `json:"attributes"`
}

type atHomeResponse struct {
	BaseURL string `json:"baseUrl"`
	Chapter struct {
		Hash string   `json:"hash"`
		Data []string `json:"data"`
	} `json:"chapter"`
}
