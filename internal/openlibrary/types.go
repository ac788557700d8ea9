package openlibrary

import "encoding/json"

// Doc is a single result from the Open Library search endpoint.
type Doc struct {
	Key                 string   `json:"key"`
	Title               string   `json:"title"`
	AuthorName          []string `json:"author_name,omitempty"`
	FirstPublishYear    int      `json:"first_publish_year,omitempty"`
	ISBN                []string `json:"isbn,omitempty"`
	CoverID             int      `json:"cover_i,omitempty"`
	EditionCount        int      `json:"edition_count,omitempty"`
	Publisher           []string `json:"publisher,omitempty"`
	Language            []string `json:"language,omitempty"`
	Subject             []string `json:"subject,omitempty"`
	NumberOfPagesMedian int      `json:"number_of_pages_median,omitempty"`
}

type searchResponse struct {
	NumFound int   `json:"numFound"`
	Docs     []Doc `json:"docs"`
}

// workResponse carries the description of a work. Open Library returns the
// description either as a bare string or as {"type": …, "value": …}.
type workResponse struct {
	Description json.RawMessage `json:"description"`
}

func (w workResponse) description() string {
	if len(w.Description) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(w.Description, &s); err == nil {
		return s
	}
	var obj struct {
		Value string `json:"value"`
	}
	if err := json.Unmarshal(w.Description, &obj); err == nil {
		return obj.Value
	}
	return ""
}
