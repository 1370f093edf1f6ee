package job

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// Tag is one listing attribute as delivered by the upstream API, where an
// element is either a plain string or an object carrying slug/name. Both
// shapes collapse into this struct at the ingestion boundary; downstream
// code only ever sees Text().
type Tag struct {
	Slug string `json:"slug,omitempty"`
	Name string `json:"name,omitempty"`
}

func (t Tag) Text() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Slug
}

// UnmarshalJSON accepts both upstream shapes: "python" and
// {"slug":"python","name":"Python"}. Unexpected shapes decode to an empty
// tag instead of failing the whole listing.
func (t *Tag) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = Tag{Name: s}
		return nil
	}
	type structured struct {
		Slug string `json:"slug"`
		Name string `json:"name"`
	}
	var obj structured
	if err := json.Unmarshal(b, &obj); err == nil {
		*t = Tag{Slug: obj.Slug, Name: obj.Name}
		return nil
	}
	*t = Tag{}
	return nil
}

// MarshalJSON writes the compact string form when no slug is present.
func (t Tag) MarshalJSON() ([]byte, error) {
	if t.Slug == "" {
		return json.Marshal(t.Name)
	}
	type structured struct {
		Slug string `json:"slug"`
		Name string `json:"name,omitempty"`
	}
	return json.Marshal(structured{Slug: t.Slug, Name: t.Name})
}

type Job struct {
	ID           uuid.UUID
	Title        string
	Company      string
	Location     *string
	Salary       *string
	Tags         []Tag
	JobURL       string
	DatePosted   *time.Time
	Description  *string
	Status       Status
	MatchScore   *float64
	DateScraped  time.Time
	DateLastSeen time.Time
}

// TagTexts flattens the tag union into plain strings for the matcher.
func (j Job) TagTexts() []string {
	out := make([]string, 0, len(j.Tags))
	for _, t := range j.Tags {
		if s := t.Text(); s != "" {
			out = append(out, s)
		}
	}
	return out
}
