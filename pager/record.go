package pager

import "time"

// Well-known RawItem keys recognized by Normalize. Sources populate
// these when mapping their wire format; anything else rides along in Raw.
const (
	KeyID          = "id"
	KeyTitle       = "title"
	KeyDescription = "description"
	KeyPublishedAt = "published_at"
)

// RawItem is a single item as returned by a page source, before
// normalization. Values outside the well-known keys are passed through
// untouched.
type RawItem map[string]any

// Record is the normalized form of one collection item. Records are
// immutable once constructed; the slice returned by FetchAll is owned by
// the caller.
type Record struct {
	ID          string
	Title       string
	Description string
	PublishedAt time.Time
	Raw         RawItem
}

// Page is one page of results from a Source. An empty NextToken signals
// the end of the collection.
type Page struct {
	Items     []RawItem
	NextToken string
}

// Normalize maps a raw item into a Record. A missing or empty id makes
// the item unusable and ok is false; the enumeration skips it rather
// than failing. Missing optional fields default to empty values, and an
// unparseable published_at becomes the zero time.
func Normalize(item RawItem) (Record, bool) {
	id, _ := item[KeyID].(string)
	if id == "" {
		return Record{}, false
	}

	rec := Record{ID: id, Raw: item}
	rec.Title, _ = item[KeyTitle].(string)
	rec.Description, _ = item[KeyDescription].(string)

	switch v := item[KeyPublishedAt].(type) {
	case time.Time:
		rec.PublishedAt = v
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			rec.PublishedAt = t
		}
	}

	return rec, true
}
