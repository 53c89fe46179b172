// Package pager enumerates remote paginated collections to completion,
// normalizing items into a uniform record shape and retrying transient
// page failures with bounded exponential backoff.
package pager

// Cursor tracks where enumeration stands in a paginated collection.
// The token is opaque: it is only ever passed back to the source
// unchanged, never parsed. Cursors are values; Advance returns a new
// one rather than mutating in place.
type Cursor struct {
	token        string
	started      bool
	itemsFetched int
}

// Initial returns the cursor for the first page of a collection.
func Initial() Cursor {
	return Cursor{}
}

// Advance returns the cursor after a successful page fetch that returned
// next as its continuation token and added items.
func (c Cursor) Advance(next string, added int) Cursor {
	return Cursor{
		token:        next,
		started:      true,
		itemsFetched: c.itemsFetched + added,
	}
}

// IsTerminal reports whether enumeration has finished. An empty token
// alone is not enough: the initial cursor also has one, so at least one
// page must have been fetched.
func (c Cursor) IsTerminal() bool {
	return c.started && c.token == ""
}

// Token returns the continuation token for the next page request.
// Empty on the first request and after the final page.
func (c Cursor) Token() string {
	return c.token
}

// ItemsFetched returns the number of raw items seen so far, including
// items later skipped by normalization.
func (c Cursor) ItemsFetched() int {
	return c.itemsFetched
}

// Started reports whether at least one page has been fetched.
func (c Cursor) Started() bool {
	return c.started
}
