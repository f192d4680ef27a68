package models

// PageState tracks the pagination cursor for the file list. Offset only
// advances by whole Limit increments; HasMore=false suppresses further
// load-more fetches regardless of what the UI asks for.
type PageState struct {
	Offset      int
	Limit       int
	Total       int
	HasMore     bool
	LoadingMore bool
}

func NewPageState(limit int) PageState {
	return PageState{Limit: limit}
}

// CanLoadMore reports whether a load-more fetch is allowed right now.
func (p PageState) CanLoadMore() bool {
	return p.HasMore && !p.LoadingMore
}

// Advance moves the cursor forward one page after a successful merge fetch.
func (p *PageState) Advance(total int, hasMore bool) {
	p.Offset += p.Limit
	p.Total = total
	p.HasMore = hasMore
	p.LoadingMore = false
}

// Reset rewinds the cursor after a full replace fetch.
func (p *PageState) Reset(total int, hasMore bool) {
	p.Offset = 0
	p.Total = total
	p.HasMore = hasMore
	p.LoadingMore = false
}
