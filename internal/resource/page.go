package resource

// Page is the standard response wrapper carrying items plus pagination
// metadata. CurrentPage is echoed unclamped: requesting a page beyond
// TotalPages yields an empty Items slice.
type Page[D any] struct {
	Items       []D `json:"items"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalItems  int `json:"totalItems"`
	PageSize    int `json:"pageSize"`
}

// WithID carries the path id into update payloads. The id comes from the
// route parameter, not the request body.
type WithID struct {
	ID int64 `json:"-" db:"id"`
}

// SetResourceID implements Identified.
func (w *WithID) SetResourceID(id int64) { w.ID = id }

// ResourceID implements Identified.
func (w *WithID) ResourceID() int64 { return w.ID }

// Identified is satisfied by update payloads embedding WithID.
type Identified interface {
	SetResourceID(int64)
	ResourceID() int64
}
