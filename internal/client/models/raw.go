package models

// RawFile is the wire shape the file service returns for one file. The core
// never stores RawFile; it is normalized into a FileRecord at the boundary.
type RawFile struct {
	ID          string         `json:"id"`
	Filename    string         `json:"filename"`
	ContentType string         `json:"contentType"`
	Length      int64          `json:"length"`
	UploadDate  string         `json:"uploadDate"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Variants    []Variant      `json:"variants,omitempty"`
}

// Normalize converts the wire shape into a FileRecord. The metadata map is
// copied so later ledger mutations never write through to decoder-owned
// state.
func (r RawFile) Normalize() FileRecord {
	md := make(map[string]any, len(r.Metadata))
	for k, v := range r.Metadata {
		md[k] = v
	}
	variants := make([]Variant, len(r.Variants))
	copy(variants, r.Variants)

	return FileRecord{
		ID:          r.ID,
		Filename:    r.Filename,
		ContentType: r.ContentType,
		Length:      r.Length,
		UploadDate:  ParseUploadDate(r.UploadDate),
		Metadata:    md,
		Variants:    variants,
	}
}

// NormalizeAll converts a page of raw files preserving order.
func NormalizeAll(raw []RawFile) []FileRecord {
	out := make([]FileRecord, len(raw))
	for i, r := range raw {
		out[i] = r.Normalize()
	}
	return out
}
