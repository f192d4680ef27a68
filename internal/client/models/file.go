// Package models defines the client-side file types and their fields.
package models

import (
	"strings"
	"time"
)

// Kind classifies a file by its MIME type for display grouping.
type Kind string

const (
	KindImage    Kind = "image"
	KindVideo    Kind = "video"
	KindAudio    Kind = "audio"
	KindDocument Kind = "document"
	KindOther    Kind = "other"
)

// Metadata keys with meaning to the core. Everything else in the map is
// passed through untouched.
const (
	MetaDescription = "description"
	MetaUploading   = "uploading"
	MetaVisibility  = "visibility"
)

// Variant is a named derived asset of a file (e.g. a thumbnail or a video
// poster frame). URLs for variants are resolved through the file service.
type Variant struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// FileRecord is the normalized client-side representation of one stored
// file. Exactly one FileRecord per ID may exist in a ledger at any time.
type FileRecord struct {
	ID          string
	Filename    string
	ContentType string
	Length      int64
	UploadDate  time.Time
	Metadata    map[string]any
	Variants    []Variant
}

// Kind classifies the record from its MIME type.
func (r FileRecord) Kind() Kind {
	return KindOf(r.ContentType)
}

// KindOf classifies a MIME type string.
func KindOf(contentType string) Kind {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return KindImage
	case strings.HasPrefix(contentType, "video/"):
		return KindVideo
	case strings.HasPrefix(contentType, "audio/"):
		return KindAudio
	case strings.HasPrefix(contentType, "text/"),
		contentType == "application/pdf",
		contentType == "application/msword",
		contentType == "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		contentType == "application/vnd.ms-excel",
		contentType == "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return KindDocument
	default:
		return KindOther
	}
}

// Description returns the description metadata field, if any.
func (r FileRecord) Description() string {
	if r.Metadata == nil {
		return ""
	}
	s, _ := r.Metadata[MetaDescription].(string)
	return s
}

// Uploading reports whether the record is a transient optimistic insert
// whose upload has not resolved yet.
func (r FileRecord) Uploading() bool {
	if r.Metadata == nil {
		return false
	}
	b, _ := r.Metadata[MetaUploading].(bool)
	return b
}

// Variant returns the named variant descriptor, if present.
func (r FileRecord) Variant(name string) (Variant, bool) {
	for _, v := range r.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// Clone returns a deep copy. Ledger snapshots hand out clones so callers
// never alias ledger-owned maps or slices.
func (r FileRecord) Clone() FileRecord {
	out := r
	if r.Metadata != nil {
		out.Metadata = make(map[string]any, len(r.Metadata))
		for k, v := range r.Metadata {
			out.Metadata[k] = v
		}
	}
	if r.Variants != nil {
		out.Variants = make([]Variant, len(r.Variants))
		copy(out.Variants, r.Variants)
	}
	return out
}

// ParseUploadDate parses an ISO-8601 timestamp. Absent or malformed values
// come back as the Unix epoch so they sort before everything real.
func ParseUploadDate(s string) time.Time {
	if s == "" {
		return time.Unix(0, 0).UTC()
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}
