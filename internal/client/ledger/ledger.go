package ledger

import (
	"sync"
	"time"

	"github.com/filedeck/filedeck/internal/client/models"
)

// Ledger is the ordered, id-unique collection of FileRecords visible to the
// UI. Construct with New; the zero value is not usable.
type Ledger struct {
	mu    sync.Mutex
	order []string
	byID  map[string]models.FileRecord
}

func New() *Ledger {
	return &Ledger{byID: make(map[string]models.FileRecord)}
}

// Patch describes a shallow update to a record. Nil pointer fields are left
// untouched. Metadata entries are merged key by key; an entry with a nil
// value deletes that key. A non-nil Variants slice replaces the record's
// variants wholesale.
type Patch struct {
	Filename    *string
	ContentType *string
	Length      *int64
	UploadDate  *time.Time
	Metadata    map[string]any
	Variants    []models.Variant
}

// SetFiles replaces the ledger contents (merge=false) or appends records not
// already present by id (merge=true), preserving order in both cases.
// Merge-append is idempotent: re-applying the same page changes nothing.
func (l *Ledger) SetFiles(records []models.FileRecord, merge bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !merge {
		l.order = l.order[:0]
		l.byID = make(map[string]models.FileRecord, len(records))
	}

	for _, rec := range records {
		if _, ok := l.byID[rec.ID]; ok {
			continue
		}
		l.order = append(l.order, rec.ID)
		l.byID[rec.ID] = rec.Clone()
	}
}

// AddFile inserts one record at the head (prepend=true) or tail. An id
// collision is a silent no-op and returns false; callers are responsible for
// using fresh temporary ids.
func (l *Ledger) AddFile(rec models.FileRecord, prepend bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.byID[rec.ID]; ok {
		return false
	}

	if prepend {
		l.order = append([]string{rec.ID}, l.order...)
	} else {
		l.order = append(l.order, rec.ID)
	}
	l.byID[rec.ID] = rec.Clone()
	return true
}

// UpdateFile shallow-merges patch into the record with the given id.
// Returns false (no-op) when the id is absent.
func (l *Ledger) UpdateFile(id string, patch Patch) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.byID[id]
	if !ok {
		return false
	}

	if patch.Filename != nil {
		rec.Filename = *patch.Filename
	}
	if patch.ContentType != nil {
		rec.ContentType = *patch.ContentType
	}
	if patch.Length != nil {
		rec.Length = *patch.Length
	}
	if patch.UploadDate != nil {
		rec.UploadDate = *patch.UploadDate
	}
	if patch.Variants != nil {
		rec.Variants = make([]models.Variant, len(patch.Variants))
		copy(rec.Variants, patch.Variants)
	}
	if len(patch.Metadata) > 0 {
		if rec.Metadata == nil {
			rec.Metadata = make(map[string]any, len(patch.Metadata))
		}
		for k, v := range patch.Metadata {
			if v == nil {
				delete(rec.Metadata, k)
				continue
			}
			rec.Metadata[k] = v
		}
	}

	l.byID[id] = rec
	return true
}

// TakeFile removes the record with the given id and returns it together with
// the position it held in display order, so a caller can reinsert it in the
// same place if a confirming server call fails.
func (l *Ledger) TakeFile(id string) (models.FileRecord, int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.byID[id]
	if !ok {
		return models.FileRecord{}, 0, false
	}

	pos := 0
	for i, existing := range l.order {
		if existing == id {
			pos = i
			break
		}
	}
	delete(l.byID, id)
	l.order = append(l.order[:pos], l.order[pos+1:]...)
	return rec, pos, true
}

// InsertFile inserts one record at the given position in display order,
// clamping the position to the current bounds. An id collision is a silent
// no-op and returns false.
func (l *Ledger) InsertFile(rec models.FileRecord, pos int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.byID[rec.ID]; ok {
		return false
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(l.order) {
		pos = len(l.order)
	}

	l.order = append(l.order, "")
	copy(l.order[pos+1:], l.order[pos:])
	l.order[pos] = rec.ID
	l.byID[rec.ID] = rec.Clone()
	return true
}

// RemoveFile deletes the record with the given id. Returns false (no-op)
// when the id is absent.
func (l *Ledger) RemoveFile(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.byID[id]; !ok {
		return false
	}

	delete(l.byID, id)
	for i, existing := range l.order {
		if existing == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns a copy of the record with the given id.
func (l *Ledger) Get(id string) (models.FileRecord, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.byID[id]
	if !ok {
		return models.FileRecord{}, false
	}
	return rec.Clone(), true
}

// Snapshot returns a copy of all records in ledger order.
func (l *Ledger) Snapshot() []models.FileRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.FileRecord, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.byID[id].Clone())
	}
	return out
}

// Images returns a copy of the image records in ledger order, the input the
// justified layout works from.
func (l *Ledger) Images() []models.FileRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.FileRecord, 0, len(l.order))
	for _, id := range l.order {
		rec := l.byID[id]
		if rec.Kind() == models.KindImage {
			out = append(out, rec.Clone())
		}
	}
	return out
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.order)
}
