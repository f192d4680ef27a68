// Package cli implements the interactive filedeck shell: a small REPL over
// the file service with listing, pagination, batch upload/delete,
// description and visibility edits, entity linking, download-URL resolution,
// and a justified gallery preview.
//
// Command handlers log their own errors and never crash the loop; the only
// blocking prompt is the confirmation requested before destructive actions.
package cli
