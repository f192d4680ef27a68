// Package client talks to the external HTTP file service.
//
// The service owns storage, dedup, and variant generation; this package only
// ships the capability contract the core needs: listing, raw upload, delete,
// visibility and metadata updates, entity linking, and download-URL
// resolution. Transport failures and non-2xx responses are mapped onto the
// structured error kinds in internal/common, so no caller ever matches on
// message text.
package client
