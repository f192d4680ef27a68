// Package ledger provides the in-memory ordered collection of FileRecords
// backing the client's file list.
//
// # Overview
//
// The Ledger supports bulk replace, merge-append (pagination), prepend
// insert (optimistic uploads), keyed update, and keyed remove. It is the
// only shared mutable state in the client: every user-initiated action
// mutates it synchronously at the moment the action starts (optimistic) and
// again when the asynchronous result resolves (confirm or rollback).
//
// # Invariants
//
//   - Exactly one record per id at any time.
//   - Operations apply in call order.
//   - Snapshot accessors return deep copies; callers never alias
//     ledger-owned state.
//
// A Ledger is owned by one screen/session. It carries a mutex so the
// interleaved completions of concurrent uploads stay safe, but it makes no
// broader concurrency promises.
//
// Typical Usage
//
//	led := ledger.New()
//	led.SetFiles(page, false)
//	led.AddFile(optimistic, true)
//	led.RemoveFile(tempID)
//	led.AddFile(confirmed, true)
//	files := led.Snapshot()
package ledger
