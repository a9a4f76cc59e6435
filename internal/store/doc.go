// Package store persists the whole debtbook dataset as a single record.
//
// # Overview
//
// Store is the only component that touches durable storage. It has no
// business logic: Load returns what was last saved and Save replaces it.
//
// Two records are written per save, in one SQLite transaction:
//
//	<key>         JSON array of people (see codec.go)
//	<key>.format  dataset format version, currently "1"
//
// so a reader sees either the previous snapshot or the new one, never a mix.
//
// # Errors
//
//   - first run (no record) is not an error; Load returns an empty dataset
//   - undecodable or invalid bytes: *common.CorruptStoreError. This covers
//     trailing data after the array, amounts that are not bare positive JSON
//     numbers within models.AmountInRange (a quoted "50" is rejected), and
//     empty names, descriptions or dates
//   - failed writes: *common.StoreWriteError
//   - failed reads: wraps common.ErrStoreRead
//
// Corrupt data is never discarded or overwritten by Load; callers decide
// whether to surface the error or start from an empty dataset.
package store
