// Package services holds the ledger service: the authoritative in-memory
// dataset and every operation that reads or changes it.
//
// Each mutating operation validates its input, builds the next dataset from
// the current one, swaps it in and saves it through the store before
// returning. Operations are serialized by a single mutex and the save runs
// while that mutex is held, so writes never overlap and the last mutation is
// always the last thing written.
//
// A failed save is returned to the caller but the in-memory dataset keeps the
// mutation; Dirty reports that state and Flush retries the write. Nothing is
// retried automatically.
package services
