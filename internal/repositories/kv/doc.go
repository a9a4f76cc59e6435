// Package kv provides the local key/value persistence used by the dataset
// store.
//
// # Data Model
//
// A single table holds one row per key:
//
//	records(key TEXT PRIMARY KEY, value BLOB NOT NULL, updated_at INTEGER NOT NULL)
//
// updated_at is the Unix time in milliseconds of the last Set.
//
// # Transactions
//
// SQLiteRepository works over a dbx.DBTX, so the same repository code runs
// against *sql.DB for single statements or *sql.Tx when several keys must
// change together:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    return kv.NewSQLiteRepository(tx).Set(ctx, key, value)
//	})
package kv
