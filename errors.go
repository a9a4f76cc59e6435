package debtbook

import "github.com/dmitrijs2005/debtbook/internal/common"

// Sentinel errors. Match them with errors.Is.
var (
	ErrValidation   = common.ErrValidation
	ErrNotFound     = common.ErrNotFound
	ErrStoreRead    = common.ErrStoreRead
	ErrStoreWrite   = common.ErrStoreWrite
	ErrCorruptStore = common.ErrCorruptStore
)

// Typed errors. Inspect them with errors.As.
type (
	ValidationError   = common.ValidationError
	NotFoundError     = common.NotFoundError
	StoreWriteError   = common.StoreWriteError
	CorruptStoreError = common.CorruptStoreError
)
