// Package common contains shared constants and errors used across the
// debtbook store and service layers.
package common

// DefaultRecordKey is the key under which the whole dataset is persisted.
// It matches the record name used by earlier releases of the app.
const DefaultRecordKey = "people-data"

// FormatSuffix is appended to the record key to form the key that holds the
// format version of the persisted dataset.
const FormatSuffix = ".format"

// FormatVersion is the only dataset format this build can read and write.
const FormatVersion = "1"
