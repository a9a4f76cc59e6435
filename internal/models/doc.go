// Package models defines the debtbook domain model.
//
// # Data Model
//
// A Dataset is an ordered list of Person values. Each Person owns two ordered
// lists of Entry values: Debts (money the person owes the ledger owner) and
// Credits (money the owner owes the person). Entries exist only inside their
// Person; removing a Person removes its entries with it.
//
// Order is insertion order everywhere. Nothing here sorts by amount or date.
//
// # Derived Values
//
// Totals are computed on demand and never stored:
//
//	debts   = sum(Debts[i].Amount)
//	credits = sum(Credits[i].Amount)
//	net     = debts - credits
//
// A positive net means the person owes the owner (StatusTheyOwe), a negative
// net means the owner owes the person (StatusOwnerOwes), zero is settled.
//
// # Values, Not Pointers
//
// Datasets are passed by value and copied with Clone before they leave the
// service, so callers can never alias the authoritative state.
package models
