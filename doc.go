// Package debtbook keeps per-person ledgers of money owed and owed-to, with a
// derived net balance for each person, persisted in a local SQLite database.
//
// Debtbook is a library. A UI or other caller opens a Book and calls its
// operations; every successful mutation is written to disk before the call
// returns.
//
// # Quick Start
//
//	cfg, err := debtbook.LoadConfig("", ".env")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	book, err := debtbook.Open(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer book.Close()
//
//	d, err := book.AddPerson(ctx, "Ahmed")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ahmed := d.People[0].ID
//
//	_, err = book.AddDebt(ctx, ahmed, debtbook.EntryInput{
//	    Description: "Lunch",
//	    Amount:      "50",
//	    Date:        "2024-01-01",
//	})
//
//	totals, err := book.TotalsFor(ctx, ahmed)
//	// totals.Net == 50, totals.Status == debtbook.StatusTheyOwe
//
// # Errors
//
// Bad input yields a *ValidationError and leaves the data untouched. Operations
// on a person that does not exist yield a *NotFoundError, except removals,
// which are no-ops. A failed write yields a *StoreWriteError; the change is
// kept in memory and Flush retries the write.
package debtbook
