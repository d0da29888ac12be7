// Package models defines the domain models splitdesk exchanges with the
// expense-split backend.
//
// # Identity
//
// Every entity is identified by the backend's numeric id (int64). The client
// never invents ids; zero means "not assigned".
//
// # Money
//
// All amounts are shopspring/decimal values. The backend stores money as
// NUMERIC(10,2) and serialises it as JSON numbers; decimal.Decimal decodes
// those without going through float64.
//
// # Balances
//
// A Balance's NetBalance is positive when the member is owed money (creditor)
// and negative when the member owes money (debtor). Balances are always fetched
// fresh from the backend and never cached.
package models
