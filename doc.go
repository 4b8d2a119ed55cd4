// Package superstock implements a point-in-time inventory ledger for
// perishable goods.
//
// Purchases and sales are recorded in two append-only logs, and every
// report is a temporal query against them: what is in stock as of a date,
// what sold within a period, what profit a period realized. Time is a
// simulated, explicitly-advanceable clock persisted between invocations,
// which makes expiry and period reports deterministic.
//
// The command-line tool lives in the super directory; the subcommands are
// implemented in the cmd package.
package superstock
