// Package models defines the core domain models for the fee splitter.
//
// # Models
//
//   - Player: a roster member tagged with a payment category
//   - Match: an immutable record of one match's fee split
//   - FeeSplit: the aggregate numbers computed once per match
//   - Payment: one player's line in a match's payment ledger
//   - ExportRecord: archival copy of an exported match summary
//
// # Design Principles
//
// 1. **One owner**: the roster and history are held by the application's
// top-level state (the store); models carry no back-references.
// 2. **Immutable snapshots**: a Match's FeeSplit and payment amounts are fixed
// at creation and never recomputed, even if the roster changes later. Only
// the Paid/PaidBy settlement flags on a Payment may change afterward.
// 3. **Avoid circular references**: relationships use ID strings, not pointers.
// A player deleted from the roster leaves dangling IDs in old matches; that is
// tolerated, not an error.
package models
