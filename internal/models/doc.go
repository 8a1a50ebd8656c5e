// Package models defines the core domain models for godutch.
//
// # Go-dutch
//
//   - Participant: one person and the amount they paid toward a shared expense
//   - Transfer: one payment that moves a debtor toward the equal share
//
// # Tip/tax sheets
//
//   - LineItem: one row of a tip/tax table, identified by a stable ID
//   - Sheet: a titled table of line items plus the pooled tax and tip amounts
//
// Derived values (per-item shares, totals, balances) are never stored on these models.
// They are recomputed by the calculator package on every read.
//
// # Design Principles
//
// 1. **Caller owns the list**: models are plain values, mutations return new copies
// 2. **Stable identity**: LineItem.ID never changes and is never reused within a sheet
// 3. **No sentinel rows**: aggregate totals live in their own struct, not in Items
package models
