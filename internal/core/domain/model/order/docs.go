// Package order contains the Order aggregate root, its line items, and the
// status lifecycle.
//
// Order is the central aggregate of the system: it owns its line items and a
// derived cached total, enforces the status state machine, and records the
// one-shot rider assignment. All three concerns mutate through aggregate
// methods only, so every committed order satisfies:
//
//   - totalAmount == Σ(quantity × unit price) over current items
//   - no transition ever leaves Delivered or Cancelled
//   - the rider reference goes from absent to present at most once
package order
