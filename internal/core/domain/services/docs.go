// Package services provides domain services that orchestrate business
// operations across multiple aggregates in the food delivery system. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - RiderDispatcher: A domain service for selecting and assigning riders
//     to unassigned orders
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services
