// Package services provides domain services for the dispatch coordinator:
// business logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - PayoutCalculator: computes the reward bonus and the partner/platform
//     commissions from an order total at close time
package services
