// Package order provides domain entities and business logic for order
// lifecycle management in the dispatch coordinator. It implements the Order
// aggregate root with its state machine and handoff-code gating.
//
// The package includes:
//   - Order: The aggregate root managing identity, line items, the computed
//     total, partner assignment and the handoff code
//   - Item: An immutable line item value object
//   - Status: A state machine enforcing Pending -> Accepted -> Delivered
//
// Key business rules:
//   - Orders must have a valid identifier, a customer, and at least one item
//   - The total amount is computed once at creation and never recomputed
//   - Exactly one partner may claim an order; a 4-digit handoff code is
//     generated at acceptance and cleared after delivery
//   - Delivery requires the handoff code to match exactly
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
