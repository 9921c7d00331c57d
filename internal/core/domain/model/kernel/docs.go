// Package kernel provides core domain primitives for the dispatch coordinator.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison
//   - Role: A closed enumeration of caller roles (Customer, Partner, Admin),
//     parsed exactly once at the boundary and never re-parsed downstream
//
// These primitives are immutable and thread-safe, making them suitable for
// concurrent use.
package kernel
