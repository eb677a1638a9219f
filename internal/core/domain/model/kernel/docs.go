// Package kernel provides core domain primitives shared across the recycling
// workflow model, following Domain-Driven Design principles.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Weight: A value object representing a mass in kilograms
//   - ConstructorGuard: A defensive programming pattern to ensure proper object construction
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe,
// making them suitable for concurrent use.
package kernel
