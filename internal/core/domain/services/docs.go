// Package services provides domain services for business logic that does
// not naturally belong to a single aggregate root.
//
// The package includes:
//   - WeightAllocator: proportions an appointment's measured weight across
//     its category line items for staging inventory postings
//
// Domain services coordinate between aggregates following Domain-Driven
// Design principles.
package services
