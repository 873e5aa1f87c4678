// Package kernel provides core domain primitives for the inspection
// scheduling system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - ID: A value object for the integer identifiers assigned by storage
//   - Timezone: A value object converting between canonical UTC instants
//     and the wall-clock representation of the allowed timezones
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
