// Package kernel holds the value objects shared by every aggregate of the
// tracking domain:
//   - UUID: identity of orders and order events
//   - ID: references to owners, users and clients managed by collaborating subsystems
//   - PackageCode: the cross-tenant identifier of a physical package
//   - Address: delivery street and normalised CEP
//
// Value objects are immutable and carry a guard.ConstructorGuard so that a zero
// value fails Validate.
package kernel
