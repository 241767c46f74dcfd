// Package order implements the Order aggregate and its status lifecycle.
//
// The package includes:
//   - Order: one owner's record of a physical package
//   - Status: the numeric lifecycle code (0 intake to 5 delivered)
//   - Event: the append-only history entry recorded by every status change
//   - Flow: the strategy consumed by owner-configurable status flows
//
// Key business rules:
//   - Orders start in Intake (marketplace sweep) or SelfAssigned (direct registration)
//   - Intake -> Triaged -> ProviderAssigned | DriverAssigned is applied per row
//   - pickup and delivery of a package move every owner's row; see services.PackageFanOut
//   - Delivered is terminal
//   - each status change records exactly one Event scoped to the row's owner
package order
