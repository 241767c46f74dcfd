// Package services holds the domain logic that spans several order rows or is
// chosen per owner:
//   - PackageFanOut: pickup and delivery applied to every owner's copy of a package
//   - SlugFlowTable: owner-selectable status flows consumed through order.Flow
//
// Services are stateless values and never touch the store.
package services
