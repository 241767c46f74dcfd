// Package party holds read models of the records the tracking core looks up
// but does not own: users, clients and owners (tenants). They are loaded
// through ports.DirectoryRepository and never mutated here.
//
// The package also owns the assignment eligibility rules:
//   - a driver assignment needs an ENTREGADOR of the acting owner
//   - a provider assignment needs a PRESTADOR client of the acting owner
//
// A user or client of another owner is reported as errs.ObjectNotFoundError.
package party
