// Package services provides the domain services of the fulfillment engine:
// stateless calculations over orders, recipes and stock that don't belong to
// a single aggregate.
//
// The package includes:
//   - RecipeBook: resolves a menu item to its recipe requirements
//   - AvailabilityChecker: decides whether stock covers an order and lists shortages
//   - ReservationApplier: takes an order's ingredients out of stock or puts them back
//   - ServingScaler: recomputes a recipe for an arbitrary number of servings
//
// None of the services perform I/O. Callers load recipes and stock through the
// ports and hand them in, which keeps every calculation safe for concurrent use.
package services
