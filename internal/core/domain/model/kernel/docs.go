// Package kernel provides the shared value objects of the fulfillment domain.
//
// The package includes:
//   - UUID: identifier of orders, recipes, ingredients and chefs
//   - Quantity: a non-negative decimal amount of an ingredient
//
// Both types are immutable and safe for concurrent use.
package kernel
