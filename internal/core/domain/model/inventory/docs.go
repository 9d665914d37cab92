// Package inventory provides the Ingredient aggregate: the stock record of one
// ingredient at one kitchen location.
//
// Key business rules:
//   - Quantity is never negative. Consuming more than is on hand clamps the
//     quantity to zero and reports the part that could not be taken.
//   - An ingredient is low on stock when its quantity is at or below its
//     threshold, which defaults to 10 units when not supplied.
package inventory
