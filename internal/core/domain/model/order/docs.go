// Package order provides the Order aggregate of the kitchen and the status
// state machine that drives it.
//
// The package includes:
//   - Order: the aggregate root holding items, chef assignment and the reserved flag
//   - Item: a line of the order (menu item, quantity, unit price)
//   - Status: a closed enum of the five lifecycle states with its transition table
//   - Action: the caller-facing verbs that request a transition
//
// Key business rules:
//   - Orders are created pending and must contain at least one item
//   - pending -> accepted | cancelled
//   - accepted -> in_progress | pending (revert)
//   - in_progress -> completed | pending (revert)
//   - completed and cancelled are terminal
//   - Reverting clears the assigned chef
//   - Reserved records whether the order's ingredients are currently taken out
//     of stock, so releasing stock is only possible after a reservation
package order
