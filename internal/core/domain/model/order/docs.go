// Package order provides the Order aggregate: a placed order whose delivery timestamp
// is either estimated from the delivery-time rules or set manually by an operator.
//
// The package includes:
//   - Order: The aggregate root holding placement instant, delivery time and its origin
//   - Status: A small state machine, Created -> Scheduled
//
// Key business rules:
//   - Orders must have a valid unique identifier and placement instant
//   - Rule estimates only stamp orders that have no delivery time yet
//   - Manual overrides are accepted in any status and are never second-guessed by rules
//   - Deleting or editing a rule does not touch delivery times already stamped
package order
