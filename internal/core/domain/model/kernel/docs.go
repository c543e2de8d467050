// Package kernel provides the value objects shared by the delivery time domain.
//
// The package includes:
//   - UUID: identifier of rules and orders
//   - TimeOfDay: a wall-clock time written as HH:mm, compared through its
//     minutes-since-midnight projection
//   - Date: a calendar date without time-of-day or zone
//
// All values are immutable. TimeOfDay and Date carry a constructor guard so that an
// absent value (zero value) is never confused with midnight or year one.
package kernel
