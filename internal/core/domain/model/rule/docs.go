// Package rule provides the Delivery Rule aggregate: a named, prioritized time window
// mapped to a delivery-date policy and a delivery clock time.
//
// The package includes:
//   - Rule: the aggregate root, matched against order times by the domain services
//   - Definition: the full set of editable fields; a rule is replaced wholesale on edit
//   - RawDefinition / ParseDefinition: validation of wire text into a Definition
//   - DateMode: today, tomorrow or custom
//
// Key business rules:
//   - name, startTime, endTime, deliveryDateMode and deliveryTime are required
//   - times are HH:mm; the window [startTime, endTime] is inclusive on both ends
//   - startTime must not be after endTime (windows never cross midnight)
//   - customDeliveryDate is required for, and only meaningful with, the custom mode
//   - name uniqueness is enforced by the rule store, not here
package rule
