// Package services provides the domain services of delivery-time estimation.
// They hold the logic that spans several rules, or a rule and the clock, and so
// belongs to no single aggregate.
//
// Services:
//   - RuleMatcher: orders rules by priority and picks the first whose window covers an order time
//   - DeliveryDateResolver: turns a matched rule and an evaluation instant into a delivery timestamp
//
// Both services are stateless and deterministic: the same rules and inputs always
// give the same answer.
package services
