// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, radio groups, buttons,
//   stacks, popup overlay compositor)
//
// Not allowed here:
// - key handling, order state, guard logic, or screen routing
package widgets
