// Package core contains the app-wide bubbletea model and its contracts.
//
// Allowed here:
// - message contracts between screens and the model, key registry, screen set
// - routing user actions into the order flow and dispatching the share target
// - shared selection state used across screens (Selector)
//
// Not allowed here:
// - concrete screen rendering (package screens)
// - low-level drawing primitives (package widgets)
// - order pricing or guard rules (internal/order, internal/flow)
package core
