// Package screens contains the Start, Flavor and Summary screens.
//
// Allowed here:
// - screen implementations that satisfy core.Screen
// - per-screen presentation and cursor state
//
// Not allowed here:
// - order state mutation, guard checks, or navigation; screens only emit
//   action messages
// - low-level widget/layout primitives
package screens
