// Package widgets models the visual layout of a datadog screenboard: a board
// holds an ordered list of typed widgets, and metric widgets carry conditional
// formatting rules that recolor them based on the current value.
//
// The widget set is closed. Decoding a board dispatches on each widget's
// "type" tag and fails on tags outside the set. Widget order in a board is
// meaningful (render order) and survives serialization round-trips exactly.
package widgets
