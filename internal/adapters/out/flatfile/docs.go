// Package flatfile persists the small operator-maintained lists backing the
// order entry form: the delivery agents and the recently used addresses.
// Both live in plain one-entry-per-line UTF-8 text files, edited by the tool
// and hand-editable in a pinch.
package flatfile
