// Package textobject provides a cursor-addressed, mutable text buffer
// with modal-editor motions and edit primitives.
//
// A buffer is created in a Readonly state that supports queries and
// motions only; WithWrite upgrades it, one way, to a Write state that
// adds edits. Content is measured in unicode scalar values throughout,
// and every operation derives its absolute offset from the caller's
// cursor against the buffer's current content, so positions stay
// correct across edits without any caching.
//
// The package never owns a cursor. Motions return Position values and
// counting edits return removal counts; applying them is the caller's
// job.
package textobject
