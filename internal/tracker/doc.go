package tracker

// Package tracker implements the goal tracker store: an ordered collection
// of immutable countdown records plus the shared display mode. It owns all
// mutations, validates user input at creation time, and persists an opaque
// JSON snapshot through a local key-value store after every change.
