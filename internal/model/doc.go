package model

// Package model defines domain data structures used across the app: goal
// trackers, the progress derivation core, and the display mode enum.
// Everything here is pure data and pure functions; derived countdown state
// is recomputed from (tracker, now) on every tick, never stored.
