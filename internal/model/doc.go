package model

// Package model defines domain data structures used across the app: tracks,
// control roles, layout rectangles, and playback status enums. Structures are
// plain values so the UI and audio layers can share them without coupling.
