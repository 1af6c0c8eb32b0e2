package model

// Package model defines domain data structures shared by the controllers, the
// backend client and the UI: summarization requests, results, history entries,
// the view state and the per-controller request lifecycle.
