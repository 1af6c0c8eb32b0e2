package api

// Package api is the typed HTTP client for the summarization backend:
// health, text summarization, file upload, history listing and fetching a
// stored summary. Failures are classified as TransportError or
// ApplicationError so callers can report them differently.
