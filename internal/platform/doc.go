package platform

// Package platform contains OS integration: resolving the user's downloads
// directory and writing saved summaries to disk.
