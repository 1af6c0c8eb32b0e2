package app

// Package app holds the toolkit-neutral controllers of the summarizer client:
// the notifier, the result presenter, the text and upload request controllers,
// the history loader, navigation and the startup health check. Widgets are
// reached only through the small interfaces in interfaces.go; every UI
// mutation goes through the injected Dispatcher.
