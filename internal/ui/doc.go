// Package ui contains the Fyne desktop front end of the summarizer. It builds
// the widgets and hands them to the controllers in package app, which decide
// what the widgets show. All UI strings are localized via Localization.
package ui
