// Package state provides the concurrency-safe catalog snapshot store shared
// by the background loader and the UI.
package state
