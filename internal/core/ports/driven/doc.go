// Package driven defines the driven port interfaces (secondary ports).
// These are implemented by adapters for external infrastructure: the remote
// knowledge-base API, configuration storage and credential lookup.
package driven
