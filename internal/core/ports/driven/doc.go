// Package driven defines the interfaces that core calls OUT to
// infrastructure: the document store collaborator that moves bytes in
// and out of the engine's snapshot model, and the application
// configuration store.
//
// Core services depend on these interfaces; adapters implement them.
// This package may import the domain package only.
package driven
