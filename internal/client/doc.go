// Package client implements the sync client runtime.
//
// It wires configuration, local storage, the server adapter, the sync
// services, and the background workers into a single process lifecycle.
package client
