// Package app contains the core application logic. It wires the catalog to
// a host namespace at startup and runs one command against the result,
// decoupled from any specific entrypoint like a CLI.
package app
