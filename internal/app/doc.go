// Package app wires application dependencies for the CLI.
//
// LoadConfig reads Config from the environment (and an optional .env file),
// NewWire turns it into the concrete stores, remote client and services, and
// App builds screens over the wired services for commands to drive.
package app
