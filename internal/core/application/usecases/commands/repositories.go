// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: each command is a
// constructor-validated value, each handler validates the command and talks
// to the ports it needs.
package commands

// AddressRecorder receives delivery addresses as orders are created, feeding
// the address autocompletion history.
type AddressRecorder interface {
	Record(address string) error
}
