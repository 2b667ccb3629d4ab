package cpu

import "errors"

// ErrUnknownOpcode is returned by Step when the fetched instruction word's
// opcode byte has no entry in the dispatch table.
var ErrUnknownOpcode = errors.New("cpu: unknown opcode")
