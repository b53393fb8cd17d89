package host

import "errors"

var (
	ErrExec = errors.New("command execution failed")
)
