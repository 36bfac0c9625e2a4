package charstring

import (
	"errors"
	"fmt"

	"github.com/npillmayer/csopt/core"
)

// Errors reported by the rewrites. ErrArity and ErrTruncatedMask come
// wrapped into a *StructuralError, all of them into a coded core error.
// Use errors.Is to test for them.
var (
	ErrArity         = errors.New("wrong number of arguments")
	ErrTruncatedMask = errors.New("mask operator without payload")
	ErrConfig        = errors.New("invalid option")
)

// StructuralError locates a defect within a program or command list.
type StructuralError struct {
	Op    Operator // offending operator
	Pos   int      // token position (tokenizer) or command index (rewrites)
	Nargs int      // number of arguments found
	Err   error    // ErrArity or ErrTruncatedMask
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s at %d (%d args): %v", e.Op, e.Pos, e.Nargs, e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// errCharstring produces user level errors for malformed charstrings.
func errCharstring(err error) error {
	return core.WrapError(err, core.EINVALID, "Type 2 charstring")
}

func errOption(format string, v ...interface{}) error {
	return core.WrapError(ErrConfig, core.ECONFIG, format, v...)
}
