package asm

import "fmt"

// DuplicateMarkError reports two marks sharing one identity. Step is the
// index of the second definition.
type DuplicateMarkError struct {
	Step int
	ID   MarkID
}

func (e *DuplicateMarkError) Error() string {
	return fmt.Sprintf("asm: step #%d redefines mark %s", e.Step, e.ID)
}

// InvalidRefError reports a reference that names a missing mark, or a
// delta reference whose end mark does not strictly follow its start.
type InvalidRefError struct {
	Step   int
	ID     MarkID
	Reason string
}

func (e *InvalidRefError) Error() string {
	return fmt.Sprintf("asm: step #%d has invalid reference to %s: %s", e.Step, e.ID, e.Reason)
}

// InternalError reports an inconsistency that validation and
// solidification should have made unreachable, or a stream too large for
// the offset-width ceiling. It indicates an assembler bug or a
// pathological input, never a recoverable condition.
type InternalError struct {
	Step int
	Msg  string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("asm: internal error at step #%d: %s", e.Step, e.Msg)
}
