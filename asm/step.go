package asm

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/Maddiaa0/go-huff/evm"
)

// ContextID identifies the expansion context a mark was created in, as an
// immutable dot-joined path of integers. Marks minted in different
// contexts can never collide even when they share a sub-index.
type ContextID string

// RootContext is the top-level expansion context.
const RootContext ContextID = ""

// Child derives the context for the n-th nested expansion.
func (c ContextID) Child(n int) ContextID {
	if c == RootContext {
		return ContextID(strconv.Itoa(n))
	}
	return c + ContextID("."+strconv.Itoa(n))
}

// Path returns the context's integer components.
func (c ContextID) Path() []int {
	if c == RootContext {
		return nil
	}
	parts := strings.Split(string(c), ".")
	path := make([]int, len(parts))
	for i, p := range parts {
		path[i], _ = strconv.Atoi(p)
	}
	return path
}

// MarkID is the identity of a mark: its expansion context plus a
// sub-index distinguishing marks within one context. It is a comparable
// value usable directly as a map key.
type MarkID struct {
	Context ContextID
	Sub     int
}

func (id MarkID) String() string {
	return fmt.Sprintf("(%s):%d", id.Context, id.Sub)
}

// Step is one entry of the symbolic instruction stream. The concrete
// types are Instruction, Mark, MarkRef, MarkDeltaRef and RawBytes; the
// set is closed so every stage can match it exhaustively.
type Step interface {
	isStep()
}

// Ref is the subset of steps that reference mark positions and therefore
// need a resolved immediate width: MarkRef and MarkDeltaRef.
type Ref interface {
	Step
	isRef()
}

// SolidStep is one entry of the resolved stream, where every reference
// has been replaced by a SizedRef carrying a concrete width.
type SolidStep interface {
	isSolidStep()
}

// Instruction is an opcode with its immediate bytes physically attached.
// Its size is always 1 + len(Immediate).
type Instruction struct {
	Op        evm.Opcode
	Immediate []byte
}

// Mark is a zero-size anchor whose resolved position is the cumulative
// size of every step before it.
type Mark struct {
	ID MarkID
}

// MarkRef resolves to the absolute byte offset of the named mark.
type MarkRef struct {
	ID MarkID
}

// MarkDeltaRef resolves to offset(End) - offset(Start). End must occur
// strictly after Start in the stream.
type MarkDeltaRef struct {
	Start MarkID
	End   MarkID
}

// RawBytes is an opaque literal emitted verbatim.
type RawBytes []byte

// SizedRef is a reference annotated with the byte width its immediate
// will occupy. Its size is 1 + Width (push opcode plus immediate).
type SizedRef struct {
	Ref   Ref
	Width int
}

func (Instruction) isStep()  {}
func (Mark) isStep()         {}
func (MarkRef) isStep()      {}
func (MarkDeltaRef) isStep() {}
func (RawBytes) isStep()     {}

func (MarkRef) isRef()      {}
func (MarkDeltaRef) isRef() {}

func (Instruction) isSolidStep() {}
func (Mark) isSolidStep()        {}
func (RawBytes) isSolidStep()    {}
func (SizedRef) isSolidStep()    {}

// Plain returns an Instruction for an opcode that carries no immediate.
func Plain(op evm.Opcode) Instruction {
	return Instruction{Op: op}
}

// NewInstruction builds an Instruction, checking that the immediate
// length matches what the opcode declares.
func NewInstruction(op evm.Opcode, immediate []byte) (Instruction, error) {
	if want := op.ImmediateLen(); len(immediate) != want {
		return Instruction{}, fmt.Errorf("asm: %s takes %d immediate bytes, got %d", op, want, len(immediate))
	}
	return Instruction{Op: op, Immediate: immediate}, nil
}

// Push builds the PUSH instruction carrying exactly the given bytes.
func Push(data []byte) (Instruction, error) {
	op, err := evm.PushFor(len(data))
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{Op: op, Immediate: data}, nil
}

// PushInt builds the narrowest PUSH for a value, using PUSH0 for zero.
func PushInt(v uint64) Instruction {
	if v == 0 {
		return Plain(evm.OpPush0)
	}
	data := make([]byte, (bits.Len64(v)+7)/8)
	for i := len(data) - 1; i >= 0; i-- {
		data[i] = byte(v)
		v >>= 8
	}
	op, _ := evm.PushFor(len(data))
	return Instruction{Op: op, Immediate: data}
}

// minStaticSize is a step's size ignoring reference immediates; each
// reference counts its push opcode byte only.
func minStaticSize(step Step) int {
	switch s := step.(type) {
	case Instruction:
		return 1 + len(s.Immediate)
	case RawBytes:
		return len(s)
	case MarkRef, MarkDeltaRef:
		return 1
	case Mark:
		return 0
	default:
		panic(fmt.Sprintf("asm: unhandled step %T", step))
	}
}

// solidSize is a resolved step's concrete byte size.
func solidSize(step SolidStep) int {
	switch s := step.(type) {
	case Instruction:
		return 1 + len(s.Immediate)
	case RawBytes:
		return len(s)
	case SizedRef:
		return 1 + s.Width
	case Mark:
		return 0
	default:
		panic(fmt.Sprintf("asm: unhandled solid step %T", step))
	}
}
