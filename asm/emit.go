package asm

import (
	"fmt"

	"github.com/Maddiaa0/go-huff/evm"
)

// ToBytecode projects a fully shrunk stream to its concrete bytes.
// Instructions emit their opcode and immediate, raw bytes pass through,
// marks vanish, and each sized reference becomes a PUSH of its resolved
// value encoded big-endian in exactly the reference's width.
func ToBytecode(steps []SolidStep) ([]byte, error) {
	offsets := MarkOffsets(steps)
	code := make([]byte, 0, CodeSize(steps))

	for i, step := range steps {
		switch s := step.(type) {
		case Instruction:
			code = append(code, byte(s.Op))
			code = append(code, s.Immediate...)
		case Mark:
			// no bytes
		case RawBytes:
			code = append(code, s...)
		case SizedRef:
			value := refValue(s.Ref, offsets)
			if value < 0 || NeededBytes(value) > s.Width {
				return nil, &InternalError{Step: i, Msg: fmt.Sprintf("offset %d does not fit in %d bytes", value, s.Width)}
			}
			op, err := evm.PushFor(s.Width)
			if err != nil {
				return nil, &InternalError{Step: i, Msg: err.Error()}
			}
			code = append(code, byte(op))
			code = appendBigEndian(code, uint64(value), s.Width)
		default:
			return nil, &InternalError{Step: i, Msg: fmt.Sprintf("unrecognized step %T", step)}
		}
	}
	return code, nil
}

// appendBigEndian appends v as a fixed-width big-endian integer.
func appendBigEndian(dst []byte, v uint64, width int) []byte {
	for shift := 8 * (width - 1); shift >= 0; shift -= 8 {
		dst = append(dst, byte(v>>shift))
	}
	return dst
}
