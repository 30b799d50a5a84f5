package evm

import (
	"fmt"
	"strings"
)

// Disassemble returns a human-readable listing of EVM bytecode, one
// instruction per line with its byte offset. Truncated push immediates
// and unassigned opcode bytes are annotated rather than rejected, so the
// listing is usable on arbitrary code.
func Disassemble(code []byte) string {
	var sb strings.Builder

	offset := 0
	for offset < len(code) {
		line, instrLen := disassembleInstruction(code, offset)
		sb.WriteString(fmt.Sprintf("%04X  %s\n", offset, line))
		offset += instrLen
	}

	return sb.String()
}

// disassembleInstruction formats a single instruction at the given
// offset and returns the formatted string plus the instruction length.
func disassembleInstruction(code []byte, offset int) (string, int) {
	op := Opcode(code[offset])
	if !op.Defined() {
		return fmt.Sprintf("DATA 0x%02X", byte(op)), 1
	}

	immLen := op.ImmediateLen()
	if immLen == 0 {
		return op.String(), 1
	}

	end := offset + 1 + immLen
	if end > len(code) {
		imm := code[offset+1:]
		return fmt.Sprintf("%s 0x%X ; truncated, %d of %d bytes", op, imm, len(imm), immLen), 1 + len(imm)
	}
	return fmt.Sprintf("%s 0x%X", op, code[offset+1:end]), 1 + immLen
}
