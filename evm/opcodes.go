// Package evm defines the EVM opcode table used by the assembler: opcode
// byte values, mnemonic names, and the immediate-width rules for the PUSH
// family. Opcodes are organized into ranges by category, matching the
// numbering of the Ethereum yellow paper.
package evm

import (
	"fmt"
	"strconv"
	"strings"
)

// Opcode represents a single EVM instruction byte.
type Opcode byte

const (
	// ========================================================================
	// Arithmetic (0x00-0x0B)
	// ========================================================================

	OpStop       Opcode = 0x00
	OpAdd        Opcode = 0x01
	OpMul        Opcode = 0x02
	OpSub        Opcode = 0x03
	OpDiv        Opcode = 0x04
	OpSDiv       Opcode = 0x05
	OpMod        Opcode = 0x06
	OpSMod       Opcode = 0x07
	OpAddMod     Opcode = 0x08
	OpMulMod     Opcode = 0x09
	OpExp        Opcode = 0x0A
	OpSignExtend Opcode = 0x0B

	// ========================================================================
	// Comparison and bitwise logic (0x10-0x1D)
	// ========================================================================

	OpLt     Opcode = 0x10
	OpGt     Opcode = 0x11
	OpSLt    Opcode = 0x12
	OpSGt    Opcode = 0x13
	OpEq     Opcode = 0x14
	OpIsZero Opcode = 0x15
	OpAnd    Opcode = 0x16
	OpOr     Opcode = 0x17
	OpXor    Opcode = 0x18
	OpNot    Opcode = 0x19
	OpByte   Opcode = 0x1A
	OpShl    Opcode = 0x1B
	OpShr    Opcode = 0x1C
	OpSar    Opcode = 0x1D

	// ========================================================================
	// Hashing (0x20)
	// ========================================================================

	OpKeccak256 Opcode = 0x20

	// ========================================================================
	// Environment (0x30-0x48)
	// ========================================================================

	OpAddress        Opcode = 0x30
	OpBalance        Opcode = 0x31
	OpOrigin         Opcode = 0x32
	OpCaller         Opcode = 0x33
	OpCallValue      Opcode = 0x34
	OpCallDataLoad   Opcode = 0x35
	OpCallDataSize   Opcode = 0x36
	OpCallDataCopy   Opcode = 0x37
	OpCodeSize       Opcode = 0x38
	OpCodeCopy       Opcode = 0x39
	OpGasPrice       Opcode = 0x3A
	OpExtCodeSize    Opcode = 0x3B
	OpExtCodeCopy    Opcode = 0x3C
	OpReturnDataSize Opcode = 0x3D
	OpReturnDataCopy Opcode = 0x3E
	OpExtCodeHash    Opcode = 0x3F

	OpBlockHash   Opcode = 0x40
	OpCoinbase    Opcode = 0x41
	OpTimestamp   Opcode = 0x42
	OpNumber      Opcode = 0x43
	OpPrevRandao  Opcode = 0x44
	OpGasLimit    Opcode = 0x45
	OpChainID     Opcode = 0x46
	OpSelfBalance Opcode = 0x47
	OpBaseFee     Opcode = 0x48

	// ========================================================================
	// Stack, memory, storage and flow (0x50-0x5F)
	// ========================================================================

	OpPop      Opcode = 0x50
	OpMLoad    Opcode = 0x51
	OpMStore   Opcode = 0x52
	OpMStore8  Opcode = 0x53
	OpSLoad    Opcode = 0x54
	OpSStore   Opcode = 0x55
	OpJump     Opcode = 0x56
	OpJumpI    Opcode = 0x57
	OpPC       Opcode = 0x58
	OpMSize    Opcode = 0x59
	OpGas      Opcode = 0x5A
	OpJumpDest Opcode = 0x5B

	// ========================================================================
	// Push operations (0x5F-0x7F)
	// ========================================================================

	OpPush0  Opcode = 0x5F
	OpPush1  Opcode = 0x60
	OpPush32 Opcode = 0x7F

	// ========================================================================
	// Duplication and exchange (0x80-0x9F)
	// ========================================================================

	OpDup1   Opcode = 0x80
	OpDup16  Opcode = 0x8F
	OpSwap1  Opcode = 0x90
	OpSwap16 Opcode = 0x9F

	// ========================================================================
	// Logging (0xA0-0xA4)
	// ========================================================================

	OpLog0 Opcode = 0xA0
	OpLog4 Opcode = 0xA4

	// ========================================================================
	// System (0xF0-0xFF)
	// ========================================================================

	OpCreate       Opcode = 0xF0
	OpCall         Opcode = 0xF1
	OpCallCode     Opcode = 0xF2
	OpReturn       Opcode = 0xF3
	OpDelegateCall Opcode = 0xF4
	OpCreate2      Opcode = 0xF5
	OpStaticCall   Opcode = 0xFA
	OpRevert       Opcode = 0xFD
	OpInvalid      Opcode = 0xFE
	OpSelfDestruct Opcode = 0xFF
)

// opcodeNames maps opcodes to their canonical lowercase mnemonics.
// PUSH/DUP/SWAP/LOG families are filled in by init.
var opcodeNames = map[Opcode]string{
	OpStop:       "stop",
	OpAdd:        "add",
	OpMul:        "mul",
	OpSub:        "sub",
	OpDiv:        "div",
	OpSDiv:       "sdiv",
	OpMod:        "mod",
	OpSMod:       "smod",
	OpAddMod:     "addmod",
	OpMulMod:     "mulmod",
	OpExp:        "exp",
	OpSignExtend: "signextend",

	OpLt:     "lt",
	OpGt:     "gt",
	OpSLt:    "slt",
	OpSGt:    "sgt",
	OpEq:     "eq",
	OpIsZero: "iszero",
	OpAnd:    "and",
	OpOr:     "or",
	OpXor:    "xor",
	OpNot:    "not",
	OpByte:   "byte",
	OpShl:    "shl",
	OpShr:    "shr",
	OpSar:    "sar",

	OpKeccak256: "keccak256",

	OpAddress:        "address",
	OpBalance:        "balance",
	OpOrigin:         "origin",
	OpCaller:         "caller",
	OpCallValue:      "callvalue",
	OpCallDataLoad:   "calldataload",
	OpCallDataSize:   "calldatasize",
	OpCallDataCopy:   "calldatacopy",
	OpCodeSize:       "codesize",
	OpCodeCopy:       "codecopy",
	OpGasPrice:       "gasprice",
	OpExtCodeSize:    "extcodesize",
	OpExtCodeCopy:    "extcodecopy",
	OpReturnDataSize: "returndatasize",
	OpReturnDataCopy: "returndatacopy",
	OpExtCodeHash:    "extcodehash",

	OpBlockHash:   "blockhash",
	OpCoinbase:    "coinbase",
	OpTimestamp:   "timestamp",
	OpNumber:      "number",
	OpPrevRandao:  "prevrandao",
	OpGasLimit:    "gaslimit",
	OpChainID:     "chainid",
	OpSelfBalance: "selfbalance",
	OpBaseFee:     "basefee",

	OpPop:      "pop",
	OpMLoad:    "mload",
	OpMStore:   "mstore",
	OpMStore8:  "mstore8",
	OpSLoad:    "sload",
	OpSStore:   "sstore",
	OpJump:     "jump",
	OpJumpI:    "jumpi",
	OpPC:       "pc",
	OpMSize:    "msize",
	OpGas:      "gas",
	OpJumpDest: "jumpdest",

	OpPush0: "push0",

	OpCreate:       "create",
	OpCall:         "call",
	OpCallCode:     "callcode",
	OpReturn:       "return",
	OpDelegateCall: "delegatecall",
	OpCreate2:      "create2",
	OpStaticCall:   "staticcall",
	OpRevert:       "revert",
	OpInvalid:      "invalid",
	OpSelfDestruct: "selfdestruct",
}

// opcodeByName is the reverse of opcodeNames, built by init.
var opcodeByName = map[string]Opcode{}

func init() {
	for i := 1; i <= 32; i++ {
		opcodeNames[OpPush1+Opcode(i-1)] = "push" + strconv.Itoa(i)
	}
	for i := 1; i <= 16; i++ {
		opcodeNames[OpDup1+Opcode(i-1)] = "dup" + strconv.Itoa(i)
		opcodeNames[OpSwap1+Opcode(i-1)] = "swap" + strconv.Itoa(i)
	}
	for i := 0; i <= 4; i++ {
		opcodeNames[OpLog0+Opcode(i)] = "log" + strconv.Itoa(i)
	}
	for op, name := range opcodeNames {
		opcodeByName[name] = op
	}
}

// String returns the canonical mnemonic, or a hex placeholder for
// unassigned opcode bytes.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return strings.ToUpper(name)
	}
	return fmt.Sprintf("UNKNOWN(0x%02X)", byte(op))
}

// Defined reports whether the opcode byte is assigned a mnemonic.
func (op Opcode) Defined() bool {
	_, ok := opcodeNames[op]
	return ok
}

// ImmediateLen returns the number of immediate data bytes that follow the
// opcode in the instruction stream: 1..32 for PUSH1..PUSH32, 0 otherwise.
func (op Opcode) ImmediateLen() int {
	if op >= OpPush1 && op <= OpPush32 {
		return int(op-OpPush1) + 1
	}
	return 0
}

// IsPush reports whether the opcode is PUSH0..PUSH32.
func (op Opcode) IsPush() bool {
	return op >= OpPush0 && op <= OpPush32
}

// ByName looks up an opcode by its lowercase mnemonic.
func ByName(name string) (Opcode, bool) {
	op, ok := opcodeByName[name]
	return op, ok
}

// PushFor returns the PUSH variant carrying exactly n immediate bytes.
// n must be in [1, 32].
func PushFor(n int) (Opcode, error) {
	if n < 1 || n > 32 {
		return 0, fmt.Errorf("evm: no push opcode carries %d immediate bytes", n)
	}
	return OpPush1 + Opcode(n-1), nil
}
