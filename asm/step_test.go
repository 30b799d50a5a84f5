package asm

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/Maddiaa0/go-huff/evm"
)

func TestContextIDChildAndPath(t *testing.T) {
	tests := []struct {
		ctx  ContextID
		want []int
	}{
		{RootContext, nil},
		{RootContext.Child(0), []int{0}},
		{RootContext.Child(3).Child(14), []int{3, 14}},
	}
	for _, tt := range tests {
		if got := tt.ctx.Path(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Path(%q) = %v, want %v", tt.ctx, got, tt.want)
		}
	}
}

func TestMarkIDIsUsableAsMapKey(t *testing.T) {
	m := map[MarkID]int{}
	a := MarkID{Context: RootContext.Child(1), Sub: 0}
	b := MarkID{Context: RootContext.Child(1), Sub: 0}
	m[a] = 7
	if m[b] != 7 {
		t.Error("equal mark identities do not collide as map keys")
	}
}

func TestNewInstructionChecksImmediateLength(t *testing.T) {
	if _, err := NewInstruction(evm.OpPush1, []byte{0x01, 0x02}); err == nil {
		t.Error("NewInstruction(PUSH1, 2 bytes) succeeded, want error")
	}
	if _, err := NewInstruction(evm.OpAdd, []byte{0x01}); err == nil {
		t.Error("NewInstruction(ADD, 1 byte) succeeded, want error")
	}
	ins, err := NewInstruction(evm.OpPush1+2, []byte{0x01, 0x02, 0x03})
	if err != nil {
		t.Fatalf("NewInstruction(PUSH3) error: %v", err)
	}
	if minStaticSize(ins) != 4 {
		t.Errorf("PUSH3 static size = %d, want 4", minStaticSize(ins))
	}
}

func TestPushInt(t *testing.T) {
	tests := []struct {
		value uint64
		op    evm.Opcode
		imm   []byte
	}{
		{0, evm.OpPush0, nil},
		{1, evm.OpPush1, []byte{0x01}},
		{255, evm.OpPush1, []byte{0xFF}},
		{256, evm.OpPush1 + 1, []byte{0x01, 0x00}},
		{1 << 16, evm.OpPush1 + 2, []byte{0x01, 0x00, 0x00}},
	}
	for _, tt := range tests {
		ins := PushInt(tt.value)
		if ins.Op != tt.op {
			t.Errorf("PushInt(%d).Op = %s, want %s", tt.value, ins.Op, tt.op)
		}
		if !bytes.Equal(ins.Immediate, tt.imm) {
			t.Errorf("PushInt(%d).Immediate = %x, want %x", tt.value, ins.Immediate, tt.imm)
		}
	}
}

func TestStepSizes(t *testing.T) {
	mark := Mark{ID: MarkID{Context: RootContext, Sub: 0}}
	tests := []struct {
		step Step
		want int
	}{
		{Plain(evm.OpStop), 1},
		{Instruction{Op: evm.OpPush1 + 1, Immediate: []byte{0x01, 0x02}}, 3},
		{RawBytes{1, 2, 3}, 3},
		{mark, 0},
		{MarkRef{ID: mark.ID}, 1},
		{MarkDeltaRef{Start: mark.ID, End: mark.ID}, 1},
	}
	for _, tt := range tests {
		if got := minStaticSize(tt.step); got != tt.want {
			t.Errorf("minStaticSize(%T) = %d, want %d", tt.step, got, tt.want)
		}
	}

	ref := SizedRef{Ref: MarkRef{ID: mark.ID}, Width: 3}
	if got := solidSize(ref); got != 4 {
		t.Errorf("solidSize(SizedRef{Width: 3}) = %d, want 4", got)
	}
	if got := solidSize(mark); got != 0 {
		t.Errorf("solidSize(Mark) = %d, want 0", got)
	}
}
