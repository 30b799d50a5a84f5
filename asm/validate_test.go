package asm

import (
	"errors"
	"testing"

	"github.com/Maddiaa0/go-huff/evm"
)

func TestValidateAcceptsWellFormedStream(t *testing.T) {
	start := MarkID{Context: RootContext, Sub: 0}
	end := MarkID{Context: RootContext, Sub: 1}
	steps := []Step{
		MarkDeltaRef{Start: start, End: end},
		MarkRef{ID: start},
		Mark{ID: start},
		RawBytes{0x01, 0x02},
		Mark{ID: end},
	}
	if err := Validate(steps); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}

func TestValidateDuplicateMark(t *testing.T) {
	id := MarkID{Context: RootContext, Sub: 0}
	steps := []Step{
		Mark{ID: id},
		Plain(evm.OpStop),
		Mark{ID: id},
	}
	err := Validate(steps)

	var dup *DuplicateMarkError
	if !errors.As(err, &dup) {
		t.Fatalf("Validate() = %v, want *DuplicateMarkError", err)
	}
	if dup.Step != 2 {
		t.Errorf("offending step = %d, want 2", dup.Step)
	}
	if dup.ID != id {
		t.Errorf("offending mark = %v, want %v", dup.ID, id)
	}
}

func TestValidateMissingMark(t *testing.T) {
	absent := MarkID{Context: RootContext.Child(3), Sub: 1}
	steps := []Step{
		Plain(evm.OpStop),
		MarkRef{ID: absent},
	}
	err := Validate(steps)

	var invalid *InvalidRefError
	if !errors.As(err, &invalid) {
		t.Fatalf("Validate() = %v, want *InvalidRefError", err)
	}
	if invalid.Step != 1 {
		t.Errorf("offending step = %d, want 1", invalid.Step)
	}
	if invalid.ID != absent {
		t.Errorf("offending mark = %v, want %v", invalid.ID, absent)
	}
}

func TestValidateReversedDelta(t *testing.T) {
	start := MarkID{Context: RootContext, Sub: 0}
	end := MarkID{Context: RootContext, Sub: 1}
	steps := []Step{
		Mark{ID: end},
		Plain(evm.OpStop),
		Mark{ID: start},
		MarkDeltaRef{Start: start, End: end},
	}
	err := Validate(steps)

	var invalid *InvalidRefError
	if !errors.As(err, &invalid) {
		t.Fatalf("Validate() = %v, want *InvalidRefError", err)
	}
	if invalid.Step != 3 {
		t.Errorf("offending step = %d, want 3", invalid.Step)
	}
}

func TestValidateDeltaMissingEnd(t *testing.T) {
	start := MarkID{Context: RootContext, Sub: 0}
	end := MarkID{Context: RootContext, Sub: 1}
	steps := []Step{
		Mark{ID: start},
		MarkDeltaRef{Start: start, End: end},
	}
	err := Validate(steps)

	var invalid *InvalidRefError
	if !errors.As(err, &invalid) {
		t.Fatalf("Validate() = %v, want *InvalidRefError", err)
	}
	if invalid.ID != end {
		t.Errorf("offending mark = %v, want %v", invalid.ID, end)
	}
}

func TestContextChildDisambiguates(t *testing.T) {
	a := MarkID{Context: RootContext.Child(1), Sub: 0}
	b := MarkID{Context: RootContext.Child(1).Child(1), Sub: 0}
	if a == b {
		t.Fatal("distinct contexts compare equal")
	}
	steps := []Step{
		Mark{ID: a},
		Mark{ID: b},
	}
	if err := Validate(steps); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}
