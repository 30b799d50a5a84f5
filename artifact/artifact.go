// Package artifact defines the compile-artifact format written by huffc:
// assembled bytecode plus the mark-offset debug map, CBOR-encoded with
// canonical options so equal artifacts are byte-identical.
package artifact

import (
	"fmt"
	"sort"

	"github.com/fxamacker/cbor/v2"

	"github.com/Maddiaa0/go-huff/asm"
)

// Version is the current artifact format version. Increment on
// incompatible changes.
const Version uint16 = 1

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("artifact: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarkOffset records where one mark landed in the emitted bytecode.
type MarkOffset struct {
	Context string `cbor:"context"`
	Sub     int    `cbor:"sub"`
	Offset  int    `cbor:"offset"`
}

// Artifact is one compiled program plus its debug metadata.
type Artifact struct {
	Version  uint16       `cbor:"version"`
	Source   string       `cbor:"source"`
	Bytecode []byte       `cbor:"bytecode"`
	Marks    []MarkOffset `cbor:"marks"`
}

// FromAssembly builds an artifact from a shrunk stream and the bytecode
// emitted from it. Marks are sorted by offset, then identity, so the
// listing is deterministic.
func FromAssembly(source string, steps []asm.SolidStep, code []byte) *Artifact {
	offsets := asm.MarkOffsets(steps)
	marks := make([]MarkOffset, 0, len(offsets))
	for id, off := range offsets {
		marks = append(marks, MarkOffset{
			Context: string(id.Context),
			Sub:     id.Sub,
			Offset:  off,
		})
	}
	sort.Slice(marks, func(i, j int) bool {
		if marks[i].Offset != marks[j].Offset {
			return marks[i].Offset < marks[j].Offset
		}
		if marks[i].Context != marks[j].Context {
			return marks[i].Context < marks[j].Context
		}
		return marks[i].Sub < marks[j].Sub
	})
	return &Artifact{
		Version:  Version,
		Source:   source,
		Bytecode: code,
		Marks:    marks,
	}
}

// Marshal serializes an artifact to canonical CBOR bytes.
func Marshal(a *Artifact) ([]byte, error) {
	return cborEncMode.Marshal(a)
}

// Unmarshal deserializes an artifact, rejecting newer format versions.
func Unmarshal(data []byte) (*Artifact, error) {
	var a Artifact
	if err := cbor.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("artifact: unmarshal: %w", err)
	}
	if a.Version > Version {
		return nil, fmt.Errorf("artifact: version %d is newer than supported version %d", a.Version, Version)
	}
	return &a, nil
}
