package asm

import "github.com/Maddiaa0/go-huff/unique"

// Validate checks the referential integrity of a symbolic stream: mark
// identities are unique, every reference names an existing mark, and
// every delta reference's end mark strictly follows its start mark. A nil
// result means the stream is safe for every later stage.
func Validate(steps []Step) error {
	var marks []unique.Pair[MarkID, int]
	for i, step := range steps {
		if m, ok := step.(Mark); ok {
			marks = append(marks, unique.Pair[MarkID, int]{Key: m.ID, Value: i})
		}
	}
	indices, err := unique.BuildMap(marks, func(id MarkID, at int) error {
		return &DuplicateMarkError{Step: at, ID: id}
	})
	if err != nil {
		return err
	}

	for i, step := range steps {
		switch s := step.(type) {
		case MarkRef:
			if _, ok := indices[s.ID]; !ok {
				return &InvalidRefError{Step: i, ID: s.ID, Reason: "no such mark"}
			}
		case MarkDeltaRef:
			startIdx, ok := indices[s.Start]
			if !ok {
				return &InvalidRefError{Step: i, ID: s.Start, Reason: "no such mark"}
			}
			endIdx, ok := indices[s.End]
			if !ok {
				return &InvalidRefError{Step: i, ID: s.End, Reason: "no such mark"}
			}
			if endIdx <= startIdx {
				return &InvalidRefError{Step: i, ID: s.End, Reason: "negative delta: end does not follow start"}
			}
		}
	}
	return nil
}
