package asm

// MarkOffsets computes each mark's absolute byte offset in a resolved
// stream: a single left-to-right pass accumulating concrete step sizes. A
// mark's offset is the running total at the moment it is visited.
func MarkOffsets(steps []SolidStep) map[MarkID]int {
	offsets := make(map[MarkID]int)
	offset := 0
	for _, step := range steps {
		if m, ok := step.(Mark); ok {
			offsets[m.ID] = offset
		}
		offset += solidSize(step)
	}
	return offsets
}

// CodeSize returns the total byte size of a resolved stream.
func CodeSize(steps []SolidStep) int {
	size := 0
	for _, step := range steps {
		size += solidSize(step)
	}
	return size
}
