package asm

import "fmt"

// maxOffsetWidth caps reference immediates at 6 bytes. A stream needing
// more would be ~2^40 bytes of code, far past any sane program.
const maxOffsetWidth = 6

// initialWidth picks one uniform immediate width wide enough that no
// reference can outgrow it: the largest value representable in the width
// must cover the stream length that results if every reference uses that
// width for its immediate.
func initialWidth(steps []Step) int {
	refs := 0
	minLen := 0
	for _, step := range steps {
		if _, ok := step.(Ref); ok {
			refs++
		}
		minLen += minStaticSize(step)
	}
	width := 1
	for (uint64(1)<<(8*width))-1 < uint64(minLen+width*refs) {
		width++
	}
	return width
}

// Solidify converts a validated symbolic stream into a resolved stream in
// which every reference carries the same conservative initial width. The
// shrinker narrows from there.
func Solidify(steps []Step) ([]SolidStep, error) {
	width := initialWidth(steps)
	if width > maxOffsetWidth {
		return nil, &InternalError{Msg: fmt.Sprintf("stream needs %d-byte offsets, limit is %d", width, maxOffsetWidth)}
	}
	solid := make([]SolidStep, len(steps))
	for i, step := range steps {
		switch s := step.(type) {
		case Ref:
			solid[i] = SizedRef{Ref: s, Width: width}
		case Instruction:
			solid[i] = s
		case Mark:
			solid[i] = s
		case RawBytes:
			solid[i] = s
		default:
			return nil, &InternalError{Step: i, Msg: fmt.Sprintf("unhandled step %T", step)}
		}
	}
	return solid, nil
}
