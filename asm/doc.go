// Package asm assembles a symbolic EVM instruction stream into bytecode.
//
// The input is an ordered sequence of steps: concrete instructions, raw
// byte literals, zero-size marks, and references that resolve to a mark's
// byte offset or to the distance between two marks. References are encoded
// as PUSH instructions whose immediate width depends on the resolved value,
// and the width chosen for one reference shifts the offset of everything
// after it. The assembler resolves this circularity in three stages:
//
//   - Solidify: give every reference one uniform width, provably wide
//     enough for any offset the stream could produce.
//   - Shrink: recompute mark offsets and narrow each reference to the
//     minimum width its value needs, repeating until a pass changes
//     nothing or the iteration budget runs out.
//   - ToBytecode: compute offsets one final time and project each step to
//     its concrete bytes.
//
// Streams are validated up front: mark identities must be unique, every
// reference must name an existing mark, and a delta reference's end mark
// must follow its start mark. All stages are pure functions of their
// input (Shrink rewrites widths in place on the slice it is handed), so
// independent assemblies can run concurrently without coordination.
package asm
