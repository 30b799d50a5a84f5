package asm

import "github.com/Maddiaa0/go-huff/evm"

// Sub-indices for the marks bracketing the runtime payload in deploy
// bytecode.
const (
	StartSubID = 0
	EndSubID   = 1
)

// DeploySteps builds the symbolic stream for minimal contract-creation
// bytecode: push the payload's length (distance between its bracketing
// marks), duplicate it, push the payload's code offset, CODECOPY it to
// memory address 0, and RETURN it from there.
func DeploySteps(runtime []byte) []Step {
	start := MarkID{Context: RootContext, Sub: StartSubID}
	end := MarkID{Context: RootContext, Sub: EndSubID}
	// TODO: pre-Shanghai targets need PUSH1 0x00 in place of PUSH0.
	return []Step{
		MarkDeltaRef{Start: start, End: end},
		Plain(evm.OpDup1),
		MarkRef{ID: start},
		Plain(evm.OpPush0),
		Plain(evm.OpCodeCopy),
		Plain(evm.OpPush0),
		Plain(evm.OpReturn),
		Mark{ID: start},
		RawBytes(runtime),
		Mark{ID: end},
	}
}

// MinimalDeploy assembles DeploySteps through the full pipeline. Both
// reference kinds resolve through the ordinary shrink loop.
func MinimalDeploy(runtime []byte) ([]byte, error) {
	return Assemble(DeploySteps(runtime))
}
