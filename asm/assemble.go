package asm

// Assemble runs the full pipeline on a symbolic stream with the default
// shrink budget: validate, solidify, shrink to a fixed point, emit.
func Assemble(steps []Step) ([]byte, error) {
	return AssembleBudget(steps, DefaultShrinkBudget)
}

// AssembleBudget is Assemble with an explicit shrink budget. Pass
// UnboundedShrink to iterate until a fixed point regardless of pass
// count.
func AssembleBudget(steps []Step, budget int) ([]byte, error) {
	if err := Validate(steps); err != nil {
		return nil, err
	}
	solid, err := Solidify(steps)
	if err != nil {
		return nil, err
	}
	return ToBytecode(Shrink(solid, budget))
}
