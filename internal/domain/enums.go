package domain

// InputType identifies how a raw input string was resolved to notation.
type InputType string

const (
	InputTypeSMILES  InputType = "smiles"
	InputTypeFormula InputType = "formula"
)

// GateLabel is the level-1 decision reported in prediction results.
type GateLabel string

const (
	GateLabelHasGroups GateLabel = "HAS_GROUPS"
	GateLabelNoGroups  GateLabel = "NO_GROUPS"
)

// GateLabelFor returns the label matching a level-1 gate decision.
func GateLabelFor(hasGroups bool) GateLabel {
	if hasGroups {
		return GateLabelHasGroups
	}
	return GateLabelNoGroups
}
