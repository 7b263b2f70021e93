package domain

import types "fracpoint/internal/domain/types"

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	InputKind = types.InputKind
)

const (
	FractionInput = types.FractionInput
	PointInput    = types.PointInput
)
