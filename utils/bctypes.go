package utils

import "strings"

// BCType represents the boundary condition applied to the ghost cells of a
// finite difference grid
type BCType uint8

const (
	// BCNone indicates no boundary condition
	BCNone BCType = iota

	// BCDirichlet holds the ghost cells at a fixed value
	BCDirichlet

	// BCPeriodic wraps the domain, ghost cells mirror the opposite interior
	BCPeriodic
)

// String returns the string representation of a BCType
func (bc BCType) String() string {
	switch bc {
	case BCNone:
		return "None"
	case BCDirichlet:
		return "Dirichlet"
	case BCPeriodic:
		return "Periodic"
	}
	return "Unknown"
}

// BCNameMap provides a mapping from common boundary condition names to BCType
// Keys are lowercase for case-insensitive matching
var BCNameMap = map[string]BCType{
	"dirichlet": BCDirichlet,
	"constant":  BCDirichlet,
	"fixed":     BCDirichlet,
	"value":     BCDirichlet,
	"periodic":  BCPeriodic,
	"wrap":      BCPeriodic,
	"cyclic":    BCPeriodic,
}

// ParseBCName converts a boundary condition name string to BCType
// The matching is case-insensitive and trims whitespace
func ParseBCName(name string) BCType {
	lowerName := strings.ToLower(strings.TrimSpace(name))
	if bcType, ok := BCNameMap[lowerName]; ok {
		return bcType
	}
	// Default to a fixed value boundary for unknown types
	return BCDirichlet
}
