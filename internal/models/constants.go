package models

import (
	"fmt"
	"strings"
)

// ============================================================================
// COLUMN KINDS
// ============================================================================

// ColumnKind describes the role a column plays in a card's lifecycle
type ColumnKind string

const (
	// ColumnKindInitial is where new cards are created. One per board.
	ColumnKindInitial ColumnKind = "INITIAL"
	// ColumnKindPending holds work in progress. Zero or more per board.
	ColumnKindPending ColumnKind = "PENDING"
	// ColumnKindFinal holds completed cards. One per board.
	ColumnKindFinal ColumnKind = "FINAL"
	// ColumnKindCancel holds cancelled cards. One per board, always last.
	ColumnKindCancel ColumnKind = "CANCEL"
)

// AllColumnKinds lists every column kind in board order
var AllColumnKinds = []ColumnKind{
	ColumnKindInitial,
	ColumnKindPending,
	ColumnKindFinal,
	ColumnKindCancel,
}

// ParseColumnKind converts a string to a ColumnKind (case-insensitive)
func ParseColumnKind(s string) (ColumnKind, error) {
	kind := ColumnKind(strings.ToUpper(strings.TrimSpace(s)))
	for _, k := range AllColumnKinds {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("invalid column kind %q (must be: initial, pending, final, cancel)", s)
}

// IsFinished reports whether the kind ends a card's lifecycle
func (k ColumnKind) IsFinished() bool {
	return k == ColumnKindFinal || k == ColumnKindCancel
}

// String returns the kind's stored representation
func (k ColumnKind) String() string { return string(k) }

// Label returns a human-friendly name for the kind
func (k ColumnKind) Label() string {
	switch k {
	case ColumnKindInitial:
		return "initial"
	case ColumnKindPending:
		return "pending"
	case ColumnKindFinal:
		return "final"
	case ColumnKindCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ============================================================================
// DEFAULT BOARD LAYOUT
// ============================================================================

// Default column names for boards created without a custom layout
const (
	DefaultInitialColumnName = "To Do"
	DefaultPendingColumnName = "In Progress"
	DefaultFinalColumnName   = "Done"
	DefaultCancelColumnName  = "Cancelled"
)

// Length limits shared by services and the console
const (
	MaxBoardNameLength  = 100
	MaxColumnNameLength = 50
	MaxCardTitleLength  = 255
	MaxReasonLength     = 500
)
