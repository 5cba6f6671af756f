package morph

import (
	"fmt"
	"strings"
)

// Kind classifies a configuration defect discovered during registration or
// resolution.
type Kind int

const (
	// MalformedCharter means a charter's JSON shape is wrong (missing imp,
	// non-string imp, non-object roles). It is the only kind that locally
	// short-circuits further checks on its subtree.
	MalformedCharter Kind = iota
	// UnknownFace means a face label has no registered descriptor.
	UnknownFace
	// UnknownImp means an imp label has no registered descriptor.
	UnknownImp
	// FaceMismatch means a charter selected an imp that implements a
	// different face than the slot expects.
	FaceMismatch
	// RoleMissing means a charter supplies no sub-charter for a role the
	// selected imp declares as required.
	RoleMissing
	// UnknownRole means a charter supplies a sub-charter for a role the
	// selected imp does not declare.
	UnknownRole
	// ConflictingRegistration means two unequal descriptors were registered
	// under the same label.
	ConflictingRegistration
	// ChartersTooDeep means resolution exceeded the engine's recursion limit.
	ChartersTooDeep
	// FounderFailed means an imp's founder returned an error while
	// constructing an otherwise defect-free node.
	FounderFailed
)

// String returns the taxonomy name for the kind.
func (k Kind) String() string {
	switch k {
	case MalformedCharter:
		return "MalformedCharter"
	case UnknownFace:
		return "UnknownFace"
	case UnknownImp:
		return "UnknownImp"
	case FaceMismatch:
		return "FaceMismatch"
	case RoleMissing:
		return "RoleMissing"
	case UnknownRole:
		return "UnknownRole"
	case ConflictingRegistration:
		return "ConflictingRegistration"
	case ChartersTooDeep:
		return "ChartersTooDeep"
	case FounderFailed:
		return "FounderFailed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is one recorded defect, with enough context to locate the offending
// part of the charter: the role path from the root plus the labels involved.
type Error struct {
	Kind Kind

	// Path is the sequence of role labels from the charter root to the node
	// the defect was found at. Empty for the root node and for
	// registration-time defects.
	Path []string

	// Detail is the human-readable description of the defect.
	Detail string

	// Face and Imp carry the labels involved, when applicable. For
	// FaceMismatch, Face is the expected face and ActualFace the one the
	// selected imp implements.
	Face       string
	Imp        string
	Role       string
	ActualFace string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%s at %s: %s", e.Kind, strings.Join(e.Path, "."), e.Detail)
}

// Errorf builds an Error with a formatted detail message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
