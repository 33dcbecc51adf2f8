package entity

import (
	"errors"
	"fmt"
)

// ErrUnsupportedIdentifier is matched by every classification failure. Level
// content that reaches the classifier with an unknown grid value or entity
// name is a content bug: supporting it needs a code change.
var ErrUnsupportedIdentifier = errors.New("entity: unsupported level identifier")

// IdentifierSource says which kind of level data carried an identifier.
type IdentifierSource string

const (
	SourceIntGrid IdentifierSource = "int grid value"
	SourceEntity  IdentifierSource = "entity identifier"
)

type UnsupportedIdentifierError struct {
	Source IdentifierSource
	Value  string
}

func (e *UnsupportedIdentifierError) Error() string {
	return fmt.Sprintf("entity: unsupported %s %q", e.Source, e.Value)
}

func (e *UnsupportedIdentifierError) Is(target error) bool {
	return target == ErrUnsupportedIdentifier
}
