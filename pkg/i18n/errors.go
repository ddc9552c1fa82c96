package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyLanguage       = errors.New("i18n: language cannot be empty")
	ErrEmptyNamespace      = errors.New("i18n: namespace cannot be empty")
	ErrUnknownNamespace    = errors.New("i18n: namespace has no bundle directory")
	ErrDuplicateNamespace  = errors.New("i18n: duplicate namespace")
	ErrInvalidLoadStrategy = errors.New("i18n: invalid load strategy")
	ErrDefaultNamespace    = errors.New("i18n: default namespace is not in the namespace list")
	ErrNoLoadPath          = errors.New("i18n: backend load path is not configured")
	ErrInvalidMetadata     = errors.New("i18n: invalid language metadata")
)

// LoadPathError is returned by Setup.ResourcePaths when the backend load path
// fails for a language and namespace.
type LoadPathError struct {
	Language  string
	Namespace string
	Err       error
}

func (e *LoadPathError) Error() string {
	return fmt.Sprintf("i18n: load path for %s/%s: %v", e.Language, e.Namespace, e.Err)
}

func (e *LoadPathError) Unwrap() error { return e.Err }
