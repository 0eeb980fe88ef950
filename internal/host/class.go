package host

import "errors"

var (
	// ErrInvalidClass is returned when declaring on a nil or uninitialized class.
	ErrInvalidClass = errors.New("invalid class handle")
	// ErrEmptyName is returned for a declaration without a name.
	ErrEmptyName = errors.New("constant name is empty")
	// ErrConflict is returned when a name is redeclared with a different value.
	ErrConflict = errors.New("constant already declared with a different value")
	// ErrSealed is returned when declaring on a class that has been sealed.
	ErrSealed = errors.New("class is sealed")
	// ErrNotFound is returned when reading a constant that was never declared.
	ErrNotFound = errors.New("constant not declared")
	// ErrWrongType is returned when a constant is read as the wrong kind.
	ErrWrongType = errors.New("constant has a different type")
)

// Class is a host class that can receive constant declarations.
type Class interface {
	// DeclareInt declares an integer constant.
	DeclareInt(name string, value int64) error
	// DeclareString declares a string constant.
	DeclareString(name string, value string) error
}
