package extract

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindMissingTables Kind = iota + 1
	KindNoNamesFound
)

func (k Kind) String() string {
	switch k {
	case KindMissingTables:
		return "missing tables"
	case KindNoNamesFound:
		return "no names found"
	default:
		return "unknown"
	}
}

var (
	ErrMissingTables = errors.New("response contains fewer than two tables to process")
	ErrNoNamesFound  = errors.New("no names could be extracted")
)

type Error struct {
	Kind Kind
	// Tables is the number of tables found on the page.
	Tables int
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingTables:
		return fmt.Sprintf("%s: found %d, need 2", e.Kind, e.Tables)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindMissingTables:
		return target == ErrMissingTables
	case KindNoNamesFound:
		return target == ErrNoNamesFound
	default:
		return false
	}
}
