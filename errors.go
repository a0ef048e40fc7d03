package equation

import "errors"

var (
	ErrUnhandledKind = errors.New("unhandled in latexify")
	ErrNoCursor      = errors.New("cannot find a cursor")
	ErrNotEquation   = errors.New("not an equation")
	ErrArityMismatch = errors.New("not enough arguments")
)
