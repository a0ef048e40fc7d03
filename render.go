package equation

import (
	"fmt"
	"io"
	"strings"
)

// macro describes a function code which has a canonical LaTeX form
type macro struct {
	arity  int
	render func(code string, args []string) string
}

var macros = map[string]macro{
	"superscript": {arity: 2, render: func(_ string, args []string) string {
		return args[0] + "^{" + args[1] + "}"
	}},
	"subscript": {arity: 2, render: func(_ string, args []string) string {
		return args[0] + "_{" + args[1] + "}"
	}},
	"rootof": {arity: 2, render: func(_ string, args []string) string {
		return "\\sqrt[" + args[0] + "]{" + args[1] + "}"
	}},
	"subsuperscript": {arity: 3, render: func(_ string, args []string) string {
		return args[0] + "_{" + args[1] + "}^{" + args[2] + "}"
	}},
	"limab": {arity: 2, render: func(_ string, args []string) string {
		return "\\lim_{" + args[0] + "\\rightarrow " + args[1] + "}"
	}},
	"rbracelr": {arity: 1, render: func(_ string, args []string) string {
		return "\\left(" + args[0] + "\\right)"
	}},
	"sbracelr": {arity: 1, render: func(_ string, args []string) string {
		return "\\left[" + args[0] + "\\right]"
	}},
	"bracelr": {arity: 1, render: func(_ string, args []string) string {
		return "\\left\\{" + args[0] + "\\right\\}"
	}},
	// space after \rvert keeps e.g. |a-b|x from turning into \rvertx
	"abs": {arity: 1, render: func(_ string, args []string) string {
		return "\\lvert{" + args[0] + "}\\rvert "
	}},
}

// bounded operators are written as \sumab, \intab, etc. and become \sum_{a}^{b}
var bounded = []string{"bigcapab", "bigcupab", "prodab", "coprodab", "intab", "ointab", "sumab"}

func init() {
	for _, name := range bounded {
		macros[name] = macro{arity: 2, render: renderBounded}
	}
}

func renderBounded(code string, args []string) string {
	return strings.TrimSuffix(code, "ab") + "_{" + args[0] + "}^{" + args[1] + "}"
}

// Converter turns equation elements into LaTeX.
//
// The zero value is permissive: a special form with missing arguments renders them as empty strings.
type Converter struct {
	Strict bool // fail with ErrArityMismatch instead of rendering missing arguments as empty
}

// Latexify converts element and its descendants to LaTeX using the permissive converter.
func Latexify(e Element) (string, error) {
	return Converter{}.Latexify(e)
}

func Render(w io.Writer, e Element) error {
	return Converter{}.Render(w, e)
}

func (c Converter) Render(w io.Writer, e Element) error {
	out, err := c.Latexify(e)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, out)
	return err
}

func (c Converter) Latexify(e Element) (string, error) {
	switch kind := e.ElementType(); kind {
	case EquationKind:
		args, err := c.arguments(e)
		if err != nil {
			return "", err
		}

		return strings.Join(args, ""), nil
	case FunctionKind:
		return c.function(e)
	case SymbolKind:
		return e.Code(), nil
	case TextKind:
		return e.Text(), nil
	default:
		return "", fmt.Errorf("element %v %w", kind, ErrUnhandledKind)
	}
}

func (c Converter) function(e Element) (string, error) {
	code := e.Code()

	args, err := c.arguments(e)
	if err != nil {
		return "", err
	}

	m, ok := macros[macroName(code)]
	if !ok {
		return code + "{" + strings.Join(args, "}{") + "}", nil
	}

	if len(args) < m.arity {
		if c.Strict {
			return "", fmt.Errorf("%v takes %d arguments, got %d: %w", code, m.arity, len(args), ErrArityMismatch)
		}

		args = pad(args, m.arity)
	}

	return m.render(code, args), nil
}
