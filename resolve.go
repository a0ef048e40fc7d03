package equation

import "fmt"

// Result is a converted equation under the cursor, Evaluated is nil unless an Evaluator is configured.
type Result struct {
	Latex     string   `json:"latex"`
	Evaluated *float64 `json:"evaluated"`
}

// Evaluator computes numeric value of a LaTeX expression.
type Evaluator interface {
	Evaluate(latex string) (float64, error)
}

// Enclosing walks up from element to the nearest equation.
//
// Text may appear both inside and outside of equations, so kind of the element itself is not enough, the walk
// stops only at an equation or at the document root.
func Enclosing(e Element) (Element, error) {
	if e == nil {
		return nil, ErrNoCursor
	}

	for e != nil {
		switch e.ElementType() {
		case EquationKind:
			return e, nil
		case DocumentKind:
			return nil, ErrNotEquation
		}

		e = e.Parent()
	}

	// detached subtree without document root
	return nil, ErrNotEquation
}

type Calculator struct {
	Converter Converter
	Evaluator Evaluator
}

// Query converts equation under the cursor of the document.
func Query(doc Document) (*Result, error) {
	return (&Calculator{}).Query(doc)
}

func (c *Calculator) Query(doc Document) (*Result, error) {
	eq, err := Enclosing(doc.Cursor())
	if err != nil {
		return nil, err
	}

	latex, err := c.Converter.Latexify(eq)
	if err != nil {
		return nil, err
	}

	result := &Result{Latex: latex}
	if c.Evaluator == nil {
		return result, nil
	}

	value, err := c.Evaluator.Evaluate(latex)
	if err != nil {
		return nil, fmt.Errorf("unable to evaluate %#v: %w", latex, err)
	}

	result.Evaluated = &value
	return result, nil
}
