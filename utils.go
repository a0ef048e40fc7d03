package equation

import "unicode/utf8"

// arguments converts children of element skipping argument separators
func (c Converter) arguments(e Element) (args []string, err error) {
	for i := 0; i < e.NumChildren(); i++ {
		child := e.Child(i)
		if child.ElementType() == ArgumentSeparatorKind {
			continue
		}

		arg, err := c.Latexify(child)
		if err != nil {
			return nil, err
		}

		args = append(args, arg)
	}

	return
}

// macroName strips escape marker from function code, \sumab becomes sumab
func macroName(code string) string {
	_, size := utf8.DecodeRuneInString(code)
	return code[size:]
}

// pad extends args with empty strings up to n items
func pad(args []string, n int) []string {
	out := make([]string, n)
	copy(out, args)
	return out
}
