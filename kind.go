package equation

type Kind int

const (
	UnknownKind Kind = iota
	DocumentKind
	ParagraphKind
	TextKind
	EquationKind
	FunctionKind
	ArgumentSeparatorKind
	SymbolKind
)

var kindNames = map[Kind]string{
	UnknownKind:           "UNSUPPORTED",
	DocumentKind:          "DOCUMENT",
	ParagraphKind:         "PARAGRAPH",
	TextKind:              "TEXT",
	EquationKind:          "EQUATION",
	FunctionKind:          "EQUATION_FUNCTION",
	ArgumentSeparatorKind: "EQUATION_FUNCTION_ARGUMENT_SEPARATOR",
	SymbolKind:            "EQUATION_SYMBOL",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return kindNames[UnknownKind]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText maps unrecognized names to UnknownKind, rejecting them is up to the converter.
func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}

	*k = UnknownKind
	return nil
}
