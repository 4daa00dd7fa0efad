package narrow

// Symbol is a unique identity value. Two symbols are equal only when
// one was copied from the other, whatever their descriptions.
type Symbol struct {
	id *symbol
}

type symbol struct {
	description string
}

// NewSymbol returns a Symbol distinct from every other symbol.
func NewSymbol(description string) Symbol {
	return Symbol{id: &symbol{description: description}}
}

// Description returns the description the symbol was created with.
func (s Symbol) Description() string {
	if s.id == nil {
		return ""
	}
	return s.id.description
}

func (s Symbol) String() string {
	return "Symbol(" + s.Description() + ")"
}
