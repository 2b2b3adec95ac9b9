package ast

type Operator uint8

const (
	OpInvalid Operator = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpNot    // !
	OpBitNot // ~
)

var operatorText = [...]string{
	OpInvalid: "<invalid>",
	OpAdd:     "+",
	OpSub:     "-",
	OpMul:     "*",
	OpDiv:     "/",
	OpMod:     "%",
	OpNot:     "!",
	OpBitNot:  "~",
}

func (o Operator) String() string {
	if int(o) < len(operatorText) {
		return operatorText[o]
	}
	return operatorText[OpInvalid]
}

// IsBinary reports whether o can appear between two operands.
func (o Operator) IsBinary() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod:
		return true
	}
	return false
}

// IsPrefix reports whether o can appear before a single operand.
func (o Operator) IsPrefix() bool {
	switch o {
	case OpSub, OpNot, OpBitNot:
		return true
	}
	return false
}
