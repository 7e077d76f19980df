package libdiff

type Op int

const (
	Add Op = iota
	Remove
	Modify
)

func (op Op) String() string {
	switch op {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Modify:
		return "modify"
	default:
		return "<unknown op>"
	}
}

// Sign returns the one character prefix used when printing changes.
func (op Op) Sign() string {
	switch op {
	case Add:
		return "+"
	case Remove:
		return "-"
	default:
		return "~"
	}
}
