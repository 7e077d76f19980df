package ir

const (
	AttributesKey = "@attributes"
	ValueKey      = "@value"
	CDataKey      = "@cdata"
)

// IsReserved reports whether key is one of the structural keys of the
// reserved-key protocol.
func IsReserved(key string) bool {
	switch key {
	case AttributesKey, ValueKey, CDataKey:
		return true
	}
	return false
}

// IsValidName reports whether name may be used as an element or attribute
// name: a letter or underscore followed by letters, digits, ':', '-', '.'
// or '_', not ending in ':'.
func IsValidName(name string) bool {
	n := len(name)
	if n == 0 {
		return false
	}
	if !isNameStart(name[0]) {
		return false
	}
	for i := 1; i < n; i++ {
		if !isNameChar(name[i]) {
			return false
		}
	}
	return name[n-1] != ':'
}

func isNameStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isNameChar(c byte) bool {
	switch c {
	case ':', '-', '.', '_':
		return true
	}
	return isNameStart(c) || ('0' <= c && c <= '9')
}
