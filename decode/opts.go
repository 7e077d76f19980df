package decode

type DecodeOption func(*DecState)

// KeepGroups disables collapsing: every child element value is a group, even
// when the element occurs once.
func KeepGroups() DecodeOption {
	return func(ds *DecState) { ds.keepGroups = true }
}
