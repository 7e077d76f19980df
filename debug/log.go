package debug

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/signadot/go-usps/ir"
)

var (
	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

// Logf writes a trace line to stderr. *ir.Node arguments are shown in
// their json form and byte slices as text.
func Logf(msg string, args ...any) {
	shown := make([]any, len(args))
	for i, a := range args {
		shown[i] = traceArg(a)
	}
	outMu.Lock()
	defer outMu.Unlock()
	fmt.Fprintf(out, msg, shown...)
}

func traceArg(a any) any {
	switch x := a.(type) {
	case *ir.Node:
		if x == nil {
			return "<nil>"
		}
		d, err := x.MarshalJSON()
		if err != nil {
			return fmt.Sprintf("<%s: %v>", x.Type, err)
		}
		return string(d)
	case []byte:
		return string(x)
	}
	return a
}
