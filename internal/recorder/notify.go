package recorder

import (
	"fmt"
	"io"
)

// TerminalNotifier renders alerts as lines on the session output, the
// terminal analogue of a modal alert.
type TerminalNotifier struct {
	out io.Writer
}

func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

func (n *TerminalNotifier) Notify(title, message string) {
	fmt.Fprintf(n.out, "\n[%s] %s\n", title, message)
}
