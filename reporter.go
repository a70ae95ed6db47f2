package personread

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Reporter prints the outcome of a pipeline run: the record on Out, the error on Err.
type Reporter struct {
	Out io.Writer
	Err io.Writer
}

// NewReporter creates a Reporter writing to the given streams.
func NewReporter(out, errOut io.Writer) *Reporter {
	return &Reporter{Out: out, Err: errOut}
}

// Report prints p when err is nil, otherwise the error message, and returns
// the failure kind of err.
func (r *Reporter) Report(p Person, err error) FailureKind {
	if err == nil {
		fmt.Fprintf(r.Out, "person: %s\n", p)
		return FailNone
	}

	prefix := color.New(color.FgRed, color.Bold)
	if isTerminal(r.Err) {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	fmt.Fprintf(r.Err, "%s %s\n", prefix.Sprint("error:"), err)

	if kind := KindOf(err); kind != FailNone {
		return kind
	}
	// Not produced by the pipeline; still a failure.
	return FailRead
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
