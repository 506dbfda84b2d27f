package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"golang.org/x/term"

	"meeting-insights/internal/insight/classifier"
)

const (
	defaultWidth = 80
	maxWidth     = 120
)

// printer writes reports; colours and glamour only apply on a terminal.
type printer struct {
	out    io.Writer
	errOut io.Writer
	tty    bool

	header *color.Color
	ok     *color.Color
	warn   *color.Color
	dim    *color.Color
}

func newPrinter(out, errOut io.Writer, plain bool) *printer {
	p := &printer{
		out:    out,
		errOut: errOut,
		tty:    !plain && isTerminal(out),
		header: color.New(color.FgCyan, color.Bold),
		ok:     color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
		dim:    color.New(color.FgHiBlack),
	}
	if !p.tty {
		for _, c := range []*color.Color{p.header, p.ok, p.warn, p.dim} {
			c.DisableColor()
		}
	}
	return p
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	width -= 4
	if width > maxWidth {
		width = maxWidth
	}
	return width
}

// markdown prints md through glamour on a terminal and verbatim otherwise.
func (p *printer) markdown(md string) error {
	if !p.tty {
		_, err := io.WriteString(p.out, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(terminalWidth(p.out)),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	rendered, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(p.out, rendered)
	return err
}

func (p *printer) raw(body []byte) error {
	_, err := p.out.Write(body)
	return err
}

func (p *printer) title(name string) {
	p.header.Fprintf(p.out, "==> %s <==\n", name)
}

func (p *printer) wrote(path string) {
	p.ok.Fprintf(p.errOut, "wrote %s\n", path)
}

func (p *printer) skipped(name, reason string) {
	p.warn.Fprintf(p.errOut, "%s: %s\n", name, reason)
}

// explain prints one row per line with the rule outcome.
func (p *printer) explain(lines []classifier.LineResult) {
	for _, res := range lines {
		kind := p.dim
		switch res.Kind {
		case classifier.KindTask, classifier.KindDecision:
			kind = p.ok
		case classifier.KindTaskSkipped, classifier.KindDecisionDropped:
			kind = p.warn
		}

		speaker := res.Speaker
		if speaker == "" {
			speaker = "-"
		}
		fmt.Fprintf(p.out, "%4d  %s  %-12s  %s\n", res.Number, kind.Sprintf("%-16s", res.Kind), speaker, res.Line)
	}
}
