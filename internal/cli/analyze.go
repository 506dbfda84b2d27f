package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"meeting-insights/internal/insight"
	"meeting-insights/internal/insight/render"
	"meeting-insights/pkg/textdecode"
)

const stdinName = "-"

type analyzeOptions struct {
	text    string
	format  string
	outDir  string
	plain   bool
	explain bool
	jobs    int
}

type source struct {
	name string // file path, "-" for stdin, "" for --text
	data []byte
}

type report struct {
	source source
	output insight.PreviewOutput
	empty  bool
}

func newAnalyzeCommand(root *rootOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [FILE...]",
		Short: "Analyze minutes from files, stdin (-) or --text",
		Long: `Analyze prints the insight report for each input in argument order.
Files win over --text. Without any text nothing is printed.`,
		Example: `  insights analyze acta.txt
  insights analyze --format json --out reports/ *.txt
  insights analyze --text "Ana: Vamos a priorizar el backlog."`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, root, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.text, "text", "t", "", "minutes passed inline")
	f.StringVarP(&opts.format, "format", "f", string(render.FormatMarkdown), "output format: markdown, html or json")
	f.StringVarP(&opts.outDir, "out", "o", "", "also write meeting_insights.{md,html,json} into this directory")
	f.BoolVar(&opts.plain, "plain", false, "disable colours and terminal markdown styling")
	f.BoolVar(&opts.explain, "explain", false, "print how every line was classified")
	f.IntVarP(&opts.jobs, "jobs", "j", 4, "files analyzed in parallel")
	return cmd
}

func runAnalyze(cmd *cobra.Command, root *rootOptions, opts *analyzeOptions, args []string) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.jobs < 1 {
		opts.jobs = 1
	}

	sources, err := collectSources(cmd.InOrStdin(), args, opts.text)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return nil
	}

	uc, cls, err := root.environment(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	reports := make([]report, len(sources))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(opts.jobs)
	for i, src := range sources {
		g.Go(func() error {
			if src.data == nil {
				data, err := os.ReadFile(src.name)
				if err != nil {
					return err
				}
				src.data = data
			}

			in := insight.AnalyzeInput{FileName: src.name, Upload: src.data}
			if src.name == "" {
				in = insight.AnalyzeInput{Text: string(src.data)}
			}
			out, err := uc.Preview(ctx, insight.PreviewInput{AnalyzeInput: in, Formats: render.Formats()})
			if errors.Is(err, insight.ErrEmptyInput) {
				reports[i] = report{source: src, empty: true}
				return nil
			}
			if err != nil {
				return fmt.Errorf("%s: %w", displayName(src), err)
			}
			reports[i] = report{source: src, output: out}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p := newPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts.plain)
	multi := len(sources) > 1
	for _, rep := range reports {
		if rep.empty {
			if multi {
				p.skipped(displayName(rep.source), "no text")
			}
			continue
		}

		if multi {
			p.title(displayName(rep.source))
		}
		if err := printReport(p, format, rep.output); err != nil {
			return err
		}
		if opts.explain {
			text, err := textdecode.Decode(rep.source.data)
			if err != nil {
				return err
			}
			p.explain(cls.Explain(text))
		}
		if opts.outDir != "" {
			if err := writeReport(p, opts.outDir, outputPrefix(rep.source, multi), rep.output); err != nil {
				return err
			}
		}
	}
	return nil
}

// collectSources keeps argument order. --text is used only when no file is given.
func collectSources(stdin io.Reader, args []string, text string) ([]source, error) {
	if len(args) == 0 {
		if text == "" {
			return nil, nil
		}
		return []source{{data: []byte(text)}}, nil
	}

	sources := make([]source, 0, len(args))
	readStdin := false
	for _, arg := range args {
		if arg != stdinName {
			sources = append(sources, source{name: arg})
			continue
		}
		if readStdin {
			return nil, fmt.Errorf("stdin (-) given more than once")
		}
		readStdin = true
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		sources = append(sources, source{name: stdinName, data: data})
	}
	return sources, nil
}

func printReport(p *printer, format render.Format, out insight.PreviewOutput) error {
	body := out.Rendered[format]
	if format == render.FormatMarkdown {
		return p.markdown(string(body))
	}
	if err := p.raw(body); err != nil {
		return err
	}
	if len(body) > 0 && body[len(body)-1] != '\n' {
		_, err := io.WriteString(p.out, "\n")
		return err
	}
	return nil
}

func writeReport(p *printer, dir, prefix string, out insight.PreviewOutput) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, f := range render.Formats() {
		path := filepath.Join(dir, prefix+f.FileName())
		if err := os.WriteFile(path, out.Rendered[f], 0o644); err != nil {
			return err
		}
		p.wrote(path)
	}
	return nil
}

// outputPrefix keeps per-input downloads apart when several inputs share a directory.
func outputPrefix(src source, multi bool) string {
	if !multi {
		return ""
	}
	if src.name == "" || src.name == stdinName {
		return "stdin_"
	}
	base := filepath.Base(src.name)
	return strings.TrimSuffix(base, filepath.Ext(base)) + "_"
}

func displayName(src source) string {
	switch src.name {
	case "":
		return "--text"
	case stdinName:
		return "stdin"
	}
	return src.name
}
