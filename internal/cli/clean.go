package cli

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/askiada/go-textcleaner/pkg/batch"
	"github.com/askiada/go-textcleaner/pkg/pipeline/drawer"
	"github.com/askiada/go-textcleaner/pkg/pipeline/measure"
	"github.com/askiada/go-textcleaner/pkg/textcleaner"
)

type cleanOptions struct {
	steps       []string
	profile     string
	concurrency int
	output      string
	graph       string
	measure     bool
	whole       bool
}

func newCleanCmd(root *rootOptions) *cobra.Command {
	opts := &cleanOptions{}

	cmd := &cobra.Command{
		Use:   "clean [file]",
		Short: "Clean a file or standard input",
		Long: `Clean reads the file (or standard input when no file or "-" is given) and writes the cleaned text.

Lines are cleaned independently and written back in order. Use --whole to clean the input as a single text,
which is needed for steps acting across lines such as REPLACE_NEWLINES_TABS.`,
		Example: `  textcleaner clean --steps remove_html_tags,decode_html_entities page.html
  cat notes.txt | textcleaner clean --profile search --concurrency 4`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.steps, "steps", "s", nil, "comma separated steps, overrides --profile")
	cmd.Flags().StringVarP(&opts.profile, "profile", "p", "", "profile from the configuration (default from config)")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 0, "workers per step (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default standard output)")
	cmd.Flags().StringVar(&opts.graph, "graph", "", "write the pipeline graph in DOT format to this file")
	cmd.Flags().BoolVar(&opts.measure, "measure", false, "log per step timings")
	cmd.Flags().BoolVar(&opts.whole, "whole", false, "clean the input as one text instead of line by line")

	return cmd
}

func runClean(cmd *cobra.Command, root *rootOptions, opts *cleanOptions, args []string) (err error) {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cmd, cfg)

	seq, err := opts.sequence(cfg.Profile)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	out, err := openOutput(cmd, opts.output)
	if err != nil {
		return err
	}
	defer func() {
		err = closeOutput(out, err)
	}()

	if opts.whole {
		data, err := io.ReadAll(in)
		if err != nil {
			return errors.Wrap(err, "unable to read input")
		}
		_, err = io.WriteString(out, seq.Apply(string(data)))

		return errors.Wrap(err, "unable to write output")
	}

	concurrency := cfg.Concurrency
	if opts.concurrency > 0 {
		concurrency = opts.concurrency
	}

	batchOpts := []batch.Option{
		batch.WithConcurrency(concurrency),
		batch.WithLogger(log),
	}

	var msr measure.Measure
	if opts.measure || opts.graph != "" {
		msr = measure.NewDefaultMeasure()
		batchOpts = append(batchOpts, batch.WithPipelineOptions(measure.PipelineMeasure(msr)))
	}
	if opts.graph != "" {
		batchOpts = append(batchOpts, batch.WithPipelineOptions(drawer.PipelineDrawer(drawer.NewDOTDrawer(opts.graph), msr)))
	}

	stats, err := batch.Run(cmd.Context(), in, out, seq, batchOpts...)
	if err != nil {
		return err
	}

	log.Info().
		Str("sequence", seq.String()).
		Int("lines", stats.Lines).
		Dur("duration", stats.Duration).
		Msg("text cleaned")

	if opts.measure {
		for _, s := range measure.Summaries(msr) {
			log.Info().
				Str("stage", s.Name).
				Int64("count", s.Count).
				Dur("average", s.Average).
				Dur("total", s.Total).
				Msg("stage timing")
		}
	}

	return nil
}

// sequence compiles --steps when set and the selected profile otherwise.
func (o *cleanOptions) sequence(profile func(string) (textcleaner.Sequence, error)) (textcleaner.Sequence, error) {
	if len(o.steps) > 0 {
		return textcleaner.CompileNames(o.steps...)
	}

	return profile(o.profile)
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, errors.Wrap(err, "unable to open input")
	}

	return f, func() { f.Close() }, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// openOutput returns standard output, which is never closed, or the created file.
func openOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create output")
	}

	return f, nil
}

// closeOutput closes out and returns runErr, or the close error when the run itself succeeded.
func closeOutput(out io.Closer, runErr error) error {
	err := out.Close()
	if runErr != nil {
		return runErr
	}

	return errors.Wrap(err, "unable to close output")
}
