package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/shiwake/internal/charset"
	"github.com/cleared-dev/shiwake/internal/gitops"
	"github.com/cleared-dev/shiwake/internal/importer"
	"github.com/cleared-dev/shiwake/internal/journal"
	"github.com/cleared-dev/shiwake/internal/logging"
	"github.com/cleared-dev/shiwake/internal/model"
	"github.com/cleared-dev/shiwake/internal/runlog"
)

type convertOptions struct {
	format         string
	output         string
	appendOutput   bool
	policy         string
	inputEncoding  string
	outputEncoding string
}

func newConvertCommand(g *globalFlags) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert <input.csv>",
		Short: "Convert a bank or receipt CSV into Yayoi journal entries",
		Long: `Convert reads a bank passbook or receipt CSV, validates every row against
the chart of accounts and writes one Yayoi journal entry per row.

Under the default abort policy a single invalid row fails the run and
nothing is written. With --policy skip invalid rows are reported and dropped.

--append adds rows to an existing output file without a header. Running it
twice on the same input duplicates the entries.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(g)
			if err != nil {
				return err
			}
			return runConvert(cmd.OutOrStdout(), e, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "bank", "input format: bank or receipt")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output Yayoi CSV (required)")
	_ = cmd.MarkFlagRequired("output")
	cmd.Flags().BoolVar(&opts.appendOutput, "append", false, "append to the output file instead of replacing it")
	cmd.Flags().StringVar(&opts.policy, "policy", "", "invalid row policy: abort or skip (default from shiwake.yaml)")
	cmd.Flags().StringVar(&opts.inputEncoding, "input-encoding", "", "input encoding: utf-8 or shift_jis")
	cmd.Flags().StringVar(&opts.outputEncoding, "output-encoding", "", "output encoding: utf-8 or shift_jis")

	return cmd
}

func runConvert(out io.Writer, e *env, input string, opts convertOptions) error {
	run := runlog.Entry{
		RunID:     runlog.NewRunID(),
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Command:   "convert",
		Input:     filepath.Base(input),
		Format:    opts.format,
		Output:    filepath.Base(opts.output),
	}
	log := e.log.WithField("run_id", run.RunID)

	res, err := convert(log, e, input, opts)
	run.Produced, run.Skipped, run.Excluded = res.Produced, res.Skipped, res.Excluded
	if err != nil {
		run.Status = runlog.StatusFailed
		recordRun(log, e, run)
		return err
	}
	run.Status = runlog.StatusOK
	recordRun(log, e, run)

	fmt.Fprintf(out, "produced %d, skipped %d, excluded %d\n", res.Produced, res.Skipped, res.Excluded)

	if e.cfg.Git.AutoCommit {
		commitOutput(log, e, opts.output, input)
	}
	return nil
}

func convert(log logrus.FieldLogger, e *env, input string, opts convertOptions) (journal.Result, error) {
	inCS, err := charset.Parse(firstNonEmpty(opts.inputEncoding, e.cfg.IO.InputEncoding))
	if err != nil {
		return journal.Result{}, err
	}
	outCS, err := charset.Parse(firstNonEmpty(opts.outputEncoding, e.cfg.IO.OutputEncoding))
	if err != nil {
		return journal.Result{}, err
	}
	policy, err := journal.ParsePolicy(firstNonEmpty(opts.policy, e.cfg.Validation.Policy))
	if err != nil {
		return journal.Result{}, err
	}

	done := logging.Timing(log, "parse")
	records, err := importer.DefaultRegistry().ParseFile(input, opts.format, inCS)
	done()
	if err != nil {
		return journal.Result{}, err
	}

	builder := journal.NewBuilder(e.builderOptions(), e.normalizer, e.classifier)
	svc := journal.NewService(journal.NewValidator(e.chart), builder, policy, log)

	res, err := svc.Convert(records)
	if err != nil {
		if errors.Is(err, journal.ErrValidationFailed) {
			log.Error("nothing written; fix the rows above or rerun with --policy skip")
		}
		return res, err
	}

	if err := writeOutput(opts.output, res.Entries, outCS, opts.appendOutput); err != nil {
		return res, err
	}
	return res, nil
}

// writeOutput writes entries to path. A fresh file is written to a
// temporary name and renamed into place so a failed write leaves nothing
// behind. Appending to a file that does not exist yet writes the header.
func writeOutput(path string, entries []model.Entry, cs charset.Charset, appendOutput bool) error {
	if appendOutput {
		if _, err := os.Stat(path); err == nil {
			return appendOutputFile(path, entries, cs)
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := charset.NewWriter(tmp, cs)
	if err := journal.WriteEntries(w, entries); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func appendOutputFile(path string, entries []model.Entry, cs charset.Charset) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	w := charset.NewWriter(f, cs)
	if err := journal.AppendEntries(w, entries); err != nil {
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	return f.Close()
}

// recordRun appends to the run log of an initialized books repo. Failing
// to log never fails the run.
func recordRun(log logrus.FieldLogger, e *env, run runlog.Entry) {
	if !e.hasConfig {
		return
	}
	if err := runlog.Append(e.root, []runlog.Entry{run}); err != nil {
		log.WithError(err).Warn("failed to write run log")
	}
}

// commitOutput commits the output file and run log when both live in the
// books repo.
func commitOutput(log logrus.FieldLogger, e *env, output, input string) {
	if !gitops.IsRepo(e.root) {
		log.Warn("git.auto_commit is set but the repo is not a git repository")
		return
	}

	absOut, err := filepath.Abs(output)
	if err != nil {
		log.WithError(err).Warn("skipping commit")
		return
	}
	rel, err := filepath.Rel(e.root, absOut)
	if err != nil || strings.HasPrefix(rel, "..") {
		log.WithField("output", output).Warn("output is outside the repo; skipping commit")
		return
	}

	paths := []string{rel}
	if e.hasConfig {
		paths = append(paths, filepath.Join("logs", "run-log.csv"))
	}
	author := gitops.Author{Name: e.cfg.Git.AuthorName, Email: e.cfg.Git.AuthorEmail}
	hash, err := gitops.CommitPaths(e.root, "convert: "+filepath.Base(input), author, paths...)
	if err != nil {
		log.WithError(err).Warn("git commit failed")
		return
	}
	log.WithField("commit", hash).Info("committed output")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
