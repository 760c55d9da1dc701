package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/shiwake/internal/charset"
	"github.com/cleared-dev/shiwake/internal/classify"
	"github.com/cleared-dev/shiwake/internal/journal"
	"github.com/cleared-dev/shiwake/internal/runlog"
)

func newGeneralizeCommand(g *globalFlags) *cobra.Command {
	var output, encoding string

	cmd := &cobra.Command{
		Use:   "generalize <yayoi.csv>",
		Short: "Rewrite the 摘要 column of a Yayoi CSV into generic labels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(g)
			if err != nil {
				return err
			}
			input := args[0]
			if output == "" {
				output = generalizedName(input, time.Now())
			}
			cs, err := charset.Parse(firstNonEmpty(encoding, e.cfg.IO.OutputEncoding))
			if err != nil {
				return err
			}

			n, err := runGeneralize(input, output, cs, e.classifier)
			run := runlog.Entry{
				RunID:     runlog.NewRunID(),
				Timestamp: time.Now().UTC().Truncate(time.Second),
				Command:   "generalize",
				Input:     filepath.Base(input),
				Output:    filepath.Base(output),
				Produced:  n,
				Status:    runlog.StatusOK,
			}
			if err != nil {
				run.Status = runlog.StatusFailed
			}
			recordRun(e.log.WithField("run_id", run.RunID), e, run)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "generalized %d entries into %s\n", n, output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <name>_generalized_<timestamp>.csv)")
	cmd.Flags().StringVar(&encoding, "encoding", "", "encoding of both files: utf-8 or shift_jis")

	return cmd
}

func runGeneralize(input, output string, cs charset.Charset, c *classify.Classifier) (int, error) {
	in, err := os.Open(input)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", input, err)
	}
	defer in.Close()

	entries, err := journal.ReadEntries(charset.NewReader(in, cs))
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", input, err)
	}

	entries = journal.Generalize(entries, c)
	if err := writeOutput(output, entries, cs, false); err != nil {
		return 0, err
	}
	return len(entries), nil
}

// generalizedName derives the default output path next to input.
func generalizedName(input string, now time.Time) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	if ext == "" {
		ext = ".csv"
	}
	return fmt.Sprintf("%s_generalized_%s%s", base, now.Format("20060102_150405"), ext)
}
