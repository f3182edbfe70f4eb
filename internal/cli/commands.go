package cli

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"file-indexer/internal/indexer"
	"file-indexer/internal/logging"
	"file-indexer/internal/query"
)

// NotFound is printed by checksum when no record has the requested name
const NotFound = "File not found"

func (a *app) indexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index <root> [worker_count]",
		Short: "Index a directory tree and print a summary",
		Long: `Index walks <root>, hashes every regular file and prints a summary to
stderr. worker_count defaults to --workers (4); 0 sizes the pool from the
available CPUs.`,
		Args: args(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, argv []string) error {
			numWorkers := a.cfg.Workers
			if len(argv) == 2 {
				n, err := strconv.Atoi(argv[1])
				if err != nil || n < 0 {
					return usageError(cmd, fmt.Errorf("worker_count must be a non-negative integer, got %q", argv[1]))
				}
				numWorkers = n
			}

			idx := indexer.New(argv[0], indexer.Config{
				Workers:    numWorkers,
				SkipHidden: a.cfg.SkipHidden,
			})
			if _, err := idx.Run(); err != nil {
				logging.Error("Index failed: %v", err)
				return nil
			}

			printSummary(cmd.ErrOrStderr(), idx.Stats())
			return nil
		},
	}
}

func (a *app) findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <root> <min_megabytes>",
		Short: "List files strictly larger than min_megabytes",
		Args:  args(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, argv []string) error {
			mb, err := strconv.ParseUint(argv[1], 10, 64)
			if err != nil {
				return usageError(cmd, fmt.Errorf("min_megabytes must be a non-negative integer, got %q", argv[1]))
			}
			if mb > query.MaxMegabytes {
				return usageError(cmd, fmt.Errorf("min_megabytes must be at most %d, got %d", uint64(query.MaxMegabytes), mb))
			}

			records := a.index(argv[0])
			out := cmd.OutOrStdout()
			for _, r := range query.FindLargerThan(records, query.MegabytesToBytes(mb)) {
				fmt.Fprintf(out, "%s %d\n", r.Path, r.Size)
			}
			return nil
		},
	}
}

func (a *app) checksumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checksum <root> <filename>",
		Short: "Print the SHA-256 checksum of the first file named filename",
		Args:  args(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, argv []string) error {
			records := a.index(argv[0])
			if r, ok := query.ChecksumOf(records, argv[1]); ok {
				fmt.Fprintln(cmd.OutOrStdout(), r.Digest)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), NotFound)
			}
			return nil
		},
	}
}

// index runs an index for a query command. Failures are logged and produce
// an empty result so that queries still answer.
func (a *app) index(root string) []indexer.Record {
	records, err := indexer.New(root, indexer.Config{
		Workers:    a.cfg.Workers,
		SkipHidden: a.cfg.SkipHidden,
	}).Run()
	if err != nil {
		logging.Error("Index failed: %v", err)
		return nil
	}
	return records
}

func printSummary(w io.Writer, stats indexer.Stats) {
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)

	ok.Fprintf(w, "indexed %d files (%s) in %v", stats.Indexed,
		humanize.IBytes(stats.BytesHashed), stats.Duration.Round(time.Millisecond))
	if stats.Skipped > 0 || stats.WalkErrors > 0 {
		fmt.Fprint(w, ", ")
		warn.Fprintf(w, "%d skipped", stats.Skipped+stats.WalkErrors)
	} else {
		fmt.Fprint(w, ", 0 skipped")
	}
	fmt.Fprintln(w)
}
