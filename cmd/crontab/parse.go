package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vnykmshr/crontab/internal/logx"
	cterrors "github.com/vnykmshr/crontab/pkg/common/errors"
	"github.com/vnykmshr/crontab/pkg/source"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [expression]...",
		Short: "Parse expressions given as arguments, or crontab lines from stdin",
		Long: `Parse each argument as one crontab line, exactly as written: an argument
starting with '#' or a space is an error. Entries are numbered arg:N.

With no arguments, read a crontab file from stdin. Leading indentation is
dropped, blank lines and # comments are skipped, and entries are numbered
line:N by their position.

Lines that fail to parse are reported and make the command exit non-zero.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			var (
				entries []source.Entry
				err     error
			)
			if len(args) > 0 {
				entries, err = a.parseArgs(args)
			} else {
				entries, err = source.ReadAll(cmd.Context(), cmd.InOrStdin(), a.parser)
			}
			a.log.Debug("parsed input",
				logx.Int("entries", len(entries)),
				logx.Duration("elapsed", time.Since(start)))

			if werr := writeEntries(cmd.OutOrStdout(), a.output, entries); werr != nil {
				return werr
			}
			return err
		},
	}
}

// parseArgs parses every argument as a whole line, keeping the entries that
// succeed.
func (a *app) parseArgs(args []string) ([]source.Entry, error) {
	var (
		entries []source.Entry
		errs    []error
	)
	for i, arg := range args {
		timer, rest, err := a.parser.Parse(arg)
		if err != nil {
			errs = append(errs, cterrors.NewOperationError("cli", "parse", err).
				WithContext(fmt.Sprintf("argument %d", i+1)))
			continue
		}
		entries = append(entries, source.Entry{
			ID:        fmt.Sprintf("arg:%d", i+1),
			Line:      arg,
			Timer:     timer,
			Remainder: rest,
		})
	}
	return entries, errors.Join(errs...)
}
