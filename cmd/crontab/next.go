package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vnykmshr/crontab/internal/logx"
	"github.com/vnykmshr/crontab/pkg/common/validation"
	"github.com/vnykmshr/crontab/pkg/schedule"
)

func newNextCmd(a *app) *cobra.Command {
	var (
		count int
		from  string
	)

	cmd := &cobra.Command{
		Use:   "next <expression>",
		Short: "Print the next fire times of an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.ValidatePositive("next", "count", count); err != nil {
				return err
			}

			start := time.Now()
			if from != "" {
				t, err := time.Parse(time.RFC3339, from)
				if err != nil {
					return fmt.Errorf("invalid --from: %w", err)
				}
				start = t
			}

			timer, rest, err := a.parser.Parse(args[0])
			if err != nil {
				return err
			}
			if rest != "" {
				a.log.Warn("ignoring text after the schedule", logx.String("rest", rest))
			}

			spec, err := schedule.NewCompiler(a.parser.Registry()).Compile(timer)
			if err != nil {
				return err
			}
			times := schedule.NextN(spec, start, count)

			if a.output != "text" {
				out := make([]string, len(times))
				for i, t := range times {
					out[i] = t.Format(time.RFC3339)
				}
				return render(cmd.OutOrStdout(), a.output, out)
			}
			for _, t := range times {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 5, "number of fire times to print")
	cmd.Flags().StringVar(&from, "from", "", "start time in RFC 3339 (default now)")
	return cmd
}
