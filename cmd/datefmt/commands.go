package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	datefmt "github.com/goliatone/go-datefmt"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the date format catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, format := range datefmt.Formats() {
				fmt.Fprintf(w, "%s\t%s\n", format.Name(), format.Pattern())
			}
			return w.Flush()
		},
	}
}

func newConvertCommand(a *app) *cobra.Command {
	var from, to, toLocale string

	cmd := &cobra.Command{
		Use:     "convert <text>",
		Short:   "Parse text with one format and render it with another",
		Example: `  datefmt convert --from shortDate --to fullDate --locale ru 01.02.2024`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromFormat, err := datefmt.ParseDateFormat(from)
			if err != nil {
				return err
			}
			toFormat, err := datefmt.ParseDateFormat(to)
			if err != nil {
				return err
			}

			outLocale := a.locale
			if toLocale != "" {
				if outLocale, err = datefmt.ParseLocaleTag(toLocale); err != nil {
					return err
				}
			}

			formatter, err := a.formatter()
			if err != nil {
				return err
			}

			date, ok := formatter.DateFromStringWithConfig(args[0], datefmt.FormatterConfig{Format: fromFormat, Locale: a.locale})
			if !ok {
				return fmt.Errorf("%q does not match %s (%s)", args[0], fromFormat.Name(), fromFormat.Pattern())
			}

			out := formatter.StringFromDateWithConfig(date, datefmt.FormatterConfig{Format: toFormat, Locale: outLocale})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", datefmt.APIFullDateFormat.Name(), "format of the input text")
	cmd.Flags().StringVar(&to, "to", datefmt.APIFullDateFormat.Name(), "format of the output")
	cmd.Flags().StringVar(&toLocale, "to-locale", "", "locale of the output (default --locale)")
	return cmd
}

func newAgoCommand(a *app) *cobra.Command {
	var formatName, now string
	var showUnit bool

	cmd := &cobra.Command{
		Use:     "ago <text>",
		Short:   "Render how long ago a date was",
		Example: `  datefmt ago 2024-06-15T11:55:00.000+0300`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := datefmt.ParseDateFormat(formatName)
			if err != nil {
				return err
			}

			var extra []datefmt.Option
			if now != "" {
				fixed, err := time.Parse(time.RFC3339, now)
				if err != nil {
					return fmt.Errorf("invalid --now: %w", err)
				}
				extra = append(extra, datefmt.WithClock(datefmt.FixedClock(fixed)))
			}

			formatter, err := a.formatter(extra...)
			if err != nil {
				return err
			}

			elapsed := formatter.TimeAgo(args[0], format)
			if showUnit {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", elapsed.Unit, elapsed.Text)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), elapsed)
			return err
		},
	}

	cmd.Flags().StringVar(&formatName, "format", datefmt.APIFullDateFormat.Name(), "format of the input text")
	cmd.Flags().StringVar(&now, "now", "", "reference time in RFC 3339 (default current time)")
	cmd.Flags().BoolVar(&showUnit, "unit", false, "print the selected unit before the phrase")
	return cmd
}

func newPluralCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "plural <count> <singular> <plural> <plural-genitive>",
		Short:   "Pick the Russian word form agreeing with a count",
		Example: `  datefmt plural 22 год года лет`,
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid count %q: %w", args[0], err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", count, datefmt.Agree(count, args[1], args[2], args[3]))
			return err
		},
	}
}
