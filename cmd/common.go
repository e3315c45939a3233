package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/etnz/acctreports"
	"github.com/etnz/acctreports/gnucash"
	"github.com/go-playground/validator/v10"
	"github.com/google/subcommands"
)

var validate = validator.New()

// reportFlags are the flags shared by every report command.
type reportFlags struct {
	cfg        Config
	withOutput bool // the command writes records and has an -output flag

	db           string
	output       string
	verbose      bool
	begin        string
	end          string
	inclusiveEnd bool
	ignoreLock   bool

	stdout io.Writer
	stderr io.Writer
	today  func() acctreports.Date
}

func newReportFlags(cfg Config, withOutput bool) *reportFlags {
	return &reportFlags{
		cfg:        cfg,
		withOutput: withOutput,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		today:      acctreports.Today,
	}
}

func (r *reportFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&r.db, "db", r.cfg.DB, "GnuCash sqlite book to read.")
	if r.withOutput {
		output := r.cfg.Output
		if output == "" {
			output = acctreports.CSV.String()
		}
		f.StringVar(&r.output, "output", output, "Output format: csv or json.")
	}
	f.BoolVar(&r.verbose, "verbose", r.cfg.Verbose, "Log debug information on the standard error.")
	f.StringVar(&r.begin, "begin", "", "First day of the report (YYYY-MM-DD). Defaults to January 1 of the current year.")
	f.StringVar(&r.end, "end", "", "End of the report (YYYY-MM-DD), excluded. Defaults to the last day of the previous month.")
	f.BoolVar(&r.inclusiveEnd, "inclusive-end", r.cfg.InclusiveEnd, "Include postings dated on the end day.")
	f.BoolVar(&r.ignoreLock, "ignore-lock", r.cfg.IgnoreLock, "Read the book even when GnuCash holds its lock.")
}

// options are the flag values checked before anything is read.
type options struct {
	DB     string `validate:"required"`
	Output string `validate:"omitempty,oneof=csv json"`
}

// report is what a command needs once its flags are resolved.
type report struct {
	format acctreports.Format
	begin  acctreports.Date
	end    acctreports.Date
	calc   acctreports.Calculator
	logger *slog.Logger
}

// resolve checks the flags. It never touches the book, and its errors are
// usage errors.
func (r *reportFlags) resolve() (*report, error) {
	opts := options{DB: r.db, Output: strings.ToLower(strings.TrimSpace(r.output))}
	if err := validate.Struct(opts); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			var msgs []string
			for _, e := range verrs {
				msgs = append(msgs, fmt.Sprintf("invalid -%s %q (%s)", strings.ToLower(e.Field()), e.Value(), e.Tag()))
			}
			return nil, errors.New(strings.Join(msgs, ", "))
		}
		return nil, err
	}

	rep := &report{logger: newLogger(r.stderr, r.verbose)}
	if r.withOutput {
		format, err := acctreports.ParseFormat(r.output)
		if err != nil {
			return nil, err
		}
		rep.format = format
	}

	today := r.today()
	var err error
	if rep.begin, err = acctreports.ParseDateOr(r.begin, acctreports.DefaultBegin(today)); err != nil {
		return nil, fmt.Errorf("invalid -begin: %w", err)
	}
	if rep.end, err = acctreports.ParseDateOr(r.end, acctreports.DefaultEnd(today)); err != nil {
		return nil, fmt.Errorf("invalid -end: %w", err)
	}
	if r.inclusiveEnd {
		rep.calc.Policy = acctreports.Inclusive
	}
	return rep, nil
}

// readAccounts reads every account of the book, closing it before returning.
func (r *reportFlags) readAccounts(ctx context.Context, rep *report) ([]*acctreports.Account, error) {
	opts := []gnucash.Option{gnucash.WithLogger(rep.logger)}
	if r.ignoreLock {
		opts = append(opts, gnucash.OpenIfLocked())
	}
	book, err := gnucash.Open(r.db, opts...)
	if err != nil {
		return nil, err
	}
	defer book.Close()
	return book.Accounts(ctx)
}

// run resolves the flags, reads the book and streams the records written by
// emit to the standard output.
func (r *reportFlags) run(ctx context.Context, name string, emit func(*report, *acctreports.Reporter, []*acctreports.Account) error) subcommands.ExitStatus {
	rep, err := r.resolve()
	if err != nil {
		return r.usageError(err)
	}
	rep.logger.Debug("report", "command", name, "db", r.db, "begin", rep.begin, "end", rep.end, "policy", rep.calc.Policy)

	accounts, err := r.readAccounts(ctx, rep)
	if err != nil {
		fmt.Fprintf(r.stderr, "Error reading book %q: %v\n", r.db, err)
		return subcommands.ExitFailure
	}

	sink := acctreports.NewSink(rep.format, r.stdout)
	reporter := &acctreports.Reporter{Calculator: rep.calc, Sink: sink}
	if err := emit(rep, reporter, accounts); err != nil {
		fmt.Fprintf(r.stderr, "Error in %s: %v\n", name, err)
		return subcommands.ExitFailure
	}
	if err := sink.Flush(); err != nil {
		fmt.Fprintf(r.stderr, "Error writing %s: %v\n", name, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// accountNames merges a comma separated list of accounts with a file of accounts.
func accountNames(list, file string) ([]string, error) {
	names := acctreports.CsvToList(list)
	if file == "" {
		return names, nil
	}
	more, err := acctreports.ReadListFile(file)
	if err != nil {
		return nil, fmt.Errorf("invalid -accounts-file: %w", err)
	}
	return append(names, more...), nil
}

// usageError reports a command line error.
func (r *reportFlags) usageError(err error) subcommands.ExitStatus {
	fmt.Fprintf(r.stderr, "Error: %v\n", err)
	return subcommands.ExitUsageError
}
