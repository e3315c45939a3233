// Package cmd implements the acr command line application.
package cmd

import (
	"github.com/google/subcommands"
)

// Commands returns every acr subcommand, flag defaults taken from cfg.
func Commands(cfg Config) []subcommands.Command {
	return []subcommands.Command{
		&chartCmd{reportFlags: newReportFlags(cfg, true)},
		&balancesCmd{reportFlags: newReportFlags(cfg, true)},
		&budgetCmd{reportFlags: newReportFlags(cfg, true)},
		&displayAccountsCmd{reportFlags: newReportFlags(cfg, false)},
		&topicCmd{},
	}
}
