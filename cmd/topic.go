package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/acctreports/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	stdout io.Writer
	stderr io.Writer
	raw    bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `acr topic [<topic>...]

  Shows documentation for the given topics, or the list of topics.
  Use "*" for every topic.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print the markdown source.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stdout, stderr := c.stdout, c.stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{""}
	}
	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.raw {
		fmt.Fprint(stdout, doc)
		return subcommands.ExitSuccess
	}
	printMarkdown(stdout, doc)
	return subcommands.ExitSuccess
}
