package users

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/litmos/internal/cmd/base"
	"github.com/hashicorp-forge/litmos/pkg/litmos/resources"
)

type Command struct {
	*base.Command

	flagConfig string
	flagFormat string
	flagSearch string
	flagStart  int
	flagLimit  int
}

func (c *Command) Synopsis() string {
	return "List Litmos users"
}

func (c *Command) Help() string {
	return `Usage: litmos users [options]

  Lists users, optionally filtered by a search term.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("users", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to an HCL config file.",
	)
	f.StringVar(
		&c.flagFormat, "format", base.FormatJSON, "Output format: json or yaml.",
	)
	f.StringVar(
		&c.flagSearch, "search", "", "Only list users matching this term.",
	)
	f.IntVar(
		&c.flagStart, "start", 0, "Index of the first user to return.",
	)
	f.IntVar(
		&c.flagLimit, "limit", 0, "Maximum number of users to return.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	logger, ui := c.Log, c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagStart < 0 || c.flagLimit < 0 {
		ui.Error("start and limit must be non-negative")
		return 1
	}

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	users, err := resources.New(client).Users.List(context.Background(), resources.ListOptions{
		Search: c.flagSearch,
		Start:  c.flagStart,
		Limit:  c.flagLimit,
	})
	if err != nil {
		ui.Error(fmt.Sprintf("error listing users: %v", err))
		return 1
	}
	logger.Debug("listed users", "count", len(users))

	out, err := base.Render(c.flagFormat, users)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	ui.Output(out)

	return 0
}
