package get

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/litmos/internal/cmd/base"
	"github.com/hashicorp-forge/litmos/pkg/litmos"
)

type Command struct {
	*base.Command

	flagConfig string
	flagFormat string
	flagRaw    bool
	flagParams base.KeyValueFlag
}

func (c *Command) Synopsis() string {
	return "Send a GET request to a Litmos endpoint"
}

func (c *Command) Help() string {
	return `Usage: litmos get [options] <path>

  Sends a GET request to the given endpoint path, relative to the API base
  URL, and prints the normalized response.

  Example:

      $ litmos get -param search=smith -param limit=10 users` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	if c.flagParams == nil {
		c.flagParams = base.KeyValueFlag{}
	}

	f := base.NewFlagSet(flag.NewFlagSet("get", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to an HCL config file.",
	)
	f.StringVar(
		&c.flagFormat, "format", base.FormatJSON, "Output format: json or yaml.",
	)
	f.BoolVar(
		&c.flagRaw, "raw", false,
		"Print the response body without normalizing it.",
	)
	f.Var(
		c.flagParams, "param",
		"Query parameter as key=value. May be repeated.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if flags.NArg() != 1 {
		c.UI.Error("expected exactly one endpoint path argument")
		return 1
	}
	path := flags.Arg(0)

	client, err := c.NewClient(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	params := litmos.Params{}
	for k, v := range c.flagParams {
		params[k] = v
	}
	if c.flagRaw {
		params[litmos.DontParseResponse] = true
	}

	resp, err := client.Get(context.Background(), path, params)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error requesting %s: %v", path, err))
		return 1
	}

	switch resp.Kind {
	case litmos.ResponseEmpty:
		return 0
	case litmos.ResponseRaw:
		c.UI.Output(string(resp.Body))
		return 0
	}

	out, err := base.Render(c.flagFormat, resp.Value)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	c.UI.Output(out)

	return 0
}
