package version

import (
	"github.com/hashicorp-forge/litmos/internal/cmd/base"
	"github.com/hashicorp-forge/litmos/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the litmos CLI version"
}

func (c *Command) Help() string {
	return "Usage: litmos version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output("litmos v" + version.Version)
	return 0
}
