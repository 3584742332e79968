package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/litmos/internal/cmd/base"
	"github.com/hashicorp-forge/litmos/internal/cmd/commands/get"
	"github.com/hashicorp-forge/litmos/internal/cmd/commands/users"
	"github.com/hashicorp-forge/litmos/internal/cmd/commands/version"
)

// Commands is the mapping of all available litmos commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := base.NewCommand(log, ui)

	Commands = map[string]cli.CommandFactory{
		"get": func() (cli.Command, error) {
			return &get.Command{Command: b}, nil
		},
		"users": func() (cli.Command, error) {
			return &users.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
