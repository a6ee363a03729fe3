package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCallCommand(t *testing.T) {
	t.Parallel()

	cmd := NewCallCommand()
	assert.Equal(t, "call RESOURCE OPERATION [ID...]", cmd.Use)
	assert.Equal(t, "Call any resource operation", cmd.Short)
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Args)

	assert.NotNil(t, cmd.Flags().Lookup("query"))
	assert.NotNil(t, cmd.Flags().Lookup("data"))
	assert.NotNil(t, cmd.Flags().Lookup("select"))
	assert.Error(t, cmd.Args(cmd, []string{"projects"}))
	assert.NoError(t, cmd.Args(cmd, []string{"projects", "get", "42"}))
}

func TestNewConfigCommand(t *testing.T) {
	t.Parallel()

	cmd := NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)
	assert.Equal(t, "Manage CLI configuration", cmd.Short)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.ElementsMatch(t, []string{"show", "set", "unset"}, commandNames)
}

func TestNewResourcesCommand(t *testing.T) {
	t.Parallel()

	cmd := NewResourcesCommand()
	assert.Equal(t, "resources", cmd.Use)
	assert.Equal(t, []string{"resource", "res"}, cmd.Aliases)
	assert.NotNil(t, cmd.RunE)
}

func TestNewAccountCommand(t *testing.T) {
	t.Parallel()

	cmd := NewAccountCommand()
	assert.Equal(t, "account", cmd.Use)
	assert.Equal(t, "Display account details", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestNewLoginCommands(t *testing.T) {
	t.Parallel()

	login := NewLoginCommand()
	assert.Equal(t, "login", login.Use)
	assert.Equal(t, "Login to Teamwork", login.Short)
	assert.NotNil(t, login.RunE)

	logout := NewLogoutCommand()
	assert.Equal(t, "logout", logout.Use)
	assert.NotNil(t, logout.RunE)
}

func TestNewVersionCommand(t *testing.T) {
	t.Parallel()

	cmd := NewVersionCommand("1.2.3", "abc123", "2026-01-01")
	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Display version information", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}
