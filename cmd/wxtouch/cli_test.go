package main_test

import (
	"bytes"
	"testing"

	main "github.com/HeteroCat/wx-touch/cmd/wxtouch"
	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		main.Vars(),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"search", "latest", "extract", "keyword"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestCLI_ParsesKeywordFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli,
		kong.Exit(func(int) {}),
		main.Vars(),
	)
	require.NoError(t, err)

	_, err = parser.Parse([]string{"keyword", "AI", "Acme", "--type", "content", "-n", "20", "--offset", "40"})

	require.NoError(t, err)
	assert.Equal(t, "AI", cli.Keyword.Keyword)
	assert.Equal(t, "Acme", cli.Keyword.Nickname)
	assert.Equal(t, "content", cli.Keyword.Type)
	assert.Equal(t, 20, cli.Keyword.Count)
	assert.Equal(t, 40, cli.Keyword.Offset)
}

func TestCLI_RejectsUnknownSearchType(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli,
		kong.Exit(func(int) {}),
		main.Vars(),
	)
	require.NoError(t, err)

	_, err = parser.Parse([]string{"keyword", "AI", "Acme", "--type", "author"})

	require.Error(t, err)
}
