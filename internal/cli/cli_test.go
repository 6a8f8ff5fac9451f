package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamegrid/internal/config"
	"gamegrid/internal/domain"
	"gamegrid/internal/ui/state"
)

const testCatalog = `genres = ["Action", "Puzzle"]

[[games]]
title = "Alpha Strike"
description = "Fast arena combat."
genre = ["Action"]
rating = 8.1
release_year = 2019
developer = "North"

[[games]]
title = "Box Logic"
description = "Push crates onto switches."
genre = ["Puzzle"]
rating = 7.4
release_year = 2016
developer = "South"

[[games]]
title = "Beta Blast"
description = "Arcade shooting with friends."
genre = ["Action"]
rating = 6.9
release_year = 2021
developer = "East"

[[games]]
title = "Gamma Ray"
description = "A puzzle about light."
genre = ["Puzzle", "Action"]
rating = 8.8
release_year = 2023
developer = "West"
`

// setup isolates the config dir and writes a small catalog
func setup(t *testing.T) (catalogPath, configPath string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	catalogPath = filepath.Join(dir, "games.toml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(testCatalog), 0644))

	cfg := config.DefaultConfig()
	cfg.UISettings.PageSizes = []int{2, 4}
	cfg.UISettings.DefaultPageSize = 2
	configPath = filepath.Join(dir, "config.toml")
	require.NoError(t, config.NewConfigServiceForPath(configPath).Save(cfg))
	return catalogPath, configPath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	root := NewRootCmd()
	assert.Equal(t, "gamegrid", root.Use)
	assert.NotEmpty(t, root.Short)
	assert.NotEmpty(t, root.Long)

	names := map[string]*cobra.Command{}
	for _, c := range root.Commands() {
		names[c.Name()] = c
	}
	for _, want := range []string{"serve", "list", "genres", "config"} {
		assert.Contains(t, names, want)
	}
}

func TestPersistentFlags(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"config", "catalog", "page-size", "debug", "log-file"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), name)
	}
}

func TestListFirstPage(t *testing.T) {
	catalogPath, configPath := setup(t)

	out, err := run(t, "list", "--catalog", catalogPath, "--config", configPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Showing 1-2 of 4 games · page 1 of 2")
	assert.Contains(t, out, "Alpha Strike")
	assert.Contains(t, out, "Box Logic")
	assert.NotContains(t, out, "Beta Blast")
	assert.Contains(t, out, "[1]  2  Next ›")
}

func TestListFilters(t *testing.T) {
	catalogPath, configPath := setup(t)

	out, err := run(t, "list", "--catalog", catalogPath, "--config", configPath,
		"--genre", "Action", "--size", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1-3 of 3 games · page 1 of 1")
	assert.Contains(t, out, "Gamma Ray")
	assert.NotContains(t, out, "Box Logic")

	out, err = run(t, "list", "--catalog", catalogPath, "--config", configPath, "--query", "LIGHT")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1-1 of 1 games")
	assert.Contains(t, out, "Gamma Ray")
}

func TestListEmpty(t *testing.T) {
	catalogPath, configPath := setup(t)

	out, err := run(t, "list", "--catalog", catalogPath, "--config", configPath, "--query", "zzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No matching games")
	assert.Contains(t, out, "Try another search term or genre.")
}

func TestListJSONClampsPage(t *testing.T) {
	catalogPath, configPath := setup(t)

	out, err := run(t, "list", "--catalog", catalogPath, "--config", configPath, "--page", "99", "--json")
	require.NoError(t, err)

	var frame state.Frame
	require.NoError(t, json.Unmarshal([]byte(out), &frame))
	assert.Equal(t, 2, frame.CurrentPage)
	assert.Equal(t, 3, frame.StartIndex)
	assert.Equal(t, 4, frame.EndIndex)
	require.Len(t, frame.Items, 2)
	assert.Equal(t, "Beta Blast", frame.Items[0].Title)
}

func TestListRejectsPageSize(t *testing.T) {
	catalogPath, configPath := setup(t)

	_, err := run(t, "list", "--catalog", catalogPath, "--config", configPath, "--size", "3")
	require.Error(t, err)
	assert.ErrorIs(t, err, state.ErrInvalidPageSize)
}

func TestPageSizeFlagMustBeConfigured(t *testing.T) {
	catalogPath, configPath := setup(t)

	_, err := run(t, "list", "--catalog", catalogPath, "--config", configPath, "--page-size", "5")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidPageSizes)

	out, err := run(t, "list", "--catalog", catalogPath, "--config", configPath, "--page-size", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1-4 of 4 games")
}

func TestEnvOverridesConfig(t *testing.T) {
	catalogPath, configPath := setup(t)
	t.Setenv("GAMEGRID_CATALOG", catalogPath)
	t.Setenv("GAMEGRID_PAGE_SIZE", "4")

	out, err := run(t, "list", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1-4 of 4 games")
}

func TestListEmbeddedCatalog(t *testing.T) {
	setup(t)

	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Showing 1-12 of 30 games · page 1 of 3")
	assert.Contains(t, out, "The Legend of Zelda: Breath of the Wild")
}

func TestGenres(t *testing.T) {
	catalogPath, configPath := setup(t)

	out, err := run(t, "genres", "--catalog", catalogPath, "--config", configPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], domain.AllGenres))
	assert.Equal(t, "4", strings.TrimSpace(strings.TrimPrefix(lines[0], domain.AllGenres)))
	assert.Equal(t, []string{"Action", "3"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"Puzzle", "2"}, strings.Fields(lines[2]))
}

func TestMissingCatalogFails(t *testing.T) {
	_, configPath := setup(t)

	_, err := run(t, "list", "--config", configPath, "--catalog", filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load catalog")
}

func TestConfigInit(t *testing.T) {
	setup(t)
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	out, err := run(t, "config", "init", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	cfg, err := config.NewConfigServiceForPath(path).Load()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	_, err = run(t, "config", "init", "--config", path)
	assert.ErrorIs(t, err, ErrConfigExists)

	_, err = run(t, "config", "init", "--config", path, "--force")
	assert.NoError(t, err)
}

func TestDisplayAddr(t *testing.T) {
	assert.Equal(t, "localhost:8080", displayAddr(":8080"))
	assert.Equal(t, "localhost:9000", displayAddr("[::]:9000"))
	assert.Equal(t, "localhost:80", displayAddr("0.0.0.0:80"))
	assert.Equal(t, "127.0.0.1:8080", displayAddr("127.0.0.1:8080"))
}
