// ABOUTME: Tests for seed file parsing
// ABOUTME: Covers YAML and TOML formats plus unsupported extensions

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeedFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeed_YAML(t *testing.T) {
	path := writeSeedFile(t, "seed.yaml", `
authors:
  - id: a1
    name: Ann
    age: 34
    email: ann@x.io
posts:
  - id: p1
    title: First
    body: Hello
    published: true
    author: a1
comments:
  - id: c1
    text: hi
    author: a1
    post: p1
`)

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, seed.Authors, 1)
	require.Len(t, seed.Posts, 1)
	require.Len(t, seed.Comments, 1)

	assert.Equal(t, "Ann", seed.Authors[0].Name)
	require.NotNil(t, seed.Authors[0].Age)
	assert.Equal(t, 34, *seed.Authors[0].Age)
	assert.True(t, seed.Posts[0].Published)
	assert.Equal(t, "a1", seed.Comments[0].AuthorID)
	assert.Equal(t, "p1", seed.Comments[0].PostID)
}

func TestLoadSeed_TOML(t *testing.T) {
	path := writeSeedFile(t, "seed.toml", `
[[authors]]
id = "a1"
name = "Ann"
email = "ann@x.io"

[[posts]]
id = "p1"
title = "First"
body = "Hello"
published = false
author = "a1"
`)

	seed, err := LoadSeed(path)
	require.NoError(t, err)
	require.Len(t, seed.Authors, 1)
	require.Len(t, seed.Posts, 1)

	assert.Nil(t, seed.Authors[0].Age)
	assert.False(t, seed.Posts[0].Published)
}

func TestLoadSeed_UnsupportedExtension(t *testing.T) {
	path := writeSeedFile(t, "seed.json", `{}`)

	_, err := LoadSeed(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported seed file extension")
}

func TestLoadSeed_MissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
