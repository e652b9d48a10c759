package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/controls/input"
	"github.com/milk9111/controls/scheme"
	"github.com/milk9111/controls/schemefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGlobals(t *testing.T) *Globals {
	t.Helper()
	return &Globals{File: filepath.Join(t.TempDir(), "schemes.yaml")}
}

func TestListMissingFileIsEmpty(t *testing.T) {
	g := newGlobals(t)
	var out bytes.Buffer
	require.NoError(t, (&ListCmd{}).Run(g, &out))
	assert.Empty(t, out.String())
}

func TestAddListActivate(t *testing.T) {
	g := newGlobals(t)
	var out bytes.Buffer

	require.NoError(t, (&AddCmd{Name: "arrows", Controls: []string{"up=up", "down=DOWN"}, Active: true}).Run(g, &out))
	require.NoError(t, (&AddCmd{Name: "pad", Controls: []string{"jump=space"}}).Run(g, &out))

	schemes, err := schemefile.Load(g.File)
	require.NoError(t, err)
	require.Len(t, schemes, 2)
	assert.True(t, schemes[0].Active)
	assert.Equal(t, "UP", schemes[0].Controls["up"])
	assert.False(t, schemes[1].Active)

	out.Reset()
	require.NoError(t, (&ActivateCmd{Name: "pad"}).Run(g, &out))
	assert.Equal(t, "active: pad\n", out.String())

	out.Reset()
	require.NoError(t, (&ListCmd{}).Run(g, &out))
	assert.Equal(t, "  arrows\tdown=DOWN up=UP\n* pad\tjump=SPACE\n", out.String())
}

func TestAddRejectsBadInput(t *testing.T) {
	g := newGlobals(t)
	var out bytes.Buffer

	err := (&AddCmd{Name: "bad", Controls: []string{"jump"}}).Run(g, &out)
	assert.Error(t, err)

	err = (&AddCmd{Name: "bad", Controls: []string{"jump=NOPE"}}).Run(g, &out)
	assert.ErrorIs(t, err, input.ErrUnknownKey)

	require.NoError(t, (&AddCmd{Name: "dup", Controls: []string{"jump=J"}}).Run(g, &out))
	assert.Error(t, (&AddCmd{Name: "dup", Controls: []string{"jump=K"}}).Run(g, &out))
}

func TestEditKeepsOtherControls(t *testing.T) {
	g := newGlobals(t)
	var out bytes.Buffer
	require.NoError(t, (&AddCmd{Name: "arrows", Controls: []string{"up=UP", "down=DOWN"}, Active: true, OnActive: "azerty.tengo"}).Run(g, &out))
	require.NoError(t, (&EditCmd{Name: "arrows", Controls: []string{"up=W"}, Rename: "mixed"}).Run(g, &out))

	schemes, err := schemefile.Load(g.File)
	require.NoError(t, err)
	require.Len(t, schemes, 1)
	s := schemes[0]
	assert.Equal(t, "mixed", s.Name)
	assert.Equal(t, scheme.Controls{"up": "W", "down": "DOWN"}, s.Controls)
	assert.Equal(t, "azerty.tengo", s.OnActive)
	assert.True(t, s.Active)

	assert.ErrorIs(t, (&EditCmd{Name: "missing"}).Run(g, &out), scheme.ErrSchemeNotFound)
}

func TestDeleteActivatesFirst(t *testing.T) {
	g := newGlobals(t)
	var out bytes.Buffer
	require.NoError(t, (&AddCmd{Name: "a", Controls: []string{"up=W"}}).Run(g, &out))
	require.NoError(t, (&AddCmd{Name: "b", Controls: []string{"up=UP"}, Active: true}).Run(g, &out))

	out.Reset()
	require.NoError(t, (&DeleteCmd{Name: "b", Destroy: true}).Run(g, &out))
	assert.Equal(t, "deleted b, active: a\n", out.String())

	out.Reset()
	require.NoError(t, (&DeleteCmd{Name: "a"}).Run(g, &out))
	assert.Equal(t, "deleted a, no active scheme\n", out.String())

	assert.ErrorIs(t, (&DeleteCmd{Name: "a"}).Run(g, &out), scheme.ErrSchemeNotFound)
}

func TestPresetOnlyOnce(t *testing.T) {
	g := newGlobals(t)
	var out bytes.Buffer
	require.NoError(t, (&PresetCmd{Kind: "wasd", Active: true}).Run(g, &out))
	assert.Equal(t, "added "+scheme.WASDKeysName+"\n", out.String())

	err := (&PresetCmd{Kind: "wasd"}).Run(g, &out)
	assert.ErrorIs(t, err, scheme.ErrDuplicatePreset)

	require.NoError(t, (&PresetCmd{Kind: "cursor"}).Run(g, &out))
	schemes, err := schemefile.Load(g.File)
	require.NoError(t, err)
	require.Len(t, schemes, 2)
	assert.Equal(t, scheme.CursorKeysName, schemes[1].Name)
}

func TestExport(t *testing.T) {
	g := newGlobals(t)
	var out bytes.Buffer
	require.NoError(t, (&AddCmd{Name: "arrows", Controls: []string{"up=UP"}, Active: true}).Run(g, &out))

	out.Reset()
	require.NoError(t, (&ExportCmd{Format: "json"}).Run(g, &out))
	decoded, err := schemefile.Decode(schemefile.FormatJSON, out.Bytes())
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	assert.Equal(t, "arrows", decoded[0].Name)

	target := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, (&ExportCmd{Format: "toml", Output: target}).Run(g, &out))
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	loaded, err := schemefile.Decode(schemefile.FormatTOML, data)
	require.NoError(t, err)
	assert.Equal(t, "UP", loaded[0].Controls["up"])

	assert.Error(t, (&ExportCmd{Format: "xml", Output: filepath.Join(t.TempDir(), "out.txt")}).Run(g, &out))
}
