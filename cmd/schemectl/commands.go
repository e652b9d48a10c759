package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/milk9111/controls/input"
	"github.com/milk9111/controls/scheme"
	"github.com/milk9111/controls/schemefile"
)

type Globals struct {
	File string `help:"Scheme file to edit." short:"f" default:"schemes.yaml" type:"path"`
}

// open loads the file into a fresh registry. A missing file is an empty
// store. Active schemes are bound against the keyboard, which rejects
// unknown key codes.
func (g *Globals) open() (*scheme.Registry, error) {
	r := scheme.New(scheme.NewStore(), input.NewKeyboard())

	schemes, err := schemefile.Load(g.File)
	if errors.Is(err, os.ErrNotExist) {
		return r, nil
	}
	if err != nil {
		return nil, err
	}
	if err := r.AddMultiple(schemes); err != nil {
		return nil, err
	}
	return r, nil
}

func (g *Globals) save(r *scheme.Registry) error {
	return schemefile.Save(g.File, r.Schemes())
}

func parseControls(pairs []string) (scheme.Controls, error) {
	controls := scheme.Controls{}
	for _, pair := range pairs {
		action, code, ok := strings.Cut(pair, "=")
		action = strings.TrimSpace(action)
		code = strings.TrimSpace(code)
		if !ok || action == "" || code == "" {
			return nil, fmt.Errorf("schemectl: expected ACTION=KEY, got %q", pair)
		}
		if _, err := input.ParseKey(code); err != nil {
			return nil, fmt.Errorf("schemectl: %s: %w", action, err)
		}
		controls[action] = strings.ToUpper(code)
	}
	return controls, nil
}

func formatScheme(s *scheme.Scheme) string {
	marker := " "
	if s.Active {
		marker = "*"
	}
	parts := make([]string, 0, len(s.Controls))
	for _, action := range s.Controls.Actions() {
		parts = append(parts, action+"="+s.Controls[action])
	}
	line := fmt.Sprintf("%s %s\t%s", marker, s.Name, strings.Join(parts, " "))
	if s.OnActive != "" {
		line += "\t(" + s.OnActive + ")"
	}
	return line
}

type ListCmd struct{}

func (c *ListCmd) Run(g *Globals, out io.Writer) error {
	r, err := g.open()
	if err != nil {
		return err
	}
	for _, s := range r.Schemes() {
		fmt.Fprintln(out, formatScheme(s))
	}
	return nil
}

type AddCmd struct {
	Name     string   `arg:"" help:"Scheme name."`
	Controls []string `arg:"" help:"ACTION=KEY pairs."`
	Active   bool     `help:"Make the new scheme active."`
	OnActive string   `help:"Activation hook script."`
}

func (c *AddCmd) Run(g *Globals, out io.Writer) error {
	controls, err := parseControls(c.Controls)
	if err != nil {
		return err
	}
	r, err := g.open()
	if err != nil {
		return err
	}
	if _, err := r.Get(c.Name, false); err == nil {
		return fmt.Errorf("schemectl: scheme %q already exists", c.Name)
	}
	if err := r.Add(&scheme.Scheme{Name: c.Name, Controls: controls, Active: c.Active, OnActive: c.OnActive}); err != nil {
		return err
	}
	if err := g.save(r); err != nil {
		return err
	}
	fmt.Fprintf(out, "added %s\n", c.Name)
	return nil
}

type EditCmd struct {
	Name     string   `arg:"" help:"Scheme name."`
	Controls []string `arg:"" help:"ACTION=KEY pairs to set."`
	Rename   string   `help:"New name for the scheme."`
}

func (c *EditCmd) Run(g *Globals, out io.Writer) error {
	changes, err := parseControls(c.Controls)
	if err != nil {
		return err
	}
	r, err := g.open()
	if err != nil {
		return err
	}
	old, err := r.Get(c.Name, false)
	if err != nil {
		return err
	}

	cfg := &scheme.Scheme{Name: old.Name, Controls: old.Controls.Clone(), OnActive: old.OnActive}
	if c.Rename != "" {
		cfg.Name = c.Rename
	}
	for action, code := range changes {
		cfg.Controls[action] = code
	}
	if err := r.Edit(scheme.ByRef(old), cfg); err != nil {
		return err
	}
	if err := g.save(r); err != nil {
		return err
	}
	fmt.Fprintf(out, "edited %s\n", cfg.Name)
	return nil
}

type DeleteCmd struct {
	Name    string `arg:"" help:"Scheme name."`
	Destroy bool   `help:"Also release the scheme's keys."`
}

func (c *DeleteCmd) Run(g *Globals, out io.Writer) error {
	r, err := g.open()
	if err != nil {
		return err
	}
	if err := r.Delete(scheme.ByName(c.Name), c.Destroy); err != nil {
		return err
	}
	if err := g.save(r); err != nil {
		return err
	}
	if active := r.ActiveName(); active != "" {
		fmt.Fprintf(out, "deleted %s, active: %s\n", c.Name, active)
	} else {
		fmt.Fprintf(out, "deleted %s, no active scheme\n", c.Name)
	}
	return nil
}

type ActivateCmd struct {
	Name string `arg:"" help:"Scheme name."`
}

func (c *ActivateCmd) Run(g *Globals, out io.Writer) error {
	r, err := g.open()
	if err != nil {
		return err
	}
	if err := r.SetActive(scheme.ByName(c.Name)); err != nil {
		return err
	}
	if err := g.save(r); err != nil {
		return err
	}
	fmt.Fprintf(out, "active: %s\n", c.Name)
	return nil
}

type PresetCmd struct {
	Kind   string `arg:"" enum:"cursor,wasd" help:"Preset to add."`
	Active bool   `help:"Make the preset active."`
}

func (c *PresetCmd) Run(g *Globals, out io.Writer) error {
	kind := scheme.PresetCursor
	if c.Kind == "wasd" {
		kind = scheme.PresetWASD
	}

	r, err := g.open()
	if err != nil {
		return err
	}
	preset, _ := scheme.NewPreset(kind, false)
	if _, err := r.Get(preset.Name, false); err == nil {
		return fmt.Errorf("%w: %s", scheme.ErrDuplicatePreset, preset.Name)
	}
	s, err := r.CreatePreset(kind, c.Active, true)
	if err != nil {
		return err
	}
	if err := g.save(r); err != nil {
		return err
	}
	fmt.Fprintf(out, "added %s\n", s.Name)
	return nil
}

type ExportCmd struct {
	Format string `help:"Output format." enum:"yaml,toml,json" default:"yaml"`
	Output string `help:"Write to this file instead of stdout." short:"o" type:"path"`
}

func (c *ExportCmd) Run(g *Globals, out io.Writer) error {
	format, err := schemefile.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	r, err := g.open()
	if err != nil {
		return err
	}
	if c.Output != "" {
		return schemefile.SaveFormat(c.Output, format, r.Schemes())
	}
	data, err := schemefile.Marshal(format, r.Schemes())
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
