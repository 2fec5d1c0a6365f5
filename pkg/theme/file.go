package theme

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// File is the YAML override format for themes. Every field is optional;
// unset fields keep the base theme's value. Kind names in the spacing
// section use the stable names from Kind.String.
type File struct {
	Name   string            `yaml:"name,omitempty"`
	Colors map[string]string `yaml:"colors,omitempty"`
	Icons  map[string]string `yaml:"icons,omitempty"`
	Layout LayoutFile        `yaml:"layout,omitempty"`

	// Spacing maps a kind name to its rule override.
	Spacing map[string]RuleFile `yaml:"spacing,omitempty"`
}

// LayoutFile mirrors Layout with pointer fields so absent keys are
// distinguishable from zero values.
type LayoutFile struct {
	TableBorder   *string `yaml:"table_border,omitempty"`
	RowBanding    *bool   `yaml:"row_banding,omitempty"`
	CodeStyle     *string `yaml:"code_style,omitempty"`
	SpinnerStyle  *string `yaml:"spinner_style,omitempty"`
	Width         *int    `yaml:"width,omitempty"`
	ProgressWidth *int    `yaml:"progress_width,omitempty"`
}

// RuleFile is the YAML form of a spacing rule.
type RuleFile struct {
	Before *int           `yaml:"before,omitempty"`
	After  map[string]int `yaml:"after,omitempty"`
}

// LoadFile reads a YAML theme file and applies it on top of the default
// theme. The result is validated before being returned.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: reading %s: %w", path, err)
	}
	return FromYAML(data)
}

// FromYAML applies YAML overrides on top of the default theme.
func FromYAML(data []byte) (*Theme, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("theme: parsing yaml: %w", err)
	}
	return f.Apply(Default())
}

// Apply overlays the file's values onto base and revalidates. Base is
// not mutated.
func (f File) Apply(base *Theme) (*Theme, error) {
	colors := base.Colors
	for key, val := range f.Colors {
		c := lipgloss.Color(val)
		switch key {
		case "primary":
			colors.Primary = c
		case "success":
			colors.Success = c
		case "warning":
			colors.Warning = c
		case "error":
			colors.Error = c
		case "text":
			colors.Text = c
		case "muted":
			colors.Muted = c
		case "subtle":
			colors.Subtle = c
		default:
			return nil, fmt.Errorf("theme: unknown color key %q", key)
		}
	}

	icons := base.Icons
	for key, val := range f.Icons {
		switch key {
		case "info":
			icons.Info = val
		case "success":
			icons.Success = val
		case "warning":
			icons.Warning = val
		case "error":
			icons.Error = val
		case "debug":
			icons.Debug = val
		case "bullet":
			icons.Bullet = val
		case "arrow":
			icons.Arrow = val
		case "running":
			icons.Running = val
		default:
			return nil, fmt.Errorf("theme: unknown icon key %q", key)
		}
	}

	name := base.Name
	if f.Name != "" {
		name = f.Name
	}

	// Rebuild typography so color overrides flow into the styles.
	t := New(name, colors, icons)
	t.Layout = base.Layout
	t.Spacing = cloneSpacing(base.Spacing)

	if f.Layout.TableBorder != nil {
		t.Layout.TableBorder = *f.Layout.TableBorder
	}
	if f.Layout.RowBanding != nil {
		t.Layout.RowBanding = *f.Layout.RowBanding
	}
	if f.Layout.CodeStyle != nil {
		t.Layout.CodeStyle = *f.Layout.CodeStyle
	}
	if f.Layout.SpinnerStyle != nil {
		t.Layout.SpinnerStyle = *f.Layout.SpinnerStyle
	}
	if f.Layout.Width != nil {
		t.Layout.Width = *f.Layout.Width
	}
	if f.Layout.ProgressWidth != nil {
		t.Layout.ProgressWidth = *f.Layout.ProgressWidth
	}

	for kindName, rf := range f.Spacing {
		kind, ok := KindFromString(kindName)
		if !ok {
			return nil, fmt.Errorf("theme: unknown kind %q in spacing overrides", kindName)
		}
		rule := t.Spacing.Rules[kind]
		if rf.Before != nil {
			rule.Before = *rf.Before
		}
		for prevName, n := range rf.After {
			prev, ok := KindFromString(prevName)
			if !ok {
				return nil, fmt.Errorf("theme: unknown kind %q in spacing override for %q", prevName, kindName)
			}
			if rule.Overrides == nil {
				rule.Overrides = make(map[Kind]int)
			}
			rule.Overrides[prev] = n
		}
		t.Spacing.Rules[kind] = rule
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func cloneSpacing(s Spacing) Spacing {
	rules := make(map[Kind]Rule, len(s.Rules))
	for k, rule := range s.Rules {
		cloned := Rule{Before: rule.Before}
		if rule.Overrides != nil {
			cloned.Overrides = make(map[Kind]int, len(rule.Overrides))
			for prev, n := range rule.Overrides {
				cloned.Overrides[prev] = n
			}
		}
		rules[k] = cloned
	}
	return Spacing{Rules: rules}
}
