// Package theme loads named layout style sheets from YAML. Styling values are
// opaque configuration to the layout core; this package is the bridge from
// declarative sheets to layout.Style records.
package theme

import (
	stderrors "errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-spatialui/spatialui/pkg/errors"
	"github.com/go-spatialui/spatialui/pkg/layout"
)

// StyleSpec is the YAML shape of a single named style. Align and Position are
// the lower-case enum names ("top", "bottom", "center", "left", "right").
type StyleSpec struct {
	Width    float64 `yaml:"width,omitempty"`
	Height   float64 `yaml:"height,omitempty"`
	Align    string  `yaml:"align,omitempty"`
	Position string  `yaml:"position,omitempty"`
	Margin   float64 `yaml:"margin,omitempty"`
	Padding  float64 `yaml:"padding,omitempty"`
}

// Sheet is a collection of named styles.
type Sheet struct {
	Styles map[string]StyleSpec `yaml:"styles"`
}

// Load parses a sheet from YAML bytes.
func Load(data []byte) (*Sheet, error) {
	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse style sheet: %w", err)
	}
	return &s, nil
}

// LoadFile reads and parses a sheet from path.
func LoadFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style sheet: %w", err)
	}
	return Load(data)
}

// LoadOptional reads a sheet from path, returning an empty sheet when the
// file does not exist.
func LoadOptional(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Sheet{}, nil
		}
		return nil, fmt.Errorf("failed to read style sheet: %w", err)
	}
	return Load(data)
}

// Style resolves a named style into a layout.Style record.
func (s *Sheet) Style(name string) (layout.Style, error) {
	spec, ok := s.Styles[name]
	if !ok {
		return layout.Style{}, errors.Newf("theme.Style", errors.KindTargetNotFound,
			"no style named %q", name)
	}
	return spec.Resolve()
}

// Apply resolves a named style and writes it into dst.
func (s *Sheet) Apply(name string, dst *layout.Style) error {
	style, err := s.Style(name)
	if err != nil {
		return err
	}
	*dst = style
	return nil
}

// Resolve converts the spec into a layout.Style, validating enum names.
func (spec StyleSpec) Resolve() (layout.Style, error) {
	align, err := parseAlign(spec.Align)
	if err != nil {
		return layout.Style{}, err
	}
	position, err := parsePosition(spec.Position)
	if err != nil {
		return layout.Style{}, err
	}
	return layout.Style{
		Width:    spec.Width,
		Height:   spec.Height,
		Align:    align,
		Position: position,
		Margin:   spec.Margin,
		Padding:  spec.Padding,
	}, nil
}

func parseAlign(s string) (layout.Align, error) {
	switch s {
	case "", "top":
		return layout.AlignTop, nil
	case "bottom":
		return layout.AlignBottom, nil
	case "center":
		return layout.AlignCenter, nil
	default:
		return 0, errors.Newf("theme.parseAlign", errors.KindConstruction,
			"unknown align %q", s)
	}
}

func parsePosition(s string) (layout.Position, error) {
	switch s {
	case "", "left":
		return layout.PositionLeft, nil
	case "right":
		return layout.PositionRight, nil
	case "center":
		return layout.PositionCenter, nil
	default:
		return 0, errors.Newf("theme.parsePosition", errors.KindConstruction,
			"unknown position %q", s)
	}
}
