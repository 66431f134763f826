// Package chartfile reads ring chart definitions from TOML or JSON and builds
// ringchart.Chart values from them.
//
// A definition lists the top-level items in angular order, each with an
// optional nested children list:
//
//	depth_limit = 3
//
//	[[items]]
//	value = 4
//	tooltip = "fruit"
//
//	  [[items.children]]
//	  value = 3
//	  tooltip = "apples"
package chartfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/ringchart"
)

// Format selects the encoding of a definition.
type Format uint8

const (
	FormatTOML Format = iota
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", f)
	}
}

// ErrUnknownFormat is returned when a file extension maps to no format.
var ErrUnknownFormat = errors.New("chartfile: unknown format")

// File is a chart definition.
type File struct {
	// DepthLimit caps the number of rings drawn. Zero keeps the default.
	DepthLimit int `toml:"depth_limit" json:"depthLimit,omitempty"`
	// InnerHole forces the inner hole on or off. Nil derives it.
	InnerHole *bool `toml:"inner_hole" json:"innerHole,omitempty"`
	// Margin overrides the pixels reserved around the chart. Nil keeps the
	// default.
	Margin *float64 `toml:"margin" json:"margin,omitempty"`
	Items  []Item   `toml:"items" json:"items"`
}

// Item is one node of a definition.
type Item struct {
	Value    float64 `toml:"value" json:"value"`
	Tooltip  string  `toml:"tooltip" json:"tooltip,omitempty"`
	Children []Item  `toml:"children" json:"children,omitempty"`
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads and decodes the definition at path.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decode reads a definition from r.
func Decode(r io.Reader, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&f)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	return &f, nil
}

// Build creates the chart described by f and runs its layout. Item errors
// name the offending item, e.g. "items[1].children[0]".
func (f *File) Build() (*ringchart.Chart, error) {
	items := make([]*ringchart.Item, len(f.Items))
	for i := range f.Items {
		it, err := f.Items[i].build(fmt.Sprintf("items[%d]", i))
		if err != nil {
			return nil, err
		}
		items[i] = it
	}

	var opts []ringchart.Option
	if f.DepthLimit != 0 {
		opts = append(opts, ringchart.WithDepthLimit(f.DepthLimit))
	}
	if f.InnerHole != nil {
		opts = append(opts, ringchart.WithInnerHole(*f.InnerHole))
	}
	if f.Margin != nil {
		opts = append(opts, ringchart.WithMargin(*f.Margin))
	}

	c, err := ringchart.NewChart(items, opts...)
	if err != nil {
		return nil, fmt.Errorf("chartfile: %w", err)
	}
	return c, nil
}

func (it *Item) build(path string) (*ringchart.Item, error) {
	node, err := ringchart.NewItem(it.Value, it.Tooltip)
	if err != nil {
		return nil, fmt.Errorf("chartfile: %s: %w", path, err)
	}
	for i := range it.Children {
		child, err := it.Children[i].build(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}
	return node, nil
}
