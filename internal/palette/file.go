package palette

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"yethangul/internal/types"
)

// File is the YAML form of a palette override:
//
//	sections:
//	  - name: initial
//	    glyphs: ["\u112B", "\u1147"]
//	  - name: words
//	    replace: true
//	    glyphs: ["\u1112\u119E\u11AB"]
type File struct {
	Sections []SectionFile `yaml:"sections"`
}

type SectionFile struct {
	Name    string   `yaml:"name"`
	Replace bool     `yaml:"replace"`
	Glyphs  []string `yaml:"glyphs"`
}

func LoadFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("palette: open %s: %w", path, err)
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return File{}, fmt.Errorf("palette: parse %s: %w", path, err)
	}
	return file, nil
}

// Apply merges the file into p. Sections marked replace drop their current
// glyphs first.
func (p *Palette) Apply(file File) error {
	for _, sf := range file.Sections {
		section, err := types.ParseSection(sf.Name)
		if err != nil {
			return fmt.Errorf("palette: %w", err)
		}
		if sf.Replace {
			p.Clear(section)
		}
		for _, glyph := range sf.Glyphs {
			if err := p.Add(section, glyph); err != nil {
				return err
			}
		}
	}
	return nil
}

// Load returns the default palette with the override at path applied. An
// empty path yields the default palette.
func Load(path string) (*Palette, error) {
	p := Default()
	if path == "" {
		return p, nil
	}
	file, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	if err := p.Apply(file); err != nil {
		return nil, err
	}
	return p, nil
}
