package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const FormatVersion = "2010-09-09"

// Template is a CloudFormation document. Sections other than Resources are
// carried through untouched.
type Template struct {
	Body map[string]any
}

func New() Template {
	return Template{
		Body: map[string]any{
			"AWSTemplateFormatVersion": FormatVersion,
			"Resources":                map[string]any{},
		},
	}
}

// Load reads a template based on its extension.
// Supports: .json, .yaml/.yml
func Load(path string) (Template, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Template{}, err
	}

	return Decode(b, filepath.Ext(path))
}

func Decode(b []byte, ext string) (Template, error) {
	body := map[string]any{}

	switch ext = strings.ToLower(ext); ext {
	case ".json":
		if err := json.Unmarshal(b, &body); err != nil {
			return Template{}, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &body); err != nil {
			return Template{}, err
		}
	default:
		return Template{}, fmt.Errorf("unsupported template extension: %s", ext)
	}

	if body == nil {
		body = map[string]any{}
	}

	return Template{Body: body}, nil
}

// Merge writes resources into the Resources section, replacing any existing
// entry with the same logical id.
func (t Template) Merge(resources Resources) error {
	section, ok := t.Body["Resources"]
	if !ok || section == nil {
		section = map[string]any{}
		t.Body["Resources"] = section
	}

	existing, ok := section.(map[string]any)
	if !ok {
		return fmt.Errorf("template Resources section is %T, expected a mapping", section)
	}

	for logicalId, resource := range resources {
		existing[logicalId] = resource
	}

	return nil
}

func (t Template) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(t.Body, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func (t Template) YAML() ([]byte, error) {
	var b strings.Builder
	encoder := yaml.NewEncoder(&b)
	encoder.SetIndent(2)

	if err := encoder.Encode(t.Body); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return []byte(b.String()), nil
}

// Render encodes the template as json or yaml.
func (t Template) Render(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", "json":
		return t.JSON()
	case "yaml", "yml":
		return t.YAML()
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
