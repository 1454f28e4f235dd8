package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"
	"gopkg.in/yaml.v3"

	"github.com/erazemk/lynx/internal/model"
)

//go:embed templates.yaml
var defaultTemplates []byte

// SeedFile is the on-disk shape of a template seed file.
type SeedFile struct {
	Templates []model.Template `yaml:"templates"`
}

// LoadTemplates reads template seeds from path, or the built-in seeds when
// path is empty.
func LoadTemplates(path string) ([]model.Template, error) {
	data := defaultTemplates
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading templates file: %w", err)
		}
		data = b
	}
	return ParseTemplates(data)
}

// ParseTemplates decodes and validates a YAML seed file.
func ParseTemplates(data []byte) ([]model.Template, error) {
	var f SeedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f.Templates, nil
}

// Validate checks every template and item in the seed file.
func (f *SeedFile) Validate() error {
	var errs criterio.FieldErrorsBuilder
	seen := make(map[string]bool)

	for i, t := range f.Templates {
		prefix := fmt.Sprintf("templates[%d]", i)
		if strings.TrimSpace(t.Name) == "" {
			errs = errs.Append(prefix+".name", fmt.Errorf("name is required"))
		}
		if t.ID != "" {
			if seen[t.ID] {
				errs = errs.Append(prefix+".id", fmt.Errorf("duplicate id %q", t.ID))
			}
			seen[t.ID] = true
		}
		if len(t.Items) == 0 {
			errs = errs.Append(prefix+".items", fmt.Errorf("at least one item is required"))
		}
		for j, it := range t.Items {
			itemPrefix := fmt.Sprintf("%s.items[%d]", prefix, j)
			if strings.TrimSpace(it.Name) == "" {
				errs = errs.Append(itemPrefix+".name", fmt.Errorf("name is required"))
			}
			if strings.TrimSpace(it.Location) == "" {
				errs = errs.Append(itemPrefix+".location", fmt.Errorf("location is required"))
			}
			if it.Quantity < 1 {
				errs = errs.Append(itemPrefix+".quantity", fmt.Errorf("must be positive, got %d", it.Quantity))
			}
		}
	}

	return errs.ToError()
}
