package config

import (
	_ "embed"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"vosul/internal/domain"
)

//go:embed business_defaults.yaml
var defaultBusinessRules []byte

// businessFile is the on-disk shape of a rules file.
type businessFile struct {
	Targets                map[string]float64 `yaml:"targets"`
	ProvinceResponsibility map[string]string  `yaml:"province_responsibility"`
}

// LoadBusinessRules reads the collection targets and the province
// responsibility map from a YAML file. An empty path yields the built-in
// defaults. Keys are kept exactly as written, dots and case included.
func LoadBusinessRules(path string) (domain.BusinessRules, error) {
	raw := defaultBusinessRules
	source := "built-in defaults"
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return emptyRules(), fmt.Errorf("reading business rules %s: %w", path, err)
		}
		raw, source = b, path
	}
	return parseBusinessRules(raw, source)
}

func parseBusinessRules(raw []byte, source string) (domain.BusinessRules, error) {
	var f businessFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return emptyRules(), fmt.Errorf("decoding business rules %s: %w", source, err)
	}
	rules := emptyRules()
	for k, v := range f.Targets {
		rules.Targets[k] = v
	}
	for k, v := range f.ProvinceResponsibility {
		rules.ProvinceResponsible[k] = v
	}
	return rules, nil
}

func emptyRules() domain.BusinessRules {
	return domain.BusinessRules{
		Targets:             map[string]float64{},
		ProvinceResponsible: map[string]string{},
	}
}
