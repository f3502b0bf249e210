package categorizer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rulesFile is the YAML layout of a category rule file.
type rulesFile struct {
	Categories []Rule `yaml:"categories"`
}

// LoadRules reads an ordered category rule table from a YAML file. The file
// layout mirrors the built-in table:
//
//	categories:
//	  - category: Salary
//	    keywords: ["jobr payrol", "salary", "paycheck"]
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read category rules file: %w", err)
	}

	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not parse category rules file: %w", err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("category rules file %s defines no categories", path)
	}

	return f.Categories, nil
}
