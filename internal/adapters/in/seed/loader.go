// Package seed loads delivery rule definitions from a YAML file and creates them
// through the regular rule creation use case.
//
// File layout:
//
//	rules:
//	  - name: Morning
//	    startTime: "08:00"
//	    endTime: "11:59"
//	    deliveryDateMode: today
//	    deliveryTime: "15:00"
//	    priority: 10
package seed

import (
	"fmt"
	"os"

	"deliverytime/internal/core/domain/model/rule"

	"gopkg.in/yaml.v3"
)

// File is the YAML document shape.
type File struct {
	Rules []rule.RawDefinition `yaml:"rules"`
}

// LoadRules reads the rule definitions in path. Definitions are not validated here.
func LoadRules(path string) ([]rule.RawDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file File
	if err = yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return file.Rules, nil
}
