package pipeline

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

// Definition is a YAML-declared transformation pipeline: named input
// datasets, an ordered list of steps, and the step outputs to export.
type Definition struct {
	Name    string      `yaml:"name" validate:"required"`
	Inputs  []InputSpec `yaml:"inputs" validate:"min=1,dive"`
	Steps   []StepSpec  `yaml:"steps" validate:"min=1,dive"`
	Outputs []string    `yaml:"outputs"`
}

// InputSpec names a source file to load into the dataset registry.
type InputSpec struct {
	Name  string `yaml:"name" validate:"required"`
	Path  string `yaml:"path" validate:"required"`
	Sheet string `yaml:"sheet"`
}

// StepSpec is one transformation step. Input names a registry dataset for
// single-input operations; Inputs lists several for the join operations
// (period_over_period, side_by_side). The result lands in the registry
// under Output.
type StepSpec struct {
	Op     string                 `yaml:"op" validate:"required"`
	Input  string                 `yaml:"input"`
	Inputs []string               `yaml:"inputs"`
	Output string                 `yaml:"output" validate:"required"`
	Params map[string]interface{} `yaml:"params"`
}

// LoadDefinition reads and validates a pipeline definition from a YAML
// file.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline file: %w", err)
	}
	return ParseDefinition(data)
}

// ParseDefinition parses and validates a YAML pipeline definition.
func ParseDefinition(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline definition: %w", err)
	}

	if err := validator.New().Struct(&def); err != nil {
		return nil, fmt.Errorf("pipeline definition validation failed: %w", err)
	}

	// Default to exporting every step output, in step order.
	if len(def.Outputs) == 0 {
		for _, step := range def.Steps {
			def.Outputs = append(def.Outputs, step.Output)
		}
	}
	return &def, nil
}
