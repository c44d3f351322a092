package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/translator/pkg/translator"
)

// document is the on-disk shape of a rule set.
type document struct {
	Dict     map[string]any `yaml:"dict" json:"dict"`
	Rules    []ruleSpec     `yaml:"rules" json:"rules"`
	Identity bool           `yaml:"identity" json:"identity"`
}

// ruleSpec is one pattern/replacement entry of the rules section.
type ruleSpec struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Flags   string `yaml:"flags" json:"flags"`
	Replace any    `yaml:"replace" json:"replace"`
}

// FromFile loads a rule set from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (translator.Translator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule set: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return nil, fmt.Errorf("unsupported rule set extension: %s", ext)
	}
}

// FromYAML parses YAML data into a composed translator.
func FromYAML(data []byte) (translator.Translator, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return build(doc)
}

// FromJSON parses JSON data into a composed translator.
func FromJSON(data []byte) (translator.Translator, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return build(doc)
}

// build compiles the document sections and composes them dict-first.
// A document with no sections yields the Empty translator.
func build(doc document) (translator.Translator, error) {
	var parts []translator.Translator

	if len(doc.Dict) > 0 {
		parts = append(parts, translator.NewDict(doc.Dict))
	}

	if len(doc.Rules) > 0 {
		compiled := make([]translator.Rule, 0, len(doc.Rules))
		for i, spec := range doc.Rules {
			if spec.Pattern == "" {
				return nil, &RuleError{Index: i, Err: errPatternRequired}
			}
			rule, err := translator.NewRuleWithFlags(spec.Pattern, spec.Flags, spec.Replace)
			if err != nil {
				return nil, &RuleError{Index: i, Pattern: spec.Pattern, Err: err}
			}
			compiled = append(compiled, rule)
		}
		parts = append(parts, translator.NewRegex(compiled...))
	}

	if doc.Identity {
		parts = append(parts, translator.NewIdentity())
	}

	return translator.Compose(parts...), nil
}
