/*
Package rules builds translators from declarative rule-set documents.

# Overview

rules is the bridge between configuration files and the translator core. A
rule-set document declares an exact-match section, an ordered pattern
section, and an optional identity fallthrough; the loader compiles the
sections and composes them, in that order, through the translator algebra.

# Document Format

YAML (or the equivalent JSON):

	dict:
	  apple: fruit
	  carrot: vegetable
	rules:
	  - pattern: 'images/(\w+)\.jpg'
	    flags: i
	    replace: 'thumbnails/\1_thumb.jpg'
	  - pattern: 'data/(\w+)\.txt'
	    replace: ['out/\1.dat', 'out/\1.lbl']
	identity: true

Every section is optional. Dict values and rule replacements follow the
expand package's replacement-specification shapes; a list produces multiple
derived values per match. A document with no sections yields the Empty
translator.

# Loading

	t, err := rules.FromFile("mappings.yaml") // .yaml, .yml, or .json
	t, err = rules.FromYAML(data)
	t, err = rules.FromJSON(data)
*/
package rules
