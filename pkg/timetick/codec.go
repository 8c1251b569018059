package timetick

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes t as a bare JSON number.
func (t TimeTick) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.v)
}

// UnmarshalJSON decodes a bare JSON number.
func (t *TimeTick) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("timetick: %w", err)
	}
	t.v = v
	return nil
}

// MarshalYAML encodes t as a YAML float. Negative zero is written as -0.0,
// since yaml.v3 reads a bare -0 as the integer zero.
func (t TimeTick) MarshalYAML() (any, error) {
	if t.v == 0 && math.Signbit(t.v) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: "-0.0"}, nil
	}
	return t.v, nil
}

// UnmarshalYAML decodes a YAML scalar, accepting .inf and .nan.
func (t *TimeTick) UnmarshalYAML(node *yaml.Node) error {
	var v float64
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("timetick: line %d: %w", node.Line, err)
	}
	t.v = v
	return nil
}

// MarshalText encodes t with the shortest exact decimal representation.
func (t TimeTick) MarshalText() ([]byte, error) {
	return strconv.AppendFloat(nil, t.v, 'g', -1, 64), nil
}

// UnmarshalText parses a decimal value.
func (t *TimeTick) UnmarshalText(text []byte) error {
	v, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return fmt.Errorf("timetick: %w", err)
	}
	t.v = v
	return nil
}

// Parse parses a decimal time value.
func Parse(s string) (TimeTick, error) {
	var t TimeTick
	err := t.UnmarshalText([]byte(s))
	return t, err
}
