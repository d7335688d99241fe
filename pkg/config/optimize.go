package config

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Optimize is the optimizeSvg setting. In files it is either a boolean or
// an options object; an object turns optimization on.
type Optimize struct {
	Enabled      bool
	Precision    int  // significant digits kept in numbers, 0 keeps the minifier default
	KeepComments bool // keep <!-- --> comments
}

type optimizeObject struct {
	Precision    int  `json:"precision,omitempty" toml:"precision,omitempty"`
	KeepComments bool `json:"keepComments,omitempty" toml:"keepComments,omitempty"`
}

// UnmarshalJSON accepts true, false or an options object.
func (o *Optimize) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "true", "false":
		*o = Optimize{Enabled: string(data) == "true"}
		return nil
	}

	var obj optimizeObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("optimizeSvg must be a boolean or an object: %w", err)
	}
	*o = Optimize{Enabled: true, Precision: obj.Precision, KeepComments: obj.KeepComments}
	return nil
}

// MarshalJSON writes a boolean unless options are set.
func (o Optimize) MarshalJSON() ([]byte, error) {
	if !o.Enabled || (o.Precision == 0 && !o.KeepComments) {
		return json.Marshal(o.Enabled)
	}
	return json.Marshal(optimizeObject{Precision: o.Precision, KeepComments: o.KeepComments})
}

// UnmarshalTOML accepts a boolean or a table.
func (o *Optimize) UnmarshalTOML(v any) error {
	switch val := v.(type) {
	case bool:
		*o = Optimize{Enabled: val}
		return nil
	case map[string]any:
		*o = Optimize{Enabled: true}
		if p, ok := val["precision"].(int64); ok {
			o.Precision = int(p)
		}
		if k, ok := val["keepComments"].(bool); ok {
			o.KeepComments = k
		}
		return nil
	}
	return fmt.Errorf("optimizeSvg must be a boolean or a table, got %T", v)
}

// MarshalTOML mirrors MarshalJSON.
func (o Optimize) MarshalTOML() ([]byte, error) {
	if !o.Enabled || (o.Precision == 0 && !o.KeepComments) {
		return []byte(fmt.Sprintf("%t", o.Enabled)), nil
	}
	return []byte(fmt.Sprintf("{ precision = %d, keepComments = %t }", o.Precision, o.KeepComments)), nil
}
