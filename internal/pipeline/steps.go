package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
)

// Step is one entry of the steps file. Everything besides the operation name
// is kept as raw options so each handler can pick out what it understands.
type Step struct {
	Operation string
	Options   map[string]any
}

func (s *Step) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	op, _ := raw["operation"].(string)
	s.Operation = op
	delete(raw, "operation")
	s.Options = raw
	return nil
}

// String returns the string option under key, or fallback when absent.
func (s *Step) String(key, fallback string) string {
	if v, ok := s.Options[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// Int returns the integer option under key, or fallback when absent.
// JSON numbers decode as float64.
func (s *Step) Int(key string, fallback int) int {
	if v, ok := s.Options[key].(float64); ok {
		return int(v)
	}
	return fallback
}

// Bool returns the boolean option under key, or false when absent.
func (s *Step) Bool(key string) bool {
	v, _ := s.Options[key].(bool)
	return v
}

// LoadSteps reads a steps file: {"steps": [{"operation": ...}, ...]}.
func LoadSteps(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("steps file not found: %s", path)
		}
		return nil, err
	}

	var file struct {
		Steps []Step `json:"steps"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse steps file: %w", err)
	}
	if file.Steps == nil {
		return nil, fmt.Errorf("steps file must contain a top-level \"steps\" array")
	}
	return file.Steps, nil
}
