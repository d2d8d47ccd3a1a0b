package types

import "fmt"

// Finding represents a single diagnostic result attached to one input line.
// At most one Finding is ever surfaced per line.
type Finding struct {
	Rule     string
	Severity Severity
	Message  string
	Line     string // original raw line text, as read
}

// Line is a single input record flowing through the pipeline.
type Line struct {
	Raw        string // input text, surrounding whitespace stripped
	Normalized string // derived canonical rendering
}

// Result is the outcome for one non-blank input line: either a Finding
// or the normalized text.
type Result struct {
	Line    Line
	Finding *Finding
}

// Flagged reports whether a detector fired on this line.
func (r Result) Flagged() bool {
	return r.Finding != nil
}

// Severity represents the severity level of a rule.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityError
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "OFF"
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// MarshalYAML implements the yaml.Marshaler interface.
func (s Severity) MarshalYAML() (interface{}, error) {
	switch s {
	case SeverityOff:
		return "off", nil
	case SeverityError:
		return "error", nil
	case SeverityWarning:
		return "warning", nil
	case SeverityInfo:
		return "info", nil
	}
	return nil, fmt.Errorf("unknown severity: %d", int(s))
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (s *Severity) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch raw {
	case "off":
		*s = SeverityOff
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity: %q", raw)
	}
	return nil
}

// ConfigRule is the per-rule configuration entry.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}
