// Package ruleset defines the persisted rule document consumed by the
// validation engine and converts its token descriptors into grammar
// templates. Documents are plain data: the engine never reads host or UI
// state, the authoring layer populates descriptors and hands them over.
package ruleset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is one rules file. Every section is optional; absent sections
// disable the corresponding checks.
type Document struct {
	FilePaths      *FilePaths              `yaml:"file_paths,omitempty" json:"file_paths,omitempty"`
	Colorspaces    map[string]*AllowList   `yaml:"colorspaces,omitempty" json:"colorspaces,omitempty"`
	FrameRange     *FrameRange             `yaml:"frame_range,omitempty" json:"frame_range,omitempty"`
	Channels       *Channels               `yaml:"channels,omitempty" json:"channels,omitempty"`
	Versioning     *Versioning             `yaml:"versioning,omitempty" json:"versioning,omitempty"`
	RenderSettings map[string]*RenderRules `yaml:"render_settings,omitempty" json:"render_settings,omitempty"`
	NodeNames      *NodeNames              `yaml:"node_names,omitempty" json:"node_names,omitempty"`
	NodeIntegrity  *NodeIntegrity          `yaml:"node_integrity,omitempty" json:"node_integrity,omitempty"`
}

// FilePaths configures path and naming validation for render outputs.
type FilePaths struct {
	// RelativePathRequired flags absolute output paths.
	RelativePathRequired bool `yaml:"relative_path_required,omitempty" json:"relative_path_required,omitempty"`
	// NamingPatternRegex is the power-user override pattern used by the
	// fast path when no token template is configured, or alongside one
	// (the token walk keeps validating against the template).
	NamingPatternRegex string `yaml:"naming_pattern_regex,omitempty" json:"naming_pattern_regex,omitempty"`
	// FilenameTokens is the ordered token template descriptor list.
	FilenameTokens []TokenConfig `yaml:"filename_tokens,omitempty" json:"filename_tokens,omitempty"`

	SeverityRelativePath  string `yaml:"severity_relative_path,omitempty" json:"severity_relative_path,omitempty"`
	SeverityNamingPattern string `yaml:"severity_naming_pattern,omitempty" json:"severity_naming_pattern,omitempty"`
}

// TokenConfig is one persisted template entry: a catalog kind occurrence or
// a bare literal.
type TokenConfig struct {
	// Name is the catalog kind name. Empty for bare literal entries.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	// Literal is the exact text of a bare literal entry.
	Literal string `yaml:"literal,omitempty" json:"literal,omitempty"`
	// Value is the resolved kind parameter: a digit count, a chosen
	// option, a list of options, or the string "none" to mark an
	// enumerated token optional-and-unset.
	Value any `yaml:"value,omitempty" json:"value,omitempty"`
	// MinValue and MaxValue bound range kinds such as the sequence code.
	MinValue int `yaml:"min_value,omitempty" json:"min_value,omitempty"`
	MaxValue int `yaml:"max_value,omitempty" json:"max_value,omitempty"`

	Separator string `yaml:"separator,omitempty" json:"separator,omitempty"`
	Optional  bool   `yaml:"optional,omitempty" json:"optional,omitempty"`
	Prefix    string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Suffix    string `yaml:"suffix,omitempty" json:"suffix,omitempty"`
}

// AllowList is an accepted-values rule with a severity.
type AllowList struct {
	Allowed  []string `yaml:"allowed" json:"allowed"`
	Severity string   `yaml:"severity,omitempty" json:"severity,omitempty"`
}

// FrameRange bounds the script frame range. Nil fields are not checked.
type FrameRange struct {
	MinFrames  *int   `yaml:"min_frames,omitempty" json:"min_frames,omitempty"`
	StartFrame *int   `yaml:"start_frame,omitempty" json:"start_frame,omitempty"`
	EndFrame   *int   `yaml:"end_frame,omitempty" json:"end_frame,omitempty"`
	Severity   string `yaml:"severity,omitempty" json:"severity,omitempty"`
}

// Channels configures output channel checks. RequireRGBA defaults to true
// when the section is present.
type Channels struct {
	RequireRGBA         *bool  `yaml:"require_rgba,omitempty" json:"require_rgba,omitempty"`
	WarnOnRGBOnly       bool   `yaml:"warn_on_rgb_only,omitempty" json:"warn_on_rgb_only,omitempty"`
	WarnOnExtraChannels bool   `yaml:"warn_on_extra_channels,omitempty" json:"warn_on_extra_channels,omitempty"`
	Severity            string `yaml:"severity,omitempty" json:"severity,omitempty"`
}

// Versioning requires a version token in output filenames.
type Versioning struct {
	RequireVersionToken bool   `yaml:"require_version_token,omitempty" json:"require_version_token,omitempty"`
	VersionTokenRegex   string `yaml:"version_token_regex,omitempty" json:"version_token_regex,omitempty"`
	Severity            string `yaml:"severity_require_token,omitempty" json:"severity_require_token,omitempty"`
}

// RenderRules constrains render parameters per output file type: a map of
// file type to parameter name to accepted values.
type RenderRules struct {
	FileTypeRules map[string]map[string]StringList `yaml:"file_type_rules,omitempty" json:"file_type_rules,omitempty"`
	Severity      string                           `yaml:"severity,omitempty" json:"severity,omitempty"`
}

// NodeNames requires node names to match a pattern.
type NodeNames struct {
	Pattern  string `yaml:"pattern" json:"pattern"`
	Severity string `yaml:"severity,omitempty" json:"severity,omitempty"`
}

// NodeIntegrity flags disabled nodes left in the script.
type NodeIntegrity struct {
	CheckDisabledNodes bool   `yaml:"check_disabled_nodes,omitempty" json:"check_disabled_nodes,omitempty"`
	Severity           string `yaml:"severity_disabled_nodes,omitempty" json:"severity_disabled_nodes,omitempty"`
}

// StringList accepts either a single scalar or a sequence in the source
// document; hand-written rules files use both freely.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		out := make(StringList, 0, len(node.Content))
		for _, child := range node.Content {
			if child.Kind != yaml.ScalarNode {
				return fmt.Errorf("string list: unexpected %v entry", child.Kind)
			}
			out = append(out, child.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("string list: unexpected node kind %v", node.Kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *StringList) UnmarshalJSON(data []byte) error {
	var raw any
	if err := jsonUnmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case []any:
		out := make(StringList, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}
		*l = out
		return nil
	case nil:
		*l = nil
		return nil
	default:
		*l = StringList{fmt.Sprint(v)}
		return nil
	}
}

// Contains reports whether the list holds the value.
func (l StringList) Contains(value string) bool {
	for _, item := range l {
		if item == value {
			return true
		}
	}
	return false
}
