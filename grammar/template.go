package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

// Instance is one configured entry of a template: either an occurrence of a
// catalog kind with its chosen parameters, or a bare literal when Literal is
// set and Kind is empty.
type Instance struct {
	// Kind is the catalog kind name. Empty for bare literal entries.
	Kind string
	// Literal is the exact text a bare literal entry must match.
	Literal string
	// Value is the configured option for choice kinds.
	Value string
	// Values is the configured option subset for multi-choice kinds.
	Values []string
	// Digits is the width for spinner kinds. Zero selects the kind default.
	Digits int
	// MinLen and MaxLen bound range-spinner kinds. Zero selects defaults.
	MinLen int
	MaxLen int
	// Optional marks the instance as allowed to be absent. Its separator
	// binds only when the token itself is present.
	Optional bool
	// Separator must appear immediately after this entry unless it is the
	// template's last entry.
	Separator string
	// Prefix and Suffix are literal adornments around the instance's own
	// pattern.
	Prefix string
	Suffix string
}

// Template is an ordered sequence of instances. Order is the authoring order
// and defines left-to-right consumption during matching.
//
// A template must not be mutated while Compile or Diagnose runs against it;
// callers serialize authoring edits against validation reads. Compiled
// patterns are immutable snapshots and safe for concurrent use.
type Template struct {
	Instances []Instance
}

func (inst *Instance) isLiteral() bool {
	return inst.Kind == "" && inst.Literal != ""
}

// label returns the display form used in diagnosis messages.
func (inst *Instance) label() string {
	if inst.isLiteral() {
		return fmt.Sprintf("%q", inst.Literal)
	}
	if kind, ok := LookupKind(inst.Kind); ok {
		return kind.Label
	}
	return "<" + inst.Kind + ">"
}

// width resolves the digit-count parameter of a spinner instance.
func (inst *Instance) width(kind Kind) (int, error) {
	n := inst.Digits
	if n == 0 {
		n = kind.DefaultLen
	}
	if n < kind.Min || n > kind.Max {
		return 0, fmt.Errorf("%w: %d not in [%d,%d]", ErrBadWidth, n, kind.Min, kind.Max)
	}
	return n, nil
}

// span resolves the min/max length pair of a range-spinner instance.
func (inst *Instance) span(kind Kind) (int, int, error) {
	lo, hi := inst.MinLen, inst.MaxLen
	if lo == 0 {
		lo = kind.DefaultMin
	}
	if hi == 0 {
		hi = kind.DefaultMax
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: %d > %d", ErrBadRange, lo, hi)
	}
	if lo < kind.Min || hi > kind.Max {
		return 0, 0, fmt.Errorf("%w: [%d,%d] not in [%d,%d]", ErrBadWidth, lo, hi, kind.Min, kind.Max)
	}
	return lo, hi, nil
}

// fragment resolves the instance's own pattern fragment: the kind template
// with widths substituted or option alternation built, wrapped in escaped
// prefix/suffix. Optional grouping and separators are applied by the caller.
func (inst *Instance) fragment() (string, error) {
	if inst.isLiteral() {
		return regexp.QuoteMeta(inst.Literal), nil
	}
	if inst.Kind == "" {
		return "", ErrEmptyEntry
	}

	kind, ok := LookupKind(inst.Kind)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, inst.Kind)
	}

	var frag string
	switch kind.Control {
	case ControlSpinner:
		n, err := inst.width(kind)
		if err != nil {
			return "", err
		}
		frag = fmt.Sprintf(kind.Pattern, n)

	case ControlRangeSpinner:
		lo, hi, err := inst.span(kind)
		if err != nil {
			return "", err
		}
		frag = fmt.Sprintf(kind.Pattern, lo, hi)

	case ControlChoice:
		if inst.Value != "" {
			if !kind.hasOption(inst.Value) {
				return "", fmt.Errorf("%w: %q", ErrBadOption, inst.Value)
			}
			frag = regexp.QuoteMeta(inst.Value)
		} else {
			frag = alternation(kind.Options)
		}

	case ControlMultiChoice:
		if len(inst.Values) > 0 {
			for _, v := range inst.Values {
				if !kind.hasOption(v) {
					return "", fmt.Errorf("%w: %q", ErrBadOption, v)
				}
			}
			frag = alternation(inst.Values)
		} else if kind.Pattern != "" {
			frag = kind.Pattern
		} else {
			frag = alternation(kind.Options)
		}

	default:
		frag = kind.Pattern
	}

	if inst.Prefix != "" {
		frag = regexp.QuoteMeta(inst.Prefix) + frag
	}
	if inst.Suffix != "" {
		frag += regexp.QuoteMeta(inst.Suffix)
	}

	return frag, nil
}

// example renders the sample text this instance contributes to the template
// preview. Optional instances without a configured value contribute nothing,
// matching their empty-matching compiled group.
func (inst *Instance) example() string {
	if inst.isLiteral() {
		return inst.Literal
	}

	kind, ok := LookupKind(inst.Kind)
	if !ok {
		return ""
	}

	var sample string
	switch kind.Control {
	case ControlSpinner:
		n, err := inst.width(kind)
		if err != nil {
			return ""
		}
		if kind.Name == "version" {
			sample = "v" + strings.Repeat("0", n-1) + "1"
		} else {
			sample = strings.Repeat("0", n)
		}

	case ControlRangeSpinner:
		lo, _, err := inst.span(kind)
		if err != nil {
			return ""
		}
		sample = strings.Repeat("A", lo)

	case ControlChoice:
		if inst.Value != "" {
			sample = inst.Value
		} else if inst.Optional {
			return ""
		} else if len(kind.Options) > 0 {
			sample = kind.Options[0]
		}

	case ControlMultiChoice:
		if len(inst.Values) > 0 {
			sample = inst.Values[0]
		} else if inst.Optional {
			return ""
		} else {
			sample = kind.Example
		}

	default:
		if inst.Optional {
			return ""
		}
		sample = kind.Example
	}

	if sample == "" {
		return ""
	}
	return inst.Prefix + sample + inst.Suffix
}

// expectedShape states, in terms of the kind, what the instance accepts.
// Used verbatim in diagnosis messages after "expected".
func (inst *Instance) expectedShape() string {
	if inst.isLiteral() {
		return fmt.Sprintf("literal %q", inst.Literal)
	}

	kind, ok := LookupKind(inst.Kind)
	if !ok {
		return fmt.Sprintf("known token kind (got %q)", inst.Kind)
	}

	switch kind.Control {
	case ControlSpinner:
		n, err := inst.width(kind)
		if err != nil {
			n = kind.DefaultLen
		}
		if kind.Name == "version" {
			return fmt.Sprintf("v followed by %d digits (e.g. %s)", n, inst.example())
		}
		return fmt.Sprintf("%d digits", n)

	case ControlRangeSpinner:
		lo, hi, err := inst.span(kind)
		if err != nil {
			lo, hi = kind.DefaultMin, kind.DefaultMax
		}
		if lo == hi {
			return fmt.Sprintf("exactly %d letters", lo)
		}
		return fmt.Sprintf("%d to %d letters", lo, hi)

	case ControlChoice:
		if inst.Value != "" {
			return fmt.Sprintf("literal value %q", inst.Value)
		}
		return "one of [" + strings.Join(kind.Options, ", ") + "]"

	case ControlMultiChoice:
		if len(inst.Values) > 0 {
			return "one of [" + strings.Join(inst.Values, ", ") + "]"
		}
		return "one of [" + strings.Join(kind.Options, ", ") + "]"

	default:
		return fmt.Sprintf("%s (e.g. %s)", kind.Desc, kind.Example)
	}
}

func (k Kind) hasOption(value string) bool {
	for _, opt := range k.Options {
		if opt == value {
			return true
		}
	}
	return false
}

// alternation builds a non-capturing escaped alternation of values.
func alternation(values []string) string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = regexp.QuoteMeta(v)
	}
	return "(?:" + strings.Join(escaped, "|") + ")"
}
