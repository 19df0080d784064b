package ruleset

import (
	"fmt"
	"strings"

	"github.com/vitalvas/namekit/grammar"
)

// instance converts one persisted descriptor into a grammar instance.
// Value carries the kind parameter in whatever shape the codec produced:
// numbers decode the spinner width, a string selects a choice option, a list
// selects a multi-choice subset, and the string "none" marks the token
// optional with no value pinned.
func (c TokenConfig) instance() grammar.Instance {
	inst := grammar.Instance{
		Kind:      c.Name,
		Literal:   c.Literal,
		Optional:  c.Optional,
		Separator: c.Separator,
		Prefix:    c.Prefix,
		Suffix:    c.Suffix,
		MinLen:    c.MinValue,
		MaxLen:    c.MaxValue,
	}

	switch v := c.Value.(type) {
	case nil:
	case int:
		inst.Digits = v
	case int64:
		inst.Digits = int(v)
	case float64:
		inst.Digits = int(v)
	case string:
		if strings.EqualFold(v, "none") {
			inst.Optional = true
		} else {
			inst.Value = v
		}
	case []string:
		inst.Values = v
	case []any:
		for _, item := range v {
			inst.Values = append(inst.Values, fmt.Sprint(item))
		}
	}

	return inst
}

// BuildTemplate assembles the persisted descriptor list into a grammar
// template and verifies it compiles. The returned template is detached from
// the document: later document edits do not affect it.
func BuildTemplate(configs []TokenConfig) (*grammar.Template, error) {
	tmpl := &grammar.Template{
		Instances: make([]grammar.Instance, 0, len(configs)),
	}
	for _, c := range configs {
		tmpl.Instances = append(tmpl.Instances, c.instance())
	}

	if _, err := tmpl.Compile(); err != nil {
		return nil, err
	}

	return tmpl, nil
}
