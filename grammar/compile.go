// Package grammar turns user-authored filename templates into matching
// patterns and precise per-token diagnoses.
//
// A Template is an ordered list of token instances drawn from a fixed
// catalog (sequence code, shot number, version, extension, ...), each with
// its chosen parameters and trailing separator. Compile assembles the
// template into one anchored composite pattern plus a preview example;
// CompiledPattern.Match is the cheap whole-string accept/reject. When the
// fast path rejects, Template.Diagnose walks the filename token by token and
// reports which token failed, what was expected, what was found, and whether
// a separator is missing.
//
// Example:
//
//	tmpl := &grammar.Template{Instances: []grammar.Instance{
//	    {Kind: "sequence", MinLen: 4, MaxLen: 4},
//	    {Kind: "shotNumber", Digits: 4, Separator: "_"},
//	    {Kind: "version", Digits: 3, Separator: "."},
//	    {Kind: "extension", Values: []string{"exr", "mov"}},
//	}}
//
//	compiled, err := tmpl.Compile()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !compiled.Match("ABCD0123_v001.exr") {
//	    for _, entry := range tmpl.Diagnose("ABCD0123_v001.exr") {
//	        fmt.Println(entry)
//	    }
//	}
//
// The engine is purely computational: it performs no I/O, and all operations
// are bounded by input length. Distinct templates can be validated
// concurrently without coordination; edits to a single template must be
// serialized against its validation calls.
package grammar

import (
	"regexp"
	"strings"
)

// CompiledPattern is the derived matching artifact of a template: one
// anchored composite regular expression plus a parallel example string.
// It is immutable and safe for concurrent use.
type CompiledPattern struct {
	// Source is the composite pattern text, anchored at both ends.
	Source string
	// Example is a sample filename accepted by the pattern, for previews.
	Example string

	re *regexp.Regexp
}

// Compile assembles the template into a composite pattern and example.
// Fragments are concatenated in template order; each non-final entry is
// followed by its escaped separator, and optional entries wrap fragment and
// separator together so the separator binds only when the token is present.
//
// On failure the returned *CompileError identifies the offending entry and
// no pattern is returned.
func (t *Template) Compile() (*CompiledPattern, error) {
	if t == nil || len(t.Instances) == 0 {
		return nil, compileErr(-1, "", ErrEmptyTemplate)
	}

	var pattern, example strings.Builder
	pattern.WriteString("^")

	last := len(t.Instances) - 1
	for i := range t.Instances {
		inst := &t.Instances[i]

		frag, err := inst.fragment()
		if err != nil {
			return nil, compileErr(i, inst.Kind, err)
		}

		// Every fragment must stand alone as a valid pattern so a bad
		// entry is reported by index, not as a composite syntax error.
		if _, err := regexp.Compile("^(?:" + frag + ")$"); err != nil {
			return nil, compileErr(i, inst.Kind, err)
		}

		sep := ""
		if i < last {
			sep = regexp.QuoteMeta(inst.Separator)
		}

		if inst.Optional {
			pattern.WriteString("(?:" + frag + sep + ")?")
		} else {
			pattern.WriteString(frag)
			pattern.WriteString(sep)
		}

		if sample := inst.example(); sample != "" {
			example.WriteString(sample)
			if i < last {
				example.WriteString(inst.Separator)
			}
		}
	}

	pattern.WriteString("$")

	re, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, compileErr(-1, "", err)
	}

	return &CompiledPattern{
		Source:  pattern.String(),
		Example: example.String(),
		re:      re,
	}, nil
}

// CompileOverride compiles a raw power-user pattern into a CompiledPattern
// usable by the fast path. Anchors are added when missing. The pattern
// carries no example and the incremental matcher keeps validating against
// the structured template, so an override may accept names the token walk
// rejects.
func CompileOverride(expr string) (*CompiledPattern, error) {
	if expr == "" {
		return nil, compileErr(-1, "", ErrEmptyTemplate)
	}

	source := expr
	if !strings.HasPrefix(source, "^") {
		source = "^" + source
	}
	if !strings.HasSuffix(source, "$") {
		source += "$"
	}

	re, err := regexp.Compile(source)
	if err != nil {
		return nil, compileErr(-1, "", err)
	}

	return &CompiledPattern{Source: source, re: re}, nil
}
