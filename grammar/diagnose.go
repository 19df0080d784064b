package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

// Diagnosis is the ordered list of human-readable findings produced by one
// validation attempt. An empty diagnosis means the filename conforms.
type Diagnosis []string

// previewLimit bounds the "found" excerpt quoted in diagnosis entries.
const previewLimit = 15

// Diagnose explains why a filename does not conform to the template. Names
// the compiled composite accepts always get an empty diagnosis: the walk
// below matches each instance greedily with no backtracking, so on templates
// whose adjacent token alphabets overlap across an empty separator it could
// otherwise reject names the composite accepts.
//
// On rejection the filename is walked left to right, matching one instance's
// pattern (plus its separator) at a time against the unconsumed remainder.
// The walk stops at the first failing required instance: past that point the
// cursor is desynchronized and later findings would be guesses.
//
// A failing required instance produces one entry naming its label, the
// expected shape and the leading remainder; when its token text is present
// but the following separator is not, a second entry names the two instances
// the separator belongs between. Optional instances that do not match are
// skipped without consuming input. Leftover input after a complete walk is
// reported as trailing content.
func (t *Template) Diagnose(filename string) Diagnosis {
	if t == nil || len(t.Instances) == 0 {
		return Diagnosis{"no template configured"}
	}

	if compiled, err := t.Compile(); err == nil && compiled.Match(filename) {
		return nil
	}

	if filename == "" {
		return Diagnosis{"empty filename"}
	}

	remaining := filename
	last := len(t.Instances) - 1

	for i := range t.Instances {
		inst := &t.Instances[i]

		frag, err := inst.fragment()
		if err != nil {
			return Diagnosis{fmt.Sprintf("pattern error in %s: %v", inst.label(), err)}
		}

		sep := ""
		if i < last {
			sep = inst.Separator
		}

		full, err := regexp.Compile("^(?:" + frag + regexp.QuoteMeta(sep) + ")")
		if err != nil {
			return Diagnosis{fmt.Sprintf("pattern error in %s: %v", inst.label(), err)}
		}

		if loc := full.FindStringIndex(remaining); loc != nil {
			remaining = remaining[loc[1]:]
			continue
		}

		if inst.Optional {
			// Absent optional token: its separator is not required either.
			continue
		}

		d := Diagnosis{fmt.Sprintf("%s: found %q, expected %s",
			inst.label(), preview(remaining, sep), inst.expectedShape())}

		if sep != "" {
			if entry, ok := missingSeparator(inst, &t.Instances[i+1], frag, sep, remaining); ok {
				d = append(d, entry)
			}
		}

		return d
	}

	if remaining != "" {
		if strings.Contains(remaining, ".") {
			return Diagnosis{fmt.Sprintf("unexpected trailing content %q: looks like a misplaced extension", remaining)}
		}
		return Diagnosis{fmt.Sprintf("unexpected trailing content %q", remaining)}
	}

	return nil
}

// missingSeparator reports whether the instance's token text is present at
// the head of remaining with the required separator absent after it, and
// builds the entry naming the two instances the separator sits between.
func missingSeparator(inst, next *Instance, frag, sep, remaining string) (string, bool) {
	bare, err := regexp.Compile("^(?:" + frag + ")")
	if err != nil {
		return "", false
	}

	loc := bare.FindStringIndex(remaining)
	if loc == nil || loc[1] == 0 {
		return "", false
	}
	if strings.HasPrefix(remaining[loc[1]:], sep) {
		return "", false
	}

	return fmt.Sprintf("missing separator %q between %s and %s",
		sep, inst.label(), next.label()), true
}

// preview returns the leading remainder excerpt quoted in an entry, split at
// the next occurrence of the expected separator and bounded to previewLimit.
func preview(remaining, sep string) string {
	head := remaining
	if sep != "" {
		if idx := strings.Index(head, sep); idx > 0 {
			head = head[:idx]
		}
	}
	if len(head) > previewLimit {
		head = head[:previewLimit] + "..."
	}
	return head
}
