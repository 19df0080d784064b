package grammar

import "regexp"

// Match reports whether the filename matches the compiled pattern. It
// performs exactly one anchored attempt and produces no diagnosis; callers
// fall back to Template.Diagnose when they need to know why a name was
// rejected.
func (p *CompiledPattern) Match(filename string) bool {
	if p == nil || p.re == nil {
		return false
	}
	return p.re.MatchString(filename)
}

var versionRun = regexp.MustCompile(`(?i)v([0-9]+)`)

// UnderPaddedVersion reports the first version digit run in the filename
// when it is shorter than want digits. This is the cheap post-accept sanity
// check for names the fast path already matched: a looser override pattern
// can accept v01 where the pipeline standard is v001.
func UnderPaddedVersion(filename string, want int) (string, bool) {
	m := versionRun.FindStringSubmatch(filename)
	if m == nil {
		return "", false
	}
	if len(m[1]) >= want {
		return "", false
	}
	return m[0], true
}
