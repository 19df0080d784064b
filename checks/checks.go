package checks

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vitalvas/namekit/fuzzy"
	"github.com/vitalvas/namekit/grammar"
	"github.com/vitalvas/namekit/ruleset"
)

const defaultVersionPattern = `v\d{3}`

// Run evaluates every configured rule section against the scene and returns
// the combined findings. Absent sections contribute nothing.
func Run(doc *ruleset.Document, scene *Scene) []Issue {
	var issues []Issue
	issues = append(issues, CheckNaming(doc.FilePaths, scene)...)
	issues = append(issues, CheckColorspaces(doc.Colorspaces, scene)...)
	issues = append(issues, CheckFrameRange(doc.FrameRange, scene)...)
	issues = append(issues, CheckChannels(doc.Channels, scene)...)
	issues = append(issues, CheckVersioning(doc.Versioning, scene)...)
	issues = append(issues, CheckRenderSettings(doc.RenderSettings, scene)...)
	issues = append(issues, CheckNodeNames(doc.NodeNames, scene)...)
	issues = append(issues, CheckDisabledNodes(doc.NodeIntegrity, scene)...)
	return issues
}

// CheckNaming validates Write node output paths: relative-path policy, then
// filename structure. The compiled pattern is the fast accept path; on
// rejection the template walk supplies the per-token diagnosis. Names the
// fast path accepts still get the version under-padding probe, since a loose
// override pattern can accept v01 where the standard is v001.
func CheckNaming(rules *ruleset.FilePaths, scene *Scene) []Issue {
	if rules == nil {
		return nil
	}

	var (
		tmpl     *grammar.Template
		compiled *grammar.CompiledPattern
		err      error
	)

	if len(rules.FilenameTokens) > 0 {
		tmpl, err = ruleset.BuildTemplate(rules.FilenameTokens)
		if err == nil {
			compiled, err = tmpl.Compile()
		}
	}
	// An override replaces the fast accept path; the token walk still
	// diagnoses against the structured template when one is configured.
	if err == nil && rules.NamingPatternRegex != "" {
		compiled, err = grammar.CompileOverride(rules.NamingPatternRegex)
	}
	if err != nil {
		return []Issue{{
			Type:     "naming_pattern",
			Current:  err.Error(),
			Expected: "a compilable filename template",
			Severity: severity(rules.SeverityNamingPattern, SeverityError),
		}}
	}

	var issues []Issue
	for _, node := range scene.writes() {
		if node.FilePath == "" {
			issues = append(issues, Issue{
				Type:     "missing_output_path",
				Node:     node.Name,
				NodeType: node.Class,
				Expected: "an output file path",
				Severity: severity(rules.SeverityNamingPattern, SeverityError),
			})
			continue
		}

		if rules.RelativePathRequired && filepath.IsAbs(node.FilePath) {
			issues = append(issues, Issue{
				Type:     "absolute_path",
				Node:     node.Name,
				NodeType: node.Class,
				Current:  node.FilePath,
				Expected: "a path relative to the project root",
				Severity: severity(rules.SeverityRelativePath, SeverityWarning),
			})
		}

		if compiled == nil {
			continue
		}

		name := node.filename()
		if compiled.Match(name) {
			if run, under := grammar.UnderPaddedVersion(name, 3); under {
				issues = append(issues, Issue{
					Type:     "version_underpadded",
					Node:     node.Name,
					NodeType: node.Class,
					Current:  run,
					Expected: "a three-digit version like v001",
					Severity: SeverityWarning,
				})
			}
			continue
		}

		issue := Issue{
			Type:     "naming_pattern",
			Node:     node.Name,
			NodeType: node.Class,
			Current:  name,
			Severity: severity(rules.SeverityNamingPattern, SeverityError),
		}
		if tmpl != nil {
			d := tmpl.Diagnose(name)
			if len(d) > 0 {
				issue.Expected = d[0]
				issue.Details = d
			}
		}
		if issue.Expected == "" {
			// No template, or an override stricter than the template.
			issue.Expected = "a name matching " + compiled.Source
		}
		issues = append(issues, issue)
	}

	return issues
}

// CheckColorspaces validates node colorspaces per node class against the
// configured allow-lists, accepting vendor spelling drift through the fuzzy
// matcher.
func CheckColorspaces(rules map[string]*ruleset.AllowList, scene *Scene) []Issue {
	if len(rules) == 0 {
		return nil
	}

	var issues []Issue
	for _, node := range scene.Nodes {
		list, ok := rules[node.Class]
		if !ok || node.Colorspace == "" {
			continue
		}
		if fuzzy.Accept(node.Colorspace, list.Allowed) {
			continue
		}
		issues = append(issues, Issue{
			Type:     "colorspace",
			Node:     node.Name,
			NodeType: node.Class,
			Current:  node.Colorspace,
			Expected: "one of [" + strings.Join(list.Allowed, ", ") + "]",
			Severity: severity(list.Severity, SeverityError),
		})
	}
	return issues
}

// CheckFrameRange validates the script frame range bounds.
func CheckFrameRange(rules *ruleset.FrameRange, scene *Scene) []Issue {
	if rules == nil {
		return nil
	}

	sev := severity(rules.Severity, SeverityWarning)
	frames := scene.LastFrame - scene.FirstFrame + 1

	var issues []Issue
	if rules.MinFrames != nil && frames < *rules.MinFrames {
		issues = append(issues, Issue{
			Type:     "frame_range",
			Current:  fmt.Sprintf("%d frames", frames),
			Expected: fmt.Sprintf("at least %d frames", *rules.MinFrames),
			Severity: sev,
		})
	}
	if rules.StartFrame != nil && scene.FirstFrame != *rules.StartFrame {
		issues = append(issues, Issue{
			Type:     "frame_range",
			Current:  fmt.Sprintf("starts at %d", scene.FirstFrame),
			Expected: fmt.Sprintf("starts at %d", *rules.StartFrame),
			Severity: sev,
		})
	}
	if rules.EndFrame != nil && scene.LastFrame != *rules.EndFrame {
		issues = append(issues, Issue{
			Type:     "frame_range",
			Current:  fmt.Sprintf("ends at %d", scene.LastFrame),
			Expected: fmt.Sprintf("ends at %d", *rules.EndFrame),
			Severity: sev,
		})
	}
	return issues
}

// CheckChannels validates Write node output channels. RequireRGBA defaults
// to true when the section is present.
func CheckChannels(rules *ruleset.Channels, scene *Scene) []Issue {
	if rules == nil {
		return nil
	}

	requireRGBA := rules.RequireRGBA == nil || *rules.RequireRGBA

	var issues []Issue
	for _, node := range scene.writes() {
		ch := strings.ToLower(node.Channels)
		switch {
		case requireRGBA && ch == "rgb":
			sev := severity(rules.Severity, SeverityError)
			if rules.WarnOnRGBOnly {
				sev = SeverityWarning
			}
			issues = append(issues, Issue{
				Type:     "channels",
				Node:     node.Name,
				NodeType: node.Class,
				Current:  node.Channels,
				Expected: "rgba",
				Severity: sev,
			})
		case requireRGBA && ch != "rgba" && ch != "":
			sev := severity(rules.Severity, SeverityError)
			if rules.WarnOnExtraChannels && ch == "all" {
				sev = SeverityWarning
			}
			issues = append(issues, Issue{
				Type:     "channels",
				Node:     node.Name,
				NodeType: node.Class,
				Current:  node.Channels,
				Expected: "rgba",
				Severity: sev,
			})
		}
	}
	return issues
}

// CheckVersioning requires a version token in every Write output filename.
func CheckVersioning(rules *ruleset.Versioning, scene *Scene) []Issue {
	if rules == nil || !rules.RequireVersionToken {
		return nil
	}

	expr := rules.VersionTokenRegex
	if expr == "" {
		expr = defaultVersionPattern
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return []Issue{{
			Type:     "versioning",
			Current:  err.Error(),
			Expected: "a compilable version token pattern",
			Severity: severity(rules.Severity, SeverityError),
		}}
	}

	var issues []Issue
	for _, node := range scene.writes() {
		if node.FilePath == "" || re.MatchString(node.filename()) {
			continue
		}
		issues = append(issues, Issue{
			Type:     "versioning",
			Node:     node.Name,
			NodeType: node.Class,
			Current:  node.filename(),
			Expected: "a version token matching " + expr,
			Severity: severity(rules.Severity, SeverityError),
		})
	}
	return issues
}

// CheckRenderSettings validates Write node render parameters against the
// per-file-type knob allow-lists.
func CheckRenderSettings(rules map[string]*ruleset.RenderRules, scene *Scene) []Issue {
	if len(rules) == 0 {
		return nil
	}

	var issues []Issue
	for _, node := range scene.writes() {
		section, ok := rules[node.Class]
		if !ok {
			continue
		}
		knobRules, ok := section.FileTypeRules[strings.ToLower(node.FileType)]
		if !ok {
			continue
		}
		for knob, allowed := range knobRules {
			value, present := node.Knobs[knob]
			if !present || allowed.Contains(value) {
				continue
			}
			issues = append(issues, Issue{
				Type:     "render_settings",
				Node:     node.Name,
				NodeType: node.Class,
				Current:  knob + "=" + value,
				Expected: knob + " in [" + strings.Join(allowed, ", ") + "]",
				Severity: severity(section.Severity, SeverityWarning),
			})
		}
	}
	return issues
}

// CheckNodeNames requires every node name to match the configured pattern.
func CheckNodeNames(rules *ruleset.NodeNames, scene *Scene) []Issue {
	if rules == nil || rules.Pattern == "" {
		return nil
	}

	re, err := regexp.Compile(rules.Pattern)
	if err != nil {
		return []Issue{{
			Type:     "node_names",
			Current:  err.Error(),
			Expected: "a compilable node name pattern",
			Severity: severity(rules.Severity, SeverityInfo),
		}}
	}

	var issues []Issue
	for _, node := range scene.Nodes {
		if re.MatchString(node.Name) {
			continue
		}
		issues = append(issues, Issue{
			Type:     "node_names",
			Node:     node.Name,
			NodeType: node.Class,
			Current:  node.Name,
			Expected: "a name matching " + rules.Pattern,
			Severity: severity(rules.Severity, SeverityInfo),
		})
	}
	return issues
}

// CheckDisabledNodes reports disabled nodes left in the script as one
// aggregate finding.
func CheckDisabledNodes(rules *ruleset.NodeIntegrity, scene *Scene) []Issue {
	if rules == nil || !rules.CheckDisabledNodes {
		return nil
	}

	var names []string
	for _, node := range scene.Nodes {
		if node.Disabled {
			names = append(names, node.Name)
		}
	}
	if len(names) == 0 {
		return nil
	}

	return []Issue{{
		Type:     "disabled_nodes",
		Current:  fmt.Sprintf("%d disabled node(s)", len(names)),
		Expected: "no disabled nodes",
		Severity: severity(rules.Severity, SeverityInfo),
		Details:  names,
	}}
}
