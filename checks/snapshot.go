// Package checks runs rule documents against a scene snapshot and collects
// findings. The snapshot is plain data captured by the host integration; the
// checks never call back into the host, so a snapshot can be validated
// off-line, concurrently, or long after capture.
package checks

import "strings"

// Node is one captured node of the scene graph.
type Node struct {
	Name       string
	Class      string
	FilePath   string
	Colorspace string
	Channels   string
	FileType   string
	Disabled   bool
	// Knobs holds render parameters by knob name, stringified at capture.
	Knobs map[string]string
}

// Scene is a point-in-time capture of the script under validation.
type Scene struct {
	Nodes      []Node
	FirstFrame int
	LastFrame  int
}

// Stats summarizes the scene's node population by role.
type Stats struct {
	Total      int
	Reads      int
	Writes     int
	Composites int
	Effects    int
	Other      int
}

var compositeClasses = map[string]bool{
	"Merge2": true, "Merge": true, "Keymix": true, "Copy": true,
}

var effectClasses = map[string]bool{
	"Grade": true, "ColorCorrect": true, "Blur": true, "Transform": true,
	"Defocus": true, "Glow2": true,
}

// Stats tallies the scene's nodes by class role.
func (s *Scene) Stats() Stats {
	st := Stats{Total: len(s.Nodes)}
	for _, n := range s.Nodes {
		switch {
		case strings.HasPrefix(n.Class, "Read"):
			st.Reads++
		case strings.HasPrefix(n.Class, "Write"):
			st.Writes++
		case compositeClasses[n.Class]:
			st.Composites++
		case effectClasses[n.Class]:
			st.Effects++
		default:
			st.Other++
		}
	}
	return st
}

// writes returns the scene's Write nodes in capture order.
func (s *Scene) writes() []Node {
	var out []Node
	for _, n := range s.Nodes {
		if strings.HasPrefix(n.Class, "Write") {
			out = append(out, n)
		}
	}
	return out
}

// filename returns the last path element of the node's output path.
func (n *Node) filename() string {
	path := n.FilePath
	if idx := strings.LastIndexAny(path, "/\\"); idx >= 0 {
		path = path[idx+1:]
	}
	return path
}
