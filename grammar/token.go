package grammar

// Control represents the parameter shape a token kind exposes to the
// template author.
type Control uint8

const (
	// ControlStatic kinds carry a fixed pattern with no parameter.
	ControlStatic Control = iota
	// ControlSpinner kinds take one digit-count parameter.
	ControlSpinner
	// ControlRangeSpinner kinds take a min/max length parameter pair.
	ControlRangeSpinner
	// ControlChoice kinds take one value from a fixed option list.
	ControlChoice
	// ControlMultiChoice kinds take a subset of a fixed option list.
	ControlMultiChoice
)

var controlNames = map[Control]string{
	ControlStatic:       "static",
	ControlSpinner:      "spinner",
	ControlRangeSpinner: "range",
	ControlChoice:       "choice",
	ControlMultiChoice:  "multichoice",
}

// String returns the string representation of a control shape.
func (c Control) String() string {
	if name, ok := controlNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// Kind is one catalog entry: a class of filename component and the pattern
// fragment it renders to. Kinds are immutable; templates reference them by
// name through Instance.
type Kind struct {
	// Name is the catalog identifier referenced by instance descriptors.
	Name string
	// Label is the display form used in diagnosis messages.
	Label string
	// Pattern is the fragment template. Spinner kinds hold %d placeholders
	// resolved at compile time; choice kinds may leave it empty and derive
	// the fragment from Options.
	Pattern string
	// Options lists the accepted values for choice kinds.
	Options []string
	// Control selects how the kind is parameterized.
	Control Control
	// Min and Max bound the width parameter for spinner kinds.
	Min int
	Max int
	// DefaultLen is the width used when an instance leaves it unset.
	DefaultLen int
	// DefaultMin and DefaultMax seed range-spinner instances.
	DefaultMin int
	DefaultMax int
	// Example is a sample value used when building template previews.
	Example string
	// Desc is a short human-readable description of the expected shape.
	Desc string
}

// catalog is the fixed token catalog. Order is the authoring-palette order,
// not a matching order; templates define their own sequence.
var catalog = []Kind{
	{
		Name:       "sequence",
		Label:      "<sequence>",
		Pattern:    "[A-Za-z]{%d,%d}",
		Control:    ControlRangeSpinner,
		Min:        2,
		Max:        8,
		DefaultMin: 3,
		DefaultMax: 4,
		Desc:       "letters (sequence code)",
	},
	{
		Name:       "shotNumber",
		Label:      "<shotNumber>",
		Pattern:    "[0-9]{%d}",
		Control:    ControlSpinner,
		Min:        2,
		Max:        8,
		DefaultLen: 4,
		Desc:       "digits (shot number)",
	},
	{
		Name:    "description",
		Label:   "<description>",
		Pattern: "[A-Za-z0-9-]+",
		Control: ControlStatic,
		Example: "comp",
		Desc:    "letters, digits and hyphens",
	},
	{
		Name:    "pixelMapping",
		Label:   "<pixelMapping>",
		Options: []string{"LL180", "LL360"},
		Control: ControlChoice,
		Example: "LL180",
		Desc:    "pixel mapping name",
	},
	{
		Name:    "resolution",
		Label:   "<resolution>",
		Pattern: "[0-9]{1,2}[kK]",
		Control: ControlStatic,
		Example: "4k",
		Desc:    "resolution abbreviation like 2k, 12k",
	},
	{
		Name:    "colorspaceGamma",
		Label:   "<colorspaceGamma>",
		Pattern: "(?:r709|sRGB|acescg|ap0|ap1|p3|rec2020)(?:lin|log|g22|g24|g26)",
		Options: []string{"r709g24", "sRGBg22", "acescglin", "ap0lin", "ap1g22", "p3g26", "rec2020lin"},
		Control: ControlMultiChoice,
		Example: "acescglin",
		Desc:    "colorspace and gamma code",
	},
	{
		Name:    "fps",
		Label:   "<fps>",
		Options: []string{"24", "25", "30", "50", "60", "2997", "5994"},
		Control: ControlChoice,
		Example: "24",
		Desc:    "frame rate",
	},
	{
		Name:       "version",
		Label:      "<version>",
		Pattern:    "v[0-9]{%d}",
		Control:    ControlSpinner,
		Min:        2,
		Max:        4,
		DefaultLen: 3,
		Desc:       "v followed by zero-padded digits",
	},
	{
		Name:    "framePadding",
		Label:   "<framePadding>",
		Pattern: "(?:%0[4-8]d|#{4,8})",
		Control: ControlStatic,
		Example: "%04d",
		Desc:    "frame padding like %04d or ####",
	},
	{
		Name:    "extension",
		Label:   "<extension>",
		Pattern: "(?i:jpg|jpeg|png|mxf|mov|exr)",
		Options: []string{"exr", "mov", "jpg", "jpeg", "png", "tiff", "dpx", "mxf"},
		Control: ControlMultiChoice,
		Example: "exr",
		Desc:    "file extension",
	},
}

// Kinds returns the full token catalog in palette order.
// The returned slice is a copy; catalog entries themselves are shared and
// must be treated as read-only.
func Kinds() []Kind {
	out := make([]Kind, len(catalog))
	copy(out, catalog)
	return out
}

// LookupKind retrieves a catalog kind by name.
// Returns the kind and true if found, or a zero kind and false if not.
func LookupKind(name string) (Kind, bool) {
	for _, k := range catalog {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}
