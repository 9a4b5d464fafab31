package svgfx

// Input identifies where a primitive reads its pixels from, matching the
// SVG "in" and "in2" attributes.
type Input struct {
	kind inputKind
	name string
}

type inputKind int

const (
	// inputUnspecified chains from the previous primitive's output, or
	// from the source graphic for the first primitive.
	inputUnspecified inputKind = iota
	inputSourceGraphic
	inputSourceAlpha
	inputBackgroundImage
	inputBackgroundAlpha
	inputFillPaint
	inputStrokePaint
	inputNamed
)

// Unspecified returns the default input: the previous primitive's output,
// or the source graphic when no primitive has run yet.
func Unspecified() Input { return Input{kind: inputUnspecified} }

// SourceGraphic returns the input referring to the unfiltered element.
func SourceGraphic() Input { return Input{kind: inputSourceGraphic} }

// SourceAlpha returns the input referring to the unfiltered element's
// alpha channel.
func SourceAlpha() Input { return Input{kind: inputSourceAlpha} }

// BackgroundImage returns the input referring to the canvas under the
// filtered element.
func BackgroundImage() Input { return Input{kind: inputBackgroundImage} }

// BackgroundAlpha returns the alpha channel of the background image.
func BackgroundAlpha() Input { return Input{kind: inputBackgroundAlpha} }

// FillPaint returns the input referring to the element's fill paint.
func FillPaint() Input { return Input{kind: inputFillPaint} }

// StrokePaint returns the input referring to the element's stroke paint.
func StrokePaint() Input { return Input{kind: inputStrokePaint} }

// Named returns the input referring to an earlier primitive's named
// result.
func Named(name string) Input { return Input{kind: inputNamed, name: name} }

// ParseInput maps an SVG "in" attribute value to an Input. The keywords
// map to their selectors; any other non-empty string is a named result
// reference, and the empty string is the unspecified input.
func ParseInput(s string) Input {
	switch s {
	case "":
		return Unspecified()
	case "SourceGraphic":
		return SourceGraphic()
	case "SourceAlpha":
		return SourceAlpha()
	case "BackgroundImage":
		return BackgroundImage()
	case "BackgroundAlpha":
		return BackgroundAlpha()
	case "FillPaint":
		return FillPaint()
	case "StrokePaint":
		return StrokePaint()
	default:
		return Named(s)
	}
}

// IsUnspecified reports whether the input chains from the previous
// primitive.
func (in Input) IsUnspecified() bool { return in.kind == inputUnspecified }

func (in Input) String() string {
	switch in.kind {
	case inputUnspecified:
		return "(unspecified)"
	case inputSourceGraphic:
		return "SourceGraphic"
	case inputSourceAlpha:
		return "SourceAlpha"
	case inputBackgroundImage:
		return "BackgroundImage"
	case inputBackgroundAlpha:
		return "BackgroundAlpha"
	case inputFillPaint:
		return "FillPaint"
	case inputStrokePaint:
		return "StrokePaint"
	case inputNamed:
		return in.name
	default:
		return "(unknown)"
	}
}
