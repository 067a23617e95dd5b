package media

import (
	"fmt"
	"strings"
)

// TransformOptions is the transformation bag from a transform request.
// Numeric fields are pointers so that an absent key and an explicit zero can
// be told apart; zero values count as absent either way, matching the
// original API contract.
type TransformOptions struct {
	Width     *int   `json:"width,omitempty"`
	Height    *int   `json:"height,omitempty"`
	Crop      string `json:"crop,omitempty"`
	Rotate    *int   `json:"rotate,omitempty"`
	Flip      string `json:"flip,omitempty"`
	Effect    string `json:"effect,omitempty"`
	Watermark bool   `json:"watermark,omitempty"`
	Format    string `json:"format,omitempty"`
	Compress  bool   `json:"compress,omitempty"`
}

// Directive is a single step of a transformation chain. Component renders
// the step as one Cloudinary URL component.
type Directive interface {
	Component() string
}

// Resize scales or crops the asset to the given dimensions. A zero Width or
// Height is omitted from the rendered component.
type Resize struct {
	Width  int
	Height int
	Crop   string
}

func (d Resize) Component() string {
	parts := []string{"c_" + d.Crop}
	if d.Width > 0 {
		parts = append(parts, fmt.Sprintf("w_%d", d.Width))
	}
	if d.Height > 0 {
		parts = append(parts, fmt.Sprintf("h_%d", d.Height))
	}
	return strings.Join(parts, ",")
}

// Rotate turns the asset by a number of degrees.
type Rotate struct {
	Angle int
}

func (d Rotate) Component() string {
	return fmt.Sprintf("a_%d", d.Angle)
}

// FlipVertical mirrors the asset along the horizontal axis.
type FlipVertical struct{}

func (FlipVertical) Component() string {
	return "a_vflip"
}

// FlipHorizontal mirrors the asset along the vertical axis.
type FlipHorizontal struct{}

func (FlipHorizontal) Component() string {
	return "fl_flip"
}

// Effect applies a named Cloudinary effect such as "sepia" or "grayscale".
type Effect struct {
	Name string
}

func (d Effect) Component() string {
	return "e_" + d.Name
}

// Watermark stamps fixed overlay text in the bottom-right corner.
type Watermark struct{}

func (Watermark) Component() string {
	return "co_white,g_south_east,l_text:Arial_40:(O_o),o_50"
}

// Compile maps each recognized option to exactly one directive, in a fixed
// order: resize, rotate, flip, effect, watermark. Absent options contribute
// nothing; empty options compile to an empty list.
func Compile(o TransformOptions) []Directive {
	var dirs []Directive

	if intOr(o.Width) > 0 || intOr(o.Height) > 0 {
		crop := o.Crop
		if crop == "" {
			crop = "scale"
		}
		dirs = append(dirs, Resize{Width: intOr(o.Width), Height: intOr(o.Height), Crop: crop})
	}

	if intOr(o.Rotate) != 0 {
		dirs = append(dirs, Rotate{Angle: intOr(o.Rotate)})
	}

	switch o.Flip {
	case "v":
		dirs = append(dirs, FlipVertical{})
	case "h":
		dirs = append(dirs, FlipHorizontal{})
	}

	if o.Effect != "" {
		dirs = append(dirs, Effect{Name: o.Effect})
	}

	if o.Watermark {
		dirs = append(dirs, Watermark{})
	}

	return dirs
}

// Chain renders a directive list plus the request-level format and quality
// hints as a slash-separated transformation string. An empty chain leaves
// the asset URL unmodified.
func Chain(dirs []Directive, o TransformOptions) string {
	components := make([]string, 0, len(dirs)+1)
	for _, d := range dirs {
		components = append(components, d.Component())
	}

	var hints []string
	if o.Format != "" {
		hints = append(hints, "f_"+o.Format)
	}
	if o.Compress {
		hints = append(hints, "q_auto")
	}
	if len(hints) > 0 {
		components = append(components, strings.Join(hints, ","))
	}

	return strings.Join(components, "/")
}

func intOr(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
