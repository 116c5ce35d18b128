package plait

import(
	"errors"
	"fmt"
	"image"
	"strings"
)

var(
	ErrNoInputs               = errors.New("no input images")
	ErrInconsistentImageSizes = errors.New("inconsistent image sizes")
	ErrMissingInputFile       = errors.New("input file not found")
	ErrDecode                 = errors.New("cannot decode image")
	ErrUnsupportedFormat      = errors.New("unsupported image format")
)

// A SizeError lists the dimensions of every input, when they don't all agree.
type SizeError struct {
	Names []string
	Sizes []image.Point
}

func (e *SizeError)Error() string {
	if e == nil {
		return ""
	}
	strs := []string{}
	for i := range e.Sizes {
		strs = append(strs, fmt.Sprintf("%s: %dpx x %dpx", e.name(i), e.Sizes[i].X, e.Sizes[i].Y))
	}
	return fmt.Sprintf("%s [%s]", ErrInconsistentImageSizes, strings.Join(strs, ", "))
}

func (e *SizeError)Unwrap() error { return ErrInconsistentImageSizes }

func (e *SizeError)name(i int) string {
	if i < len(e.Names) && e.Names[i] != "" {
		return e.Names[i]
	}
	return fmt.Sprintf("input #%d", i+1)
}

// CheckImageSizes returns a *SizeError unless all the images have the same width and height.
func CheckImageSizes(names []string, imgs []image.Image) error {
	if len(imgs) == 0 {
		return ErrNoInputs
	}

	sizes := make([]image.Point, len(imgs))
	consistent := true
	for i, img := range imgs {
		sizes[i] = img.Bounds().Size()
		if sizes[i] != sizes[0] {
			consistent = false
		}
	}

	if !consistent {
		return &SizeError{Names: names, Sizes: sizes}
	}
	return nil
}
