package plait

import(
	"fmt"
	"image"
	"path/filepath"
	"time"
)

// A Layer holds an image.Image loaded from an input file, along with
// whatever we could find out about where it came from.
type Layer struct {
	LoadFilename       string
	Format             string     // "png", "jpeg", "tiff", etc.

	// From the EXIF data, if there was any
	CameraModel        string
	Taken              time.Time

	image.Image
}

func (l Layer)String() string {
	str := fmt.Sprintf("%s: %s, %dpx x %dpx", l.Filename(), l.Format, l.Bounds().Dx(), l.Bounds().Dy())
	if l.CameraModel != "" {
		str += fmt.Sprintf(", %s", l.CameraModel)
	}
	if !l.Taken.IsZero() {
		str += fmt.Sprintf(", %s", l.Taken.Format("2006-01-02 15:04:05"))
	}
	return str
}

func (l Layer)Filename() string {
	return filepath.Base(l.LoadFilename)
}
