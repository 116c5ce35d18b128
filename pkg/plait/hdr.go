package plait

import(
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"
)

// HDRImage wraps a composite so it can be written by the hdr codecs.
// Channel bytes map linearly onto [0.0, 1.0]; alpha is not carried.
type HDRImage struct {
	*image.NRGBA
}

// Implement image.Image
func (hi HDRImage)ColorModel() color.Model       { return hdrcolor.RGBModel }
func (hi HDRImage)At(x, y int) color.Color       { return hi.HDRAt(x, y) }

// Implement hdr.Image
func (hi HDRImage)Size() int                     { return hi.Bounds().Dx() * hi.Bounds().Dy() }
func (hi HDRImage)HDRAt(x, y int) hdrcolor.Color {
	c := hi.NRGBAAt(x, y)
	return hdrcolor.RGB{
		R: float64(c.R) / float64(0xFF),
		G: float64(c.G) / float64(0xFF),
		B: float64(c.B) / float64(0xFF),
	}
}

// WriteToHDR writes the composite as a Radiance RGBE file.
func WriteToHDR(img *image.NRGBA, filename string) error {
	buf := bytes.Buffer{}
	if err := rgbe.Encode(&buf, HDRImage{img}); err != nil {
		return fmt.Errorf("WriteToHDR, encoding RGBE '%s': %w", filename, err)
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("WriteToHDR, open+w '%s': %w", filename, err)
	}
	return nil
}
