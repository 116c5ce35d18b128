package plait

// Writing the output image, in the same format as the first input.

import(
	"bytes"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type EncodeFunc func(io.Writer, image.Image, Config) error

var encoders = map[string]EncodeFunc{
	"png":  func(w io.Writer, img image.Image, _ Config) error { return png.Encode(w, img) },
	"gif":  func(w io.Writer, img image.Image, _ Config) error { return gif.Encode(w, img, nil) },
	"bmp":  func(w io.Writer, img image.Image, _ Config) error { return bmp.Encode(w, img) },
	"jpeg": func(w io.Writer, img image.Image, c Config) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: c.JPEGQuality})
	},
	"tiff": func(w io.Writer, img image.Image, _ Config) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
}

// The formats that can store straight alpha. Anything else is flattened
// before encoding, even with KeepAlpha, or the encoder would fold alpha
// into the color channels.
var alphaFormats = map[string]bool{
	"png":  true,
	"tiff": true,
}

// OutputFilename works out where the output goes. With nothing
// requested, it sits next to the first input, as "<name>-plaited<ext>".
// The output always uses the first input's extension (and so format);
// a requested name with some other extension has it replaced.
func OutputFilename(firstInput, requested string) (string, error) {
	ext := filepath.Ext(firstInput)

	out := requested
	if out == "" {
		out = strings.TrimSuffix(firstInput, ext) + "-plaited" + ext
	} else if filepath.Ext(out) != ext {
		out = strings.TrimSuffix(out, filepath.Ext(out)) + ext
	}

	return filepath.Abs(out)
}

// GetEncoder finds the encoder for the filename's format, so we can
// fail before doing any work if we won't be able to write the result.
func GetEncoder(filename string) (EncodeFunc, error) {
	format := FormatFromFilename(filename)
	if enc, exists := encoders[format]; exists {
		return enc, nil
	}
	if format == "" {
		format = filepath.Ext(filename)
	}
	return nil, fmt.Errorf("%w: can't write '%s' files", ErrUnsupportedFormat, format)
}

// Flatten returns a copy of the image with the alpha channel dropped
// (every pixel fully opaque, color channels unchanged), so that encoders
// write 24 bit pixels.
func Flatten(img *image.NRGBA) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := img.PixOffset(x, y)
			j := dst.PixOffset(x, y)
			copy(dst.Pix[j:j+3], img.Pix[i:i+3])
			dst.Pix[j+3] = 0xff
		}
	}
	return dst
}

// Save encodes the composite image into `filename`. The file is only
// created once encoding has succeeded. Alpha is only written with
// KeepAlpha, and only to formats that can hold it.
func Save(img *image.NRGBA, filename string, c Config) error {
	enc, err := GetEncoder(filename)
	if err != nil {
		return err
	}

	var toWrite image.Image = img
	if !c.KeepAlpha || !alphaFormats[FormatFromFilename(filename)] {
		toWrite = Flatten(img)
	}

	buf := bytes.Buffer{}
	if err := enc(&buf, toWrite, c); err != nil {
		return fmt.Errorf("encode '%s': %w", filename, err)
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("open+w '%s': %w", filename, err)
	}
	return nil
}

func WritePNG(img image.Image, filename string) error {
	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return png.Encode(writer, img)
	}
}
