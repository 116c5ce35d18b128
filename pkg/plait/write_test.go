package plait

import(
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestOutputFilename(t *testing.T) {
	dir := t.TempDir()
	abs := func(s string) string { return filepath.Join(dir, s) }

	for _, tc := range []struct {
		name      string
		first     string
		requested string
		want      string
	}{
		{"default", abs("in.png"), "", abs("in-plaited.png")},
		{"default tiff", abs("a.b.tif"), "", abs("a.b-plaited.tif")},
		{"requested", abs("in.png"), abs("out.png"), abs("out.png")},
		{"extension forced", abs("in.jpg"), abs("out.png"), abs("out.jpg")},
		{"extension added", abs("in.bmp"), abs("out"), abs("out.bmp")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := OutputFilename(tc.first, tc.requested)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestOutputFilenameIsAbsolute(t *testing.T) {
	got, err := OutputFilename("in.png", "")
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(got) || filepath.Base(got) != "in-plaited.png" {
		t.Errorf("got %q", got)
	}
}

func TestGetEncoder(t *testing.T) {
	for _, name := range []string{"a.png", "a.PNG", "a.jpg", "a.jpeg", "a.gif", "a.tif", "a.tiff", "a.bmp"} {
		if _, err := GetEncoder(name); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	for _, name := range []string{"a.webp", "a.xyz", "a"} {
		if _, err := GetEncoder(name); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%s: got %v, want ErrUnsupportedFormat", name, err)
		}
	}
}

func TestFlatten(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 0})
	src.SetNRGBA(1, 0, color.NRGBA{R: 40, G: 50, B: 60, A: 128})

	flat := Flatten(src)
	if !flat.Opaque() {
		t.Fatalf("flattened image should be opaque")
	}
	if got, want := flat.RGBAAt(0, 0), (color.RGBA{10, 20, 30, 255}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := flat.RGBAAt(1, 0), (color.RGBA{40, 50, 60, 255}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func decodeFileForTest(t *testing.T, filename string, decode func(*os.File) (image.Image, error)) image.Image {
	t.Helper()
	f, err := os.Open(filename)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", filename, err)
	}
	return img
}

func TestSaveDropsAlphaByDefault(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	src := pattern(5, 4)

	if err := Save(src, out, NewConfig()); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ColorModel != color.RGBAModel {
		t.Errorf("expected a 24 bit RGB png, got color model %v", cfg.ColorModel)
	}

	img := decodeFileForTest(t, out, func(f *os.File) (image.Image, error) { return png.Decode(f) })
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			want := src.NRGBAAt(x, y)
			if a != 0xffff || uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
				t.Fatalf("(%d,%d): got %v, want %v with full alpha", x, y, img.At(x, y), want)
			}
		}
	}
}

func TestSaveKeepAlpha(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	src := pattern(5, 4)

	c := NewConfig()
	c.KeepAlpha = true
	if err := Save(src, out, c); err != nil {
		t.Fatal(err)
	}

	img := decodeFileForTest(t, out, func(f *os.File) (image.Image, error) { return png.Decode(f) })
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected an *image.NRGBA back, got %T", img)
	}
	if !bytes.Equal(nrgba.Pix, src.Pix) {
		t.Errorf("pixels changed on the way through the file")
	}
}

func TestSaveOtherFormats(t *testing.T) {
	dir := t.TempDir()
	src := pattern(6, 3)

	for _, tc := range []struct {
		name   string
		decode func(*os.File) (image.Image, error)
	}{
		{"out.tif", func(f *os.File) (image.Image, error) { return tiff.Decode(f) }},
		{"out.bmp", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			filename := filepath.Join(dir, tc.name)
			if err := Save(src, filename, NewConfig()); err != nil {
				t.Fatal(err)
			}
			img := decodeFileForTest(t, filename, tc.decode)
			// tiff has no 3 sample RGB layout, so an opaque alpha sample is written
			if o, ok := img.(interface{ Opaque() bool }); !ok || !o.Opaque() {
				t.Errorf("%T should decode as fully opaque", img)
			}
			for y := 0; y < 3; y++ {
				for x := 0; x < 6; x++ {
					got := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
					want := src.NRGBAAt(x, y)
					want.A = 0xff
					if got != want {
						t.Fatalf("(%d,%d): got %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestSaveUnsupportedWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.webp")
	if err := Save(pattern(2, 2), out, NewConfig()); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("no file should have been created: %v", err)
	}
}

func TestSaveKeepAlphaOnlyWhereStored(t *testing.T) {
	dir := t.TempDir()
	src := solid(4, 4, color.NRGBA{R: 200, G: 100, B: 50, A: 64})

	c := NewConfig()
	c.KeepAlpha = true
	c.JPEGQuality = 100

	for _, tc := range []struct {
		name      string
		decode    func(*os.File) (image.Image, error)
		want      color.NRGBA
		tolerance int
	}{
		{"out.png", func(f *os.File) (image.Image, error) { return png.Decode(f) }, color.NRGBA{200, 100, 50, 64}, 0},
		{"out.tif", func(f *os.File) (image.Image, error) { return tiff.Decode(f) }, color.NRGBA{200, 100, 50, 64}, 0},
		{"out.bmp", func(f *os.File) (image.Image, error) { return bmp.Decode(f) }, color.NRGBA{200, 100, 50, 255}, 0},
		{"out.jpg", func(f *os.File) (image.Image, error) { return jpeg.Decode(f) }, color.NRGBA{200, 100, 50, 255}, 3},
	} {
		t.Run(tc.name, func(t *testing.T) {
			filename := filepath.Join(dir, tc.name)
			if err := Save(src, filename, c); err != nil {
				t.Fatal(err)
			}
			img := decodeFileForTest(t, filename, tc.decode)
			got := color.NRGBAModel.Convert(img.At(1, 1)).(color.NRGBA)

			near := func(a, b uint8) bool {
				d := int(a) - int(b)
				return d <= tc.tolerance && d >= -tc.tolerance
			}
			if !near(got.R, tc.want.R) || !near(got.G, tc.want.G) || !near(got.B, tc.want.B) || got.A != tc.want.A {
				t.Errorf("got %v, want %v (+/- %d)", got, tc.want, tc.tolerance)
			}
		})
	}
}
