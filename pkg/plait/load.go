package plait

import(
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rwcarlsen/goexif/exif"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

type decodeFunc func(io.Reader) (image.Image, error)

var(
	decoders = map[string]decodeFunc{
		"png":  png.Decode,
		"jpeg": jpeg.Decode,
		"gif":  gif.Decode,
		"tiff": tiff.Decode,
		"bmp":  bmp.Decode,
		"webp": webp.Decode,
	}

	extToFormat = map[string]string{
		".png":  "png",
		".jpg":  "jpeg",
		".jpeg": "jpeg",
		".gif":  "gif",
		".tif":  "tiff",
		".tiff": "tiff",
		".bmp":  "bmp",
		".webp": "webp",
	}
)

// FormatFromFilename returns the image format implied by the file's extension, or "".
func FormatFromFilename(filename string) string {
	return extToFormat[strings.ToLower(filepath.Ext(filename))]
}

// LoadFilesAndDirs loads each arg in turn; directories are walked in
// name order. The order images are loaded in is the order the channel
// tokens number them in ("r1" is the first image loaded).
func (p *Plaiter)LoadFilesAndDirs(args ...string) error {
	for _, arg := range args {
		if err := p.loadFileOrDir(arg, false); err != nil {
			return err
		}
	}
	return nil
}

func (p *Plaiter)loadFileOrDir(arg string, inDir bool) error {
	item, err := os.Stat(arg)

	switch {

	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("load '%s': %w (%w)", arg, ErrMissingInputFile, err)

	case err != nil:
		return fmt.Errorf("load '%s': %w", arg, err)

	case item.IsDir():
		// Is a dir, recurse into contents
		contents, err := os.ReadDir(arg)
		if err != nil {
			return fmt.Errorf("readdir '%s': %w", arg, err)
		}
		for _, content := range contents {
			if err := p.loadFileOrDir(filepath.Join(arg, content.Name()), true); err != nil {
				return err
			}
		}

	default: // is a file, load it
		if err := p.loadFile(arg, inDir); err != nil {
			return fmt.Errorf("loadfile '%s': %w", arg, err)
		}
	}

	return nil
}

func (p *Plaiter)loadFile(filename string, inDir bool) error {
	ext := strings.ToLower(filepath.Ext(filename))

	switch {

	case ext == ".yaml" || ext == ".yml":
		cfg, err := loadConfig(filename)
		if err != nil {
			return fmt.Errorf("loading as config YAML failed: %w", err)
		}
		p.Config = cfg
		log.Printf("Loaded base configuration from %s\n", filename)

	case extToFormat[ext] != "":
		layer, err := loadLayer(filename)
		if err != nil {
			return err
		}
		p.AddLayer(layer)

	case inDir:
		if p.Config.Verbosity > 0 {
			log.Printf("Skipping %s, not an image\n", filename)
		}

	default:
		return fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, ext)
	}

	return nil
}

func loadConfig(filename string) (Config, error) {
	contents, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read '%s': %w", filename, err)
	}

	return newConfigFromYaml(contents)
}

func loadLayer(filename string) (Layer, error) {
	l := Layer{LoadFilename: filename, Format: FormatFromFilename(filename)}

	img, err := decodeFile(filename, decoders[l.Format])
	if err != nil {
		return l, err
	}
	l.Image = img

	if l.Format == "jpeg" || l.Format == "tiff" {
		l.loadExif()
	}

	return l, nil
}

func decodeFile(filename string, decode decodeFunc) (image.Image, error) {
	reader, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open+r img '%s': %w", filename, err)
	}
	defer reader.Close()

	img, err := decode(reader)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %v", ErrDecode, filename, err)
	}
	return img, nil
}

// loadExif picks up a few details for the report. Plenty of images
// have no EXIF data, so failures are ignored.
func (l *Layer)loadExif() {
	reader, err := os.Open(l.LoadFilename)
	if err != nil {
		return
	}
	defer reader.Close()

	ex, err := exif.Decode(reader)
	if err != nil {
		return
	}

	if tag, err := ex.Get(exif.Model); err == nil {
		if val, err := tag.StringVal(); err == nil {
			l.CameraModel = strings.TrimSpace(val)
		}
	}
	if t, err := ex.DateTime(); err == nil {
		l.Taken = t
	}
}
