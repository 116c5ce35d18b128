package plait

import(
	"fmt"
	"image"
	"log"

	"gopkg.in/yaml.v2"
)

/* Example config file (pass it on the command line, alongside the images) ...

alpha: "255"
red: r1
green: g2
blue: b1
outputfilename: out.png
workers: 4
keepalpha: false
hdrfilename: out.hdr
debugpixels:
  - {x: 10, y: 20}

*/

type Config struct {
	Verbosity       int

	// The four channel tokens; empty means the default (a1, r1, g1, b1)
	Alpha           string
	Red             string
	Green           string
	Blue            string

	OutputFilename  string   // empty means "<first input>-plaited.<ext>"
	KeepAlpha       bool     // write 32 bit output; by default alpha is computed, but not written
	JPEGQuality     int      // only used if the output is a JPEG
	Workers         int      // how many goroutines composite the output

	HDRFilename     string   // if set, also write the composite as a Radiance .hdr file
	PreviewFilename string   // if set, write a PNG with one panel per output channel

	DebugPixels     []image.Point // output locations to log in detail
}

func NewConfig() Config {
	return Config{
		JPEGQuality: 95,
		DebugPixels: []image.Point{},
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()
	err := yaml.Unmarshal(b, &c)
	return c, err
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Printf("Can't marshal config yaml: %v\n", err)
		return ""
	}
	return string(b)
}

// GetOutputFormat resolves the channel tokens, and works out the output filename.
func (c Config)GetOutputFormat(inputs []string) (OutputFormat, error) {
	f, err := NewOutputFormat(c.Alpha, c.Red, c.Green, c.Blue)
	if err != nil {
		return f, err
	}

	if len(inputs) == 0 {
		return f, ErrNoInputs
	}
	if f.OutputFilename, err = OutputFilename(inputs[0], c.OutputFilename); err != nil {
		return f, fmt.Errorf("output filename: %w", err)
	}

	return f, nil
}
