package plait

import(
	"fmt"
	"image"
	"log"
	"path/filepath"
)

// Plaiter holds the input layers, and plaits their channels together
// into a single output image.
type Plaiter struct {
	Layers   []Layer   // In load order; "r2" means the red channel of Layers[1]
	Config

	Format   OutputFormat
	Output   *image.NRGBA
}

func NewPlaiter() Plaiter {
	return Plaiter{
		Layers: []Layer{},
		Config: NewConfig(),
	}
}

func (p Plaiter)String() string {
	str := "Plaiter [\n"
	for i, l := range p.Layers {
		str += fmt.Sprintf("  #%d %s\n", i+1, l)
	}
	return str + "]\n"
}

func (p *Plaiter)AddLayer(l Layer) {
	p.Layers = append(p.Layers, l)
}

func (p *Plaiter)InputNames() []string {
	names := []string{}
	for _, l := range p.Layers {
		names = append(names, l.LoadFilename)
	}
	return names
}

func (p *Plaiter)Images() []image.Image {
	imgs := []image.Image{}
	for _, l := range p.Layers {
		imgs = append(imgs, l.Image)
	}
	return imgs
}

// Prepare does all the checking that can be done before any pixels
// are touched: the channel tokens, the input sizes, and whether we
// know how to write the output.
func (p *Plaiter)Prepare() error {
	if len(p.Layers) == 0 {
		return ErrNoInputs
	}

	f, err := p.Config.GetOutputFormat(p.InputNames())
	if err != nil {
		return err
	}

	if err := CheckImageSizes(p.InputNames(), p.Images()); err != nil {
		for _, l := range p.Layers {
			log.Printf("  %s : %dpx x %dpx\n", l.Filename(), l.Bounds().Dx(), l.Bounds().Dy())
		}
		return err
	}

	if err := f.Validate(len(p.Layers)); err != nil {
		return err
	}

	if _, err := GetEncoder(f.OutputFilename); err != nil {
		return err
	}

	p.Format = f
	return nil
}

func (p *Plaiter)ShowOptions() {
	for _, line := range p.Format.Describe(p.InputNames()) {
		log.Printf("%s\n", line)
	}
	if p.Config.Verbosity > 0 {
		log.Printf("%s", p)
		log.Printf("Final configuration:-\n\n%s\n", p.Config.AsYaml())
	}
}

// Plait builds the output image.
func (p *Plaiter)Plait() error {
	c := Compositor{Workers: p.Config.Workers}
	out, err := c.Composite(p.Images(), p.Format)
	if err != nil {
		return err
	}
	p.Output = out

	for _, pt := range p.Config.DebugPixels {
		log.Printf("%s", p.DumpPixel(pt.X, pt.Y))
	}
	return nil
}

// Release drops the decoded input images; only the output is needed after plaiting.
func (p *Plaiter)Release() {
	for i := range p.Layers {
		p.Layers[i].Image = nil
	}
}

// Write saves the output image, plus any of the optional extra outputs.
func (p *Plaiter)Write() error {
	if p.Output == nil {
		return fmt.Errorf("Write: nothing has been plaited")
	}

	if err := Save(p.Output, p.Format.OutputFilename, p.Config); err != nil {
		return err
	}
	log.Printf("Output: %s\n", p.Format.OutputFilename)

	if p.Config.HDRFilename != "" {
		if err := WriteToHDR(p.Output, p.Config.HDRFilename); err != nil {
			return err
		}
		log.Printf("HDR output: %s\n", p.Config.HDRFilename)
	}

	if p.Config.PreviewFilename != "" {
		if err := WritePreview(p.Output, p.Format, p.InputNames(), p.Config.PreviewFilename); err != nil {
			return err
		}
		log.Printf("Preview: %s\n", p.Config.PreviewFilename)
	}

	if p.Config.Verbosity > 0 {
		LogChannelStats(p.Output)
	}

	return nil
}

// Run does everything after the inputs have been loaded (and the config tweaked).
func (p *Plaiter)Run() error {
	if err := p.Prepare(); err != nil {
		return err
	}

	log.Printf("Plaiting %d images ...\n", len(p.Layers))
	p.ShowOptions()

	if err := p.Plait(); err != nil {
		return err
	}
	p.Release()

	return p.Write()
}

func (p *Plaiter)layerName(i int) string {
	if i >= 0 && i < len(p.Layers) {
		return filepath.Base(p.Layers[i].LoadFilename)
	}
	return fmt.Sprintf("input #%d", i+1)
}
