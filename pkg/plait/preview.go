package plait

import(
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"github.com/abworrall/plait/pkg/pcolor"
)

var(
	PreviewPanelWidth = 256

	// Each panel shows its channel's values as shades of this color
	panelTints = map[pcolor.Channel]colorful.Color{
		pcolor.A: colorful.Color{R: 1, G: 1, B: 1},
		pcolor.R: colorful.Color{R: 1, G: 0, B: 0},
		pcolor.G: colorful.Color{R: 0, G: 1, B: 0},
		pcolor.B: colorful.Color{R: 0, G: 0, B: 1},
	}
)

// ChannelPanel renders a single channel of the image, tinted with the channel's color.
func ChannelPanel(img *image.NRGBA, ch pcolor.Channel) *image.NRGBA {
	b := img.Bounds()
	panel := image.NewNRGBA(b)
	black := colorful.Color{}
	tint := panelTints[ch]

	// There are only 256 possible shades
	shades := [256]color.NRGBA{}
	for v := 0; v < 256; v++ {
		r, g, bl := black.BlendRgb(tint, float64(v)/255.0).RGB255()
		shades[v] = color.NRGBA{R: r, G: g, B: bl, A: 0xff}
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v, _ := pcolor.FromColor(img.NRGBAAt(x, y)).Get(ch)
			panel.SetNRGBA(x, y, shades[v])
		}
	}
	return panel
}

// WritePreview writes a contact sheet with one panel per output
// channel, each labelled with where that channel came from.
func WritePreview(img *image.NRGBA, f OutputFormat, inputNames []string, filename string) error {
	const margin, labelHeight = 10, 20

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return fmt.Errorf("WritePreview: empty image %s", b)
	}

	panelW := PreviewPanelWidth
	if b.Dx() < panelW { panelW = b.Dx() }
	panelH := b.Dy() * panelW / b.Dx()
	if panelH < 1 { panelH = 1 }

	sheetW := margin + len(pcolor.Channels)*(panelW+margin)
	sheetH := margin + labelHeight + panelH + margin

	dc := gg.NewContext(sheetW, sheetH)
	dc.SetRGB(0.15, 0.15, 0.15)
	dc.Clear()

	labels := f.Describe(inputNames)
	for i, ch := range pcolor.Channels {
		x0 := margin + i*(panelW+margin)
		y0 := margin + labelHeight

		thumb := image.NewNRGBA(image.Rect(0, 0, panelW, panelH))
		draw.ApproxBiLinear.Scale(thumb, thumb.Bounds(), ChannelPanel(img, ch), b, draw.Src, nil)

		dc.DrawImage(thumb, x0, y0)
		dc.SetRGB(1, 1, 1)
		dc.DrawString(labels[i], float64(x0), float64(margin+labelHeight-6))
	}

	return WritePNG(dc.Image(), filename)
}
