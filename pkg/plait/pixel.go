package plait

import(
	"fmt"
	"image"

	"github.com/abworrall/plait/pkg/pcolor"
)

// DumpPixel describes how the output pixel at (x,y) was put together. It
// needs the input layers, so call it before Release.
func (p *Plaiter)DumpPixel(x, y int) string {
	str := fmt.Sprintf("----- Pixel @(%d,%d)-----\n", x, y)

	if p.Output == nil || !(image.Point{x, y}.In(p.Output.Bounds())) {
		return str + "(outside the output)\n"
	}

	str += "Inputs (A,R,G,B):-\n"
	for i, l := range p.Layers {
		if l.Image == nil {
			continue
		}
		origin := l.Bounds().Min
		str += fmt.Sprintf("-- #%d %-20.20s: %s\n", i+1, p.layerName(i), pcolor.FromColor(l.At(origin.X+x, origin.Y+y)))
	}

	out := pcolor.FromColor(p.Output.NRGBAAt(x, y))
	for _, ch := range pcolor.Channels {
		v, _ := out.Get(ch)
		str += fmt.Sprintf("%-5s <- %-20s: %3d\n", ch.Name(), p.Format.Get(ch), v)
	}
	str += fmt.Sprintf("Output             : %s\n", out)

	return str
}
