package pcolor

import(
	"fmt"
	"image/color"
	"strings"
)

// A Channel names one of the four byte channels of a pixel.
type Channel byte

const(
	A Channel = 'A'
	R Channel = 'R'
	G Channel = 'G'
	B Channel = 'B'
)

// Channels lists the output channels in the order they are reported and evaluated.
var Channels = []Channel{A, R, G, B}

func (ch Channel)Valid() bool {
	switch ch {
	case A, R, G, B: return true
	}
	return false
}

func (ch Channel)String() string {
	if ch.Valid() {
		return string(rune(ch))
	}
	return fmt.Sprintf("Channel(%q)", rune(ch))
}

// Name is the long form used in reports, e.g. "Green"
func (ch Channel)Name() string {
	switch ch {
	case A: return "Alpha"
	case R: return "Red"
	case G: return "Green"
	case B: return "Blue"
	}
	return ch.String()
}

// ParseChannel maps a single letter (any case) onto a Channel.
func ParseChannel(s string) (Channel, error) {
	if len(s) != 1 {
		return 0, &SpecError{Kind: ErrInvalidChannelLetter, Token: s}
	}
	ch := Channel(strings.ToUpper(s)[0])
	if !ch.Valid() {
		return 0, &SpecError{Kind: ErrInvalidChannelLetter, Token: s}
	}
	return ch, nil
}

// ARGB is a single pixel, as four straight (non-premultiplied) bytes.
type ARGB struct {
	A, R, G, B uint8
}

// FromColor converts any color into straight ARGB bytes. Premultiplied
// colors (e.g. from an *image.RGBA) are un-premultiplied first, so a
// channel always reads back the value the image file stored.
func FromColor(c color.Color) ARGB {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ARGB{A: n.A, R: n.R, G: n.G, B: n.B}
}

// Get extracts one channel's byte.
func (p ARGB)Get(ch Channel) (uint8, error) {
	switch ch {
	case A: return p.A, nil
	case R: return p.R, nil
	case G: return p.G, nil
	case B: return p.B, nil
	}
	return 0, &SpecError{Kind: ErrInvalidChannelLetter, Token: ch.String()}
}

// Set stores one channel's byte; invalid channels are ignored.
func (p *ARGB)Set(ch Channel, v uint8) {
	switch ch {
	case A: p.A = v
	case R: p.R = v
	case G: p.G = v
	case B: p.B = v
	}
}

func (p ARGB)NRGBA() color.NRGBA { return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A} }

func (p ARGB)String() string {
	return fmt.Sprintf("(%3d,%3d,%3d,%3d)", p.A, p.R, p.G, p.B)
}
