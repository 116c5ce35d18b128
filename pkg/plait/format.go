package plait

import(
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/abworrall/plait/pkg/pcolor"
)

const(
	DefaultAlpha = "a1"
	DefaultRed   = "r1"
	DefaultGreen = "g1"
	DefaultBlue  = "b1"
)

// An OutputFormat says how to build each channel of the output image.
type OutputFormat struct {
	A, R, G, B     pcolor.Source

	OutputFilename string
}

// DefaultOutputFormat copies every channel from the first input.
func DefaultOutputFormat() OutputFormat {
	return OutputFormat{
		A: pcolor.Reference(0, pcolor.A),
		R: pcolor.Reference(0, pcolor.R),
		G: pcolor.Reference(0, pcolor.G),
		B: pcolor.Reference(0, pcolor.B),
	}
}

// NewOutputFormat resolves the four channel tokens. An empty token
// means the default for that channel. Every bad token is reported, not
// just the first.
func NewOutputFormat(alpha, red, green, blue string) (OutputFormat, error) {
	f := OutputFormat{}
	errs := []error{}
	tokens := map[pcolor.Channel]string{pcolor.A: alpha, pcolor.R: red, pcolor.G: green, pcolor.B: blue}

	for _, ch := range pcolor.Channels {
		token := tokens[ch]
		if token == "" {
			token = DefaultToken(ch)
		}
		src, err := pcolor.Resolve(token)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", ch.Name(), err))
			continue
		}
		f.Set(ch, src)
	}

	return f, errors.Join(errs...)
}

func DefaultToken(ch pcolor.Channel) string {
	switch ch {
	case pcolor.A: return DefaultAlpha
	case pcolor.R: return DefaultRed
	case pcolor.G: return DefaultGreen
	case pcolor.B: return DefaultBlue
	}
	return ""
}

func (f OutputFormat)Get(ch pcolor.Channel) pcolor.Source {
	switch ch {
	case pcolor.A: return f.A
	case pcolor.R: return f.R
	case pcolor.G: return f.G
	default:       return f.B
	}
}

func (f *OutputFormat)Set(ch pcolor.Channel, src pcolor.Source) {
	switch ch {
	case pcolor.A: f.A = src
	case pcolor.R: f.R = src
	case pcolor.G: f.G = src
	case pcolor.B: f.B = src
	}
}

// Sources returns the four sources in A,R,G,B order
func (f OutputFormat)Sources() [4]pcolor.Source {
	return [4]pcolor.Source{f.A, f.R, f.G, f.B}
}

// Validate checks that every reference points at one of the `nInputs`
// inputs, and at a real channel.
func (f OutputFormat)Validate(nInputs int) error {
	if nInputs == 0 {
		return ErrNoInputs
	}
	for _, ch := range pcolor.Channels {
		src := f.Get(ch)
		if src.IsConstant {
			continue
		}
		if src.Index < 0 || src.Index >= nInputs {
			return fmt.Errorf("%s: %w", ch.Name(), &pcolor.SpecError{
				Kind:  pcolor.ErrOutOfRangeChannelReference,
				Token: src.Token,
				Msg:   fmt.Sprintf("image #%d requested, only %d supplied", src.Index+1, nInputs),
			})
		}
		if !src.Channel.Valid() {
			return fmt.Errorf("%s: %w", ch.Name(), &pcolor.SpecError{Kind: pcolor.ErrInvalidChannelLetter, Token: src.Token})
		}
	}
	return nil
}

// usedInputs lists (in ascending order) the inputs that at least one channel samples.
func (f OutputFormat)usedInputs() []int {
	seen := map[int]bool{}
	ret := []int{}
	for _, src := range f.Sources() {
		if !src.IsConstant && !seen[src.Index] {
			seen[src.Index] = true
			ret = append(ret, src.Index)
		}
	}
	sort.Ints(ret)
	return ret
}

// Describe is the options report, one line per channel, e.g.
//   Alpha: 255 (0xFF)
//   Red  : r1 <- first.png
func (f OutputFormat)Describe(inputNames []string) []string {
	lines := []string{}
	for _, ch := range pcolor.Channels {
		src := f.Get(ch)
		if src.IsConstant {
			lines = append(lines, fmt.Sprintf("%-5s: %d (0x%02X)", ch.Name(), src.Value, src.Value))
			continue
		}
		name := fmt.Sprintf("input #%d", src.Index+1)
		if src.Index >= 0 && src.Index < len(inputNames) {
			name = filepath.Base(inputNames[src.Index])
		}
		lines = append(lines, fmt.Sprintf("%-5s: %s <- %s", ch.Name(), src.Token, name))
	}
	return lines
}
