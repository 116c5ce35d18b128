package pcolor

import(
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// A Source says where one output channel gets its value from: either
// a fixed byte, or a channel sampled from one of the input images.
type Source struct {
	Token      string   // as typed by the user, for diagnostics

	IsConstant bool
	Value      uint8    // when IsConstant

	Index      int      // 0-based index into the inputs, when !IsConstant
	Channel    Channel  // which channel of that input to sample
}

func Constant(v uint8) Source {
	return Source{Token: strconv.Itoa(int(v)), IsConstant: true, Value: v}
}

func Reference(index int, ch Channel) Source {
	return Source{Token: fmt.Sprintf("%s%d", strings.ToLower(ch.String()), index+1), Index: index, Channel: ch}
}

func (s Source)String() string {
	if s.IsConstant {
		return fmt.Sprintf("%d (0x%02X)", s.Value, s.Value)
	}
	return fmt.Sprintf("%s of input #%d", s.Channel, s.Index+1)
}

// Eval returns the channel value, given the pixels sampled from the
// inputs at the current location. Only the input a Reference points at
// needs to be populated in `in`.
func (s Source)Eval(in []ARGB) (uint8, error) {
	if s.IsConstant {
		return s.Value, nil
	}
	if s.Index < 0 || s.Index >= len(in) {
		return 0, &SpecError{Kind: ErrOutOfRangeChannelReference, Token: s.Token,
			Msg: fmt.Sprintf("%d inputs", len(in))}
	}
	return in[s.Index].Get(s.Channel)
}

// Resolve parses a channel token. Tokens are either a constant ("0" to
// "255"), or a channel letter followed by a 1-based input number ("r1",
// "G2"). An input number of zero can never refer to an image, so it is
// rejected here as out of range rather than left to underflow.
func Resolve(token string) (Source, error) {
	if v, err := strconv.ParseUint(token, 10, 8); err == nil {
		s := Constant(uint8(v))
		s.Token = token
		return s, nil
	} else if errors.Is(err, strconv.ErrRange) {
		return Source{}, invalidSpec(token, "constant must be in [0,255]")
	}

	if len(token) < 2 {
		return Source{}, invalidSpec(token, "want a constant in [0,255], or one of a,r,g,b followed by an image number")
	}

	ch, err := ParseChannel(token[:1])
	if err != nil {
		return Source{}, invalidSpec(token, "channel must be one of a,r,g,b")
	}

	ordinal, err := strconv.ParseUint(token[1:], 10, 31)
	if errors.Is(err, strconv.ErrRange) {
		return Source{}, &SpecError{Kind: ErrOutOfRangeChannelReference, Token: token, Msg: "image number too large"}
	} else if err != nil {
		return Source{}, invalidSpec(token, "bad image number %q", token[1:])
	} else if ordinal == 0 {
		return Source{}, &SpecError{Kind: ErrOutOfRangeChannelReference, Token: token, Msg: "image numbers start at 1"}
	}

	return Source{Token: token, Index: int(ordinal) - 1, Channel: ch}, nil
}
