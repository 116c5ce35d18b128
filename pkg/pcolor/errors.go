package pcolor

import(
	"errors"
	"fmt"
)

var(
	ErrInvalidChannelSpec         = errors.New("invalid channel spec")
	ErrOutOfRangeChannelReference = errors.New("channel reference out of range")
	ErrInvalidChannelLetter       = errors.New("invalid channel letter")
)

// SpecError ties one of the sentinels above to the token that caused it.
type SpecError struct {
	Kind  error
	Token string
	Msg   string
}

func (e *SpecError)Error() string {
	if e == nil {
		return ""
	}
	str := fmt.Sprintf("%s %q", e.Kind.Error(), e.Token)
	if e.Msg != "" {
		str += ": " + e.Msg
	}
	return str
}

func (e *SpecError)Unwrap() error { return e.Kind }

func invalidSpec(token, format string, args ...any) error {
	return &SpecError{Kind: ErrInvalidChannelSpec, Token: token, Msg: fmt.Sprintf(format, args...)}
}
