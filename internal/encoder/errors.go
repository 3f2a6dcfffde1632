package encoder

import "fmt"

var _ error = (*UnknownEncoderError)(nil)

type UnknownEncoderError struct {
	name string
}

func (e *UnknownEncoderError) Error() string {
	return fmt.Sprintf("unknown encoder: %s", e.name)
}

var _ error = (*NotDecodableError)(nil)

type NotDecodableError struct {
	name string
}

func (e *NotDecodableError) Error() string {
	return fmt.Sprintf("encoder has no inverse transform: %s", e.name)
}
