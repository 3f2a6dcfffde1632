package encoder

import (
	"encoding/base64"
	"fmt"
)

type Base64Encoder struct {
	name string
	mode uint8
}

const (
	Base64EncoderNormalMode = 1
	Base64EncoderFlatMode   = 2
)

var DefaultBase64Encoder = Base64Encoder{name: "Base64", mode: Base64EncoderNormalMode}
var DefaultBase64FlatEncoder = Base64Encoder{name: "Base64Flat", mode: Base64EncoderFlatMode}

var _ Encoder = (*Base64Encoder)(nil)
var _ Decoder = (*Base64Encoder)(nil)

func (enc Base64Encoder) GetName() string {
	return enc.name
}

func (enc Base64Encoder) Encode(data string) (string, error) {
	switch enc.mode {
	case Base64EncoderNormalMode:
		return base64.StdEncoding.EncodeToString([]byte(data)), nil
	case Base64EncoderFlatMode:
		// flat mode drops the '=' padding
		return base64.RawStdEncoding.EncodeToString([]byte(data)), nil
	}
	return "", fmt.Errorf("undefined encoding method")
}

func (enc Base64Encoder) Decode(data string) (string, error) {
	var res []byte
	var err error

	switch enc.mode {
	case Base64EncoderNormalMode:
		res, err = base64.StdEncoding.DecodeString(data)
	case Base64EncoderFlatMode:
		res, err = base64.RawStdEncoding.DecodeString(data)
	default:
		return "", fmt.Errorf("undefined encoding method")
	}
	if err != nil {
		return "", err
	}

	return string(res), nil
}
