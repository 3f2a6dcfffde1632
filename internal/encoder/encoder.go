package encoder

import (
	"maps"
	"slices"
)

type Encoder interface {
	GetName() string
	Encode(data string) (string, error)
}

// Decoder is implemented by encoders whose transform has an inverse.
type Decoder interface {
	Decode(data string) (string, error)
}

var Encoders map[string]Encoder

var encoders = []Encoder{
	DefaultBase64Encoder,
	DefaultBase64FlatEncoder,
	DefaultPlainEncoder,
	DefaultURIComponentEncoder,
	DefaultURLQueryEncoder,
}

func init() {
	Encoders = make(map[string]Encoder)
	for _, encoder := range encoders {
		Encoders[encoder.GetName()] = encoder
	}
}

func Apply(encoderName, data string) (string, error) {
	en, ok := Encoders[encoderName]
	if !ok {
		return "", &UnknownEncoderError{name: encoderName}
	}

	ret, err := en.Encode(data)
	if err != nil {
		return "", err
	}

	return ret, nil
}

// Decode applies the inverse transform of the named encoder.
func Decode(encoderName, data string) (string, error) {
	en, ok := Encoders[encoderName]
	if !ok {
		return "", &UnknownEncoderError{name: encoderName}
	}

	dec, ok := en.(Decoder)
	if !ok {
		return "", &NotDecodableError{name: encoderName}
	}

	return dec.Decode(data)
}

// Names returns the names of all registered encoders in sorted order.
func Names() []string {
	names := slices.Collect(maps.Keys(Encoders))
	slices.Sort(names)

	return names
}
