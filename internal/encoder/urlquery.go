package encoder

import (
	"net/url"
)

// URLQueryEncoder escapes the input for use in a URL query string.
// Space becomes '+'; use URIComponentEncoder for userinfo or path parts.
type URLQueryEncoder struct {
	name string
}

var DefaultURLQueryEncoder = URLQueryEncoder{name: "URLQuery"}

var _ Encoder = (*URLQueryEncoder)(nil)
var _ Decoder = (*URLQueryEncoder)(nil)

func (enc URLQueryEncoder) GetName() string {
	return enc.name
}

func (enc URLQueryEncoder) Encode(data string) (string, error) {
	return url.QueryEscape(data), nil
}

func (enc URLQueryEncoder) Decode(data string) (string, error) {
	return url.QueryUnescape(data)
}
