package encoder

import (
	"net/url"
	"strings"
)

// URIComponentEncoder percent-encodes every byte outside the RFC 3986
// unreserved set (A-Z a-z 0-9 - _ . ~) as an uppercase %XX escape,
// UTF-8 byte-wise for non-ASCII input. The safe set is empty, so the
// output can be embedded in any URI component, including userinfo.
type URIComponentEncoder struct {
	name string
}

var DefaultURIComponentEncoder = URIComponentEncoder{name: "URIComponent"}

var _ Encoder = (*URIComponentEncoder)(nil)
var _ Decoder = (*URIComponentEncoder)(nil)

func (enc URIComponentEncoder) GetName() string {
	return enc.name
}

func (enc URIComponentEncoder) Encode(data string) (string, error) {
	// QueryEscape leaves exactly the unreserved set untouched but
	// renders space as '+', which userinfo does not understand.
	return strings.ReplaceAll(url.QueryEscape(data), "+", "%20"), nil
}

func (enc URIComponentEncoder) Decode(data string) (string, error) {
	return url.QueryUnescape(data)
}
