package coingecko

import (
	"fmt"
	"strings"
)

// Param is a single query parameter.
type Param struct {
	Key   string
	Value interface{}
}

// P builds a Param. Values are stringified with default formatting when the
// URL is assembled.
func P(key string, value interface{}) Param {
	return Param{Key: key, Value: value}
}

// Params is an ordered list of query parameters. Unlike url.Values, Encode
// preserves insertion order.
type Params []Param

// Encode renders the parameters as "k1=v1&k2=v2" in insertion order with no
// trailing separator. Values are not escaped; callers must supply URL-safe
// values.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}

	var b strings.Builder
	for i, param := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(param.Key)
		b.WriteByte('=')
		fmt.Fprint(&b, param.Value)
	}
	return b.String()
}

// commaJoin normalizes a list-valued argument into the API's
// comma-separated form. Whitespace inside elements is stripped and empty
// elements are dropped.
func commaJoin(values []string) string {
	joined := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ReplaceAll(v, " ", "")
		if v != "" {
			joined = append(joined, v)
		}
	}
	return strings.Join(joined, ",")
}
