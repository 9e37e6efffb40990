// Package query builds URL query strings that keep parameter order.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

type param struct {
	key    string
	values []string
}

// Params is an ordered set of query parameters.
// Keys are encoded in insertion order; repeated values keep their slice order.
type Params struct {
	params []param
}

// Add appends values under key. A key with no values is dropped.
func (p *Params) Add(key string, values ...string) {
	if len(values) == 0 {
		return
	}
	for i := range p.params {
		if p.params[i].key == key {
			p.params[i].values = append(p.params[i].values, values...)
			return
		}
	}
	p.params = append(p.params, param{key: key, values: append([]string(nil), values...)})
}

// AddString adds v under key when it is not empty.
func (p *Params) AddString(key, v string) {
	if v == "" {
		return
	}
	p.Add(key, v)
}

// AddInt adds n under key when it is positive.
func (p *Params) AddInt(key string, n int) {
	if n <= 0 {
		return
	}
	p.Add(key, strconv.Itoa(n))
}

// Len returns the number of distinct keys.
func (p *Params) Len() int {
	return len(p.params)
}

// Encode renders the parameters as "k=v&k=v2&k2=v3".
func (p *Params) Encode() string {
	if p == nil || len(p.params) == 0 {
		return ""
	}
	var b strings.Builder
	for _, kv := range p.params {
		k := url.QueryEscape(kv.key)
		for _, v := range kv.values {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}

// Encode is a convenience for a single key with repeated values.
func Encode(key string, values ...string) string {
	var p Params
	p.Add(key, values...)
	return p.Encode()
}
