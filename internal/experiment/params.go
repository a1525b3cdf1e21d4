package experiment

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Params holds demo parameters as text, the way they arrive from flags and
// YAML files. Typed getters fall back to a default when a key is missing.
type Params map[string]string

// ParseParams parses "key=value" pairs.
func ParseParams(pairs []string) (Params, error) {
	p := make(Params, len(pairs))
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadParam, kv)
		}
		p[k] = strings.TrimSpace(v)
	}
	return p, nil
}

// Merge returns a copy of p overlaid with every key of o.
func (p Params) Merge(o Params) Params {
	out := make(Params, len(p)+len(o))
	maps.Copy(out, p)
	maps.Copy(out, o)
	return out
}

// Keys returns the parameter names in order.
func (p Params) Keys() []string {
	return slices.Sorted(maps.Keys(p))
}

func (p Params) Float(key string, def float64) (float64, error) {
	s, ok := p[key]
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ParamError{Key: key, Value: s, Err: err}
	}
	return v, nil
}

func (p Params) Int(key string, def int) (int, error) {
	s, ok := p[key]
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParamError{Key: key, Value: s, Err: err}
	}
	return v, nil
}

func (p Params) Bool(key string, def bool) (bool, error) {
	s, ok := p[key]
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, &ParamError{Key: key, Value: s, Err: err}
	}
	return v, nil
}

func (p Params) Text(key, def string) string {
	if s, ok := p[key]; ok {
		return s
	}
	return def
}

// reader collects the first conversion error so demos can read a batch of
// parameters and check once.
type reader struct {
	p   Params
	err error
}

func (r *reader) float(key string, def float64) float64 {
	v, err := r.p.Float(key, def)
	r.keep(err)
	return v
}

func (r *reader) int(key string, def int) int {
	v, err := r.p.Int(key, def)
	r.keep(err)
	return v
}

func (r *reader) bool(key string, def bool) bool {
	v, err := r.p.Bool(key, def)
	r.keep(err)
	return v
}

func (r *reader) keep(err error) {
	if r.err == nil {
		r.err = err
	}
}
