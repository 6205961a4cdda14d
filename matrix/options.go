// SPDX-License-Identifier: MIT

package matrix

// DefaultValidateNaNInf is the numeric policy of a Dense built without options:
// NaN and ±Inf are rejected.
const DefaultValidateNaNInf = true

// Option configures a Dense at construction time.
type Option func(*Options)

// Options holds the resolved construction settings.
type Options struct {
	validateNaNInf bool
}

// WithValidateNaNInf turns the finite-only policy on (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets Set store NaN and ±Inf. Counters that accept any
// Matrix still reject a non-finite first column.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies opts over the defaults; later options win.
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}
