// Package config turns a simlaunch command-line invocation into a
// validated, immutable Config object.
//
// The option schema is assembled from three additive groups (main,
// network, plugin examples), each registered by its own function into one
// shared pflag.FlagSet. Parsing is single-pass and all-or-nothing: any
// unknown flag, malformed value, or out-of-range number fails the whole
// construction and no partial Config is ever returned.
//
// A Config is effectively immutable after construction and owned by the
// caller that constructed it. The owner must release it with Free exactly
// once; in debug builds (the default) every accessor asserts that the
// object is still live, and any use-after-free or double-free panics as a
// programmer error. Building with -tags simrelease compiles the liveness
// checks out.
package config
