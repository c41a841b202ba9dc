//go:build !simrelease

package config

// assertLive panics unless c was constructed by New and has not been
// freed. A failure here is a bug in the calling code, never bad user
// input, so it is routed through panic instead of an error return.
//
// This file is compiled by default; building with -tags simrelease swaps
// in the no-op version in guard_release.go.
func (c *Config) assertLive() {
	if c == nil {
		panic("config: invariant violation: nil Config")
	}
	switch c.state {
	case stateLive:
		// ok
	case stateDestroyed:
		panic("config: invariant violation: use of freed Config")
	default:
		panic("config: invariant violation: use of unconstructed Config")
	}
}
