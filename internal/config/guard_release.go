//go:build simrelease

package config

// assertLive is compiled out in release builds. The liveness guard is a
// development-time safety net; release binaries pay nothing for it.
func (c *Config) assertLive() {}
