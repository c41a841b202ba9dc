// Package sim defines process-wide simulation constants shared by every
// consumer of the launcher configuration.
//
// The package contains only plain named constants: the nanosecond-based
// simulation time units (sim.Time) and the default sizes and thresholds
// used by the virtual network stack. There is no state and no
// initialization order to worry about; importing the package is enough.
package sim
