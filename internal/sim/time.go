package sim

import "math"

// Time is a simulation timestamp or duration expressed as a 64-bit
// nanosecond count. Every component that deals with simulated time uses
// this single representation, so values can be compared and added without
// unit conversions.
type Time uint64

const (
	// TimeInvalid marks a simulation time that has not been set or could
	// not be computed. It is the maximum representable value, so any
	// arithmetic that reaches it indicates a bug rather than a real time.
	TimeInvalid Time = math.MaxUint64

	// OneNanosecond is the base unit of simulation time.
	OneNanosecond Time = 1

	// OneMicrosecond is one microsecond of simulation time.
	OneMicrosecond Time = 1000

	// OneMillisecond is one millisecond of simulation time.
	OneMillisecond Time = 1000000

	// OneSecond is one second of simulation time.
	OneSecond Time = 1000000000

	// OneMinute is one minute of simulation time.
	OneMinute Time = 60000000000

	// OneHour is one hour of simulation time.
	OneHour Time = 3600000000000
)
