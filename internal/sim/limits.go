package sim

// Defaults and thresholds for the virtual network stack. These mirror the
// kernel's per-socket buffer sizing (see "man tcp") and are only consulted
// when TCP autotuning is not in effect.
const (
	// SendBufferSize is the default per-socket send buffer size in bytes
	// when autotuning is disabled.
	SendBufferSize = 131072

	// RecvBufferSize is the default per-socket receive buffer size in
	// bytes when autotuning is disabled.
	RecvBufferSize = 174760

	// ForceSendBufferSize disables TCP autotuning and pins every socket's
	// send buffer to SendBufferSize when true.
	ForceSendBufferSize = false

	// DelayedACKs enables delayed acknowledgments on virtual TCP sockets.
	DelayedACKs = false

	// MinSocketDescriptor is the lowest descriptor number handed out for
	// virtual sockets. Descriptors below this cutoff belong to real files
	// on the host, so it must stay above the process's open-file limit to
	// avoid collisions in large simulations.
	MinSocketDescriptor = 30000
)
