//go:build !draw2ddebug

package draw2d

// debugChecks is off by default; slice bounds checks still catch writes
// past the end of the buffer.
const debugChecks = false
