//go:build draw2ddebug

package draw2d

// debugChecks enables explicit bounds assertions on every pixel access.
const debugChecks = true
