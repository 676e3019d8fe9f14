//go:build ringdebug

package ring

// debug enables the range and shape assertions of the ring operations.
const debug = true
