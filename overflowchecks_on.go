//go:build num_overflowchecks

package num

// overflowChecks is enabled by the num_overflowchecks build tag: the default
// operators panic on overflow, and the Unchecked views verify their
// preconditions.
const overflowChecks = true
