//go:build !num_overflowchecks

package num

// overflowChecks selects what the default operators do on overflow. Without
// the num_overflowchecks build tag they wrap like Go's native integers.
const overflowChecks = false
