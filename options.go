package mxe

type readConfig struct {
	limits        Limits
	validateMagic bool
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

// WithValidateMagic controls whether the two-byte serialization magic and
// version at the start of the stream are checked against their known
// constants. The producing application never checks them, so validation is
// off by default; when enabled, a mismatch fails with ErrUnrecognizedFormat.
func WithValidateMagic(v bool) ReadOption {
	return func(c *readConfig) { c.validateMagic = v }
}
