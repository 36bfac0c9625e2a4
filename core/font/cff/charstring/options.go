package charstring

// DefaultMaxStack is the Type 2 operand stack limit.
const DefaultMaxStack = 48

// config holds the settings for Generalize and Specialize.
type config struct {
	ignoreErrors     bool
	generalizeFirst  bool
	preserveTopology bool
	maxStack         int
}

func defaultConfig() config {
	return config{
		generalizeFirst: true,
		maxStack:        DefaultMaxStack,
	}
}

// Option configures Generalize and Specialize.
type Option func(*config)

// IgnoreErrors makes rewrites keep malformed commands as data instead of
// failing. The arguments of a malformed command are emitted as one data
// command, followed by a data command holding the operator name.
// Default is false.
func IgnoreErrors(b bool) Option {
	return func(c *config) {
		c.ignoreErrors = b
	}
}

// GeneralizeFirst controls whether Specialize generalizes its input first.
// Callers sure to provide only rmoveto/rlineto/rrcurveto path operators with a
// single segment each may switch this off. Default is true.
func GeneralizeFirst(b bool) Option {
	return func(c *config) {
		c.generalizeFirst = b
	}
}

// PreserveTopology keeps every segment, even if it is of zero length or could
// be merged with its neighbour. Clients relying on point numbers need this.
// Default is false.
func PreserveTopology(b bool) Option {
	return func(c *config) {
		c.preserveTopology = b
	}
}

// MaxStack sets the operand stack limit for combined operator calls
// (default: DefaultMaxStack). n must be positive.
func MaxStack(n int) Option {
	return func(c *config) {
		c.maxStack = n
	}
}

func makeConfig(opts []Option) (config, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if c.maxStack <= 0 {
		return c, errOption("max stack must be positive, is %d", c.maxStack)
	}
	return c, nil
}
