package prefetch

type options struct {
	log logging
}

type Option func(*options)

// OptionLogger reports eager steps, rewinds and close failures to l.
func OptionLogger(l logging) Option {
	return func(o *options) {
		o.log = l
	}
}

func defaults() options {
	return options{log: LogDiscard()}
}
