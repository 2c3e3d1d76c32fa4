package monotonic

// Option configures a Filter or one of the sequence and slice front-ends.
type Option[T any] interface {
	configure(*config[T])
}

type optionFunc[T any] func(*config[T])

func (fn optionFunc[T]) configure(c *config[T]) { fn(c) }

// OnDiscard registers an observer which is called with every dropped element,
// and with the kept element it was rejected against.
//
// With Filter, the observer is called from within Next, before Next returns the kept element.
// With the iter.Seq front-ends, it is called after the kept element was yielded.
// It must not pull or close the filter.
func OnDiscard[T any](fn func(kept, dropped T)) Option[T] {
	return optionFunc[T](func(c *config[T]) {
		c.OnDiscard = append(c.OnDiscard, fn)
	})
}

type config[T any] struct {
	OnDiscard []func(kept, dropped T)
}

func toConfig[T any](opts []Option[T]) config[T] {
	var c config[T]
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.configure(&c)
	}
	return c
}

func (c config[T]) discard(kept, dropped T) {
	for _, fn := range c.OnDiscard {
		if fn != nil {
			fn(kept, dropped)
		}
	}
}
