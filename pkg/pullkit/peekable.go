package pullkit

// Peekable wraps an Iterator with the ability to look at the next value without consuming it.
type Peekable[T any] struct {
	src Iterator[T]

	value T

	peeked  bool
	hasPeek bool
	peek    T
}

// NewPeekable creates a peekable wrapper for the given iterator.
// The Peekable takes ownership of the source, closing the Peekable closes the source.
func NewPeekable[T any](src Iterator[T]) *Peekable[T] {
	return &Peekable[T]{src: src}
}

// Peek returns the upcoming value without advancing the iterator.
// The second return value is false when the source has no more values.
func (p *Peekable[T]) Peek() (T, bool) {
	if !p.peeked {
		p.peeked = true
		p.hasPeek = p.src.Next()
		if p.hasPeek {
			p.peek = p.src.Value()
		}
	}
	return p.peek, p.hasPeek
}

func (p *Peekable[T]) Next() bool {
	if p.peeked {
		p.peeked = false
		if !p.hasPeek {
			// the source is exhausted, keep the peeked state sticky
			p.peeked = true
			return false
		}
		p.value = p.peek
		var zero T
		p.peek = zero
		return true
	}
	if !p.src.Next() {
		p.peeked, p.hasPeek = true, false
		return false
	}
	p.value = p.src.Value()
	return true
}

func (p *Peekable[T]) Value() T { return p.value }

func (p *Peekable[T]) Err() error { return p.src.Err() }

func (p *Peekable[T]) Close() error {
	p.peeked, p.hasPeek = true, false
	return p.src.Close()
}
