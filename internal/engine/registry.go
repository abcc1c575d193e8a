package engine

// Registry is the Central Book Registry (spec §2 component 3, §4.6):
// mapping from symbol to Order Book, created lazily on first reference and
// living for the duration of the run. It is the only long-lived state
// (spec §9's design note) and is owned by the Engine, never shared
// ambiently.
type Registry struct {
	books map[string]*OrderBook
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{books: make(map[string]*OrderBook)}
}

// BookFor returns symbol's book, creating it on first reference.
func (r *Registry) BookFor(symbol string) *OrderBook {
	if book, ok := r.books[symbol]; ok {
		return book
	}
	book := NewOrderBook(symbol)
	r.books[symbol] = book
	return book
}
