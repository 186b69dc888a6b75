package store

import "sync"

// Collection names double as notifier topics. They are the de facto
// schema of the store: one topic per top-level collection.
const (
	CollectionProducts        = "products"
	CollectionUsers           = "users"
	CollectionReviews         = "reviews"
	CollectionPurchaseHistory = "purchaseHistory"
	CollectionPrivateMessages = "privateMessages"
	CollectionCustomButtons   = "customButtons"
)

// Notifier fans out collection-changed signals to live listeners.
// Repositories publish after every acknowledged write; listeners
// re-read the collection and deliver a full snapshot. Handlers run
// synchronously in the publisher's goroutine and must not block.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]func()
}

func NewNotifier() *Notifier {
	return &Notifier{
		subs: make(map[string]map[int]func()),
	}
}

// Subscribe registers fn for changes to the named collection and
// returns an unsubscribe func. Unsubscribing twice is harmless.
func (n *Notifier) Subscribe(collection string, fn func()) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.subs[collection] == nil {
		n.subs[collection] = make(map[int]func())
	}
	id := n.nextID
	n.nextID++
	n.subs[collection][id] = fn

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs[collection], id)
	}
}

// Publish signals that the named collection changed.
func (n *Notifier) Publish(collection string) {
	n.mu.Lock()
	handlers := make([]func(), 0, len(n.subs[collection]))
	for _, fn := range n.subs[collection] {
		handlers = append(handlers, fn)
	}
	n.mu.Unlock()

	for _, fn := range handlers {
		fn()
	}
}
