package service

import "sync"

// feed fans gallery listing snapshots out to WebSocket subscribers.
// Publishing never blocks: a subscriber that isn't draining misses snapshots
// rather than stalling an upload.
type feed struct {
	mu   sync.Mutex
	subs map[chan []string]struct{}
}

func newFeed() *feed {
	return &feed{subs: make(map[chan []string]struct{})}
}

func (f *feed) Subscribe() chan []string {
	ch := make(chan []string, 1)
	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()
	return ch
}

func (f *feed) Unsubscribe(ch chan []string) {
	f.mu.Lock()
	if _, ok := f.subs[ch]; ok {
		delete(f.subs, ch)
		close(ch)
	}
	f.mu.Unlock()
}

func (f *feed) Publish(listing []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for ch := range f.subs {
		select {
		case ch <- listing:
		default:
		}
	}
}
