package services

import "sync"

// pendingSet tracks which admins are expected to send a new access code
// as their next message. Safe for concurrent admin sessions; contents
// are transient and lost on restart.
type pendingSet struct {
	mu  sync.Mutex
	ids map[int64]struct{}
}

func newPendingSet() *pendingSet {
	return &pendingSet{ids: make(map[int64]struct{})}
}

func (p *pendingSet) Add(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ids[id] = struct{}{}
}

func (p *pendingSet) Remove(id int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.ids, id)
}

func (p *pendingSet) Contains(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.ids[id]
	return ok
}
