package uistate

import "sync"

// Publisher owns the current State and fans out a fresh copy on every
// transition. Subscribers never mutate the publisher; a slow subscriber
// keeps only the latest snapshot.
type Publisher struct {
	mu          sync.RWMutex
	state       State
	subscribers map[chan State]struct{}
}

func NewPublisher() *Publisher {
	return &Publisher{
		subscribers: make(map[chan State]struct{}),
	}
}

func (p *Publisher) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Update derives the next State from the current one and republishes it.
func (p *Publisher) Update(transition func(*State)) State {
	p.mu.Lock()
	next := p.state
	transition(&next)
	p.state = next
	for ch := range p.subscribers {
		send(ch, next)
	}
	p.mu.Unlock()
	return next
}

func (p *Publisher) Subscribe() chan State {
	ch := make(chan State, 1)

	p.mu.Lock()
	p.subscribers[ch] = struct{}{}
	send(ch, p.state)
	p.mu.Unlock()
	return ch
}

func (p *Publisher) Unsubscribe(ch chan State) {
	p.mu.Lock()
	if _, ok := p.subscribers[ch]; ok {
		delete(p.subscribers, ch)
		close(ch)
	}
	p.mu.Unlock()
}

func send(ch chan State, s State) {
	for {
		select {
		case ch <- s:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
