package memory

import (
	"sync"

	"project-planner/internal/model"
)

// history is a fixed-capacity FIFO ring of messages.
type history struct {
	mu    sync.Mutex
	buf   []model.Message
	start int
	size  int
}

func newHistory(capacity int) *history {
	return &history{buf: make([]model.Message, capacity)}
}

// push appends msgs, overwriting the oldest entries once full. Caller holds mu.
func (h *history) push(msgs ...model.Message) {
	n := len(h.buf)
	for _, m := range msgs {
		if h.size < n {
			h.buf[(h.start+h.size)%n] = m
			h.size++
			continue
		}
		h.buf[h.start] = m
		h.start = (h.start + 1) % n
	}
}

// snapshot copies the ring oldest first. Caller holds mu.
func (h *history) snapshot() []model.Message {
	out := make([]model.Message, h.size)
	n := len(h.buf)
	for i := range out {
		out[i] = h.buf[(h.start+i)%n]
	}
	return out
}
