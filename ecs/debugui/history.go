package debugui

// history is a fixed-size ring of samples for plotting.
type history struct {
	samples []float32
	next    int
	filled  bool
}

func newHistory(size int) *history {
	return &history{samples: make([]float32, max(size, 1))}
}

func (h *history) push(v float32) {
	h.samples[h.next] = v
	h.next = (h.next + 1) % len(h.samples)
	if h.next == 0 {
		h.filled = true
	}
}

// ordered returns the samples oldest first, zero padded until the ring fills.
func (h *history) ordered() []float32 {
	out := make([]float32, len(h.samples))
	n := copy(out, h.samples[h.next:])
	copy(out[n:], h.samples[:h.next])
	return out
}

func (h *history) average() float32 {
	live := h.samples[:h.next]
	if h.filled {
		live = h.samples
	}
	if len(live) == 0 {
		return 0
	}
	var sum float32
	for _, v := range live {
		sum += v
	}
	return sum / float32(len(live))
}
