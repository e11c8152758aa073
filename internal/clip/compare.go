package clip

import "sync"

// compareCounter synthesises a change counter for backends that can only
// read content. Each ChangeCount call samples the clipboard and bumps the
// counter when the sample differs from the previous one, including a switch
// between "no text" and empty text. Copying identical text twice is not
// visible to it.
type compareCounter struct {
	read func() (string, bool)

	mu     sync.Mutex
	count  int64
	last   string
	lastOK bool
}

// newCompareCounter primes the counter with a first sample so that the
// content present at construction time is not reported as a change.
func newCompareCounter(read func() (string, bool)) *compareCounter {
	c := &compareCounter{read: read}
	c.last, c.lastOK = read()
	return c
}

func (c *compareCounter) ChangeCount() int64 {
	text, ok := c.read()

	c.mu.Lock()
	defer c.mu.Unlock()
	if ok != c.lastOK || text != c.last {
		c.count++
		c.last, c.lastOK = text, ok
	}
	return c.count
}
