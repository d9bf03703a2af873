// Package output provides textual progress reporting for long-running
// analysis phases.
package output

import (
	"strconv"
	"sync"

	"go.trai.ch/zerr"
)

// ErrProgressExhausted is returned when incrementing past the declared total.
var ErrProgressExhausted = zerr.New("progress already at total")

// Progress formats a "current/total postfix" counter. It is safe for
// concurrent increments, since planner workers report completion from
// independent goroutines.
type Progress struct {
	mu      sync.Mutex
	total   int
	current int
	postfix string
}

// NewProgress creates a counter with the given total and postfix,
// e.g. NewProgress(10, "classes analysed").
func NewProgress(total int, postfix string) *Progress {
	return &Progress{total: total, postfix: postfix}
}

// Increment advances the counter and returns the formatted progress line.
func (p *Progress) Increment() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == p.total {
		return "", zerr.With(ErrProgressExhausted, "total", p.total)
	}
	p.current++
	return p.format(), nil
}

// Current returns the formatted progress line without advancing.
func (p *Progress) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.format()
}

func (p *Progress) format() string {
	return strconv.Itoa(p.current) + "/" + strconv.Itoa(p.total) + " " + p.postfix
}
