package report

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/zoobzio/clockz"
)

// Progress logs how far a scan has got at most once per interval.
// A nil *Progress is valid and does nothing.
type Progress struct {
	mu       sync.Mutex
	log      logrus.FieldLogger
	clock    clockz.Clock
	interval time.Duration
	total    int
	done     int
	started  time.Time
	last     time.Time
}

// NewProgress starts a progress reporter for total units of work. A total of
// zero or less means the amount is unknown. A nil clock uses the real one.
func NewProgress(log logrus.FieldLogger, clock clockz.Clock, total int, interval time.Duration) *Progress {
	if clock == nil {
		clock = clockz.RealClock
	}
	now := clock.Now()
	return &Progress{
		log:      log,
		clock:    clock,
		interval: interval,
		total:    total,
		started:  now,
		last:     now,
	}
}

// Tick records n finished units and logs if the interval has passed.
func (p *Progress) Tick(n int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done += n
	now := p.clock.Now()
	if now.Sub(p.last) < p.interval {
		return
	}
	p.last = now
	entry := p.log.WithField("done", p.done)
	if p.total > 0 {
		entry = entry.WithField("total", p.total)
		entry.Infof("%d/%d windows (%.1f%%)", p.done, p.total, 100*float64(p.done)/float64(p.total))
		return
	}
	entry.Infof("%d windows", p.done)
}

// Done logs the final count and the elapsed time.
func (p *Progress) Done() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.log.WithField("done", p.done).Infof("finished %d windows in %s", p.done, p.clock.Now().Sub(p.started))
}

func (p *Progress) Count() int {
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}
