package voice

import (
	"fmt"
	"sync"
	"time"

	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/observability"
)

// playbackQueue plays reply segments back to back on one device. Each
// segment starts at the later of the device clock and the end of the
// previous segment.
type playbackQueue struct {
	mu        sync.Mutex
	device    PlaybackDevice
	nextStart time.Duration
	active    map[Playback]struct{}
}

func newPlaybackQueue(device PlaybackDevice) *playbackQueue {
	return &playbackQueue{
		device: device,
		active: make(map[Playback]struct{}),
	}
}

func (q *playbackQueue) Schedule(samples []float32, sampleRate int) error {
	if len(samples) == 0 {
		return nil
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextStart = max(q.nextStart, q.device.Now())

	p, err := q.device.Play(samples, sampleRate, q.nextStart)
	if err != nil {
		return fmt.Errorf("failed to schedule playback: %w", err)
	}
	q.nextStart += SamplesDuration(len(samples), sampleRate)
	q.active[p] = struct{}{}
	observability.RecordPlayback("scheduled")

	go func() {
		<-p.Done()
		q.mu.Lock()
		delete(q.active, p)
		q.mu.Unlock()
	}()
	return nil
}

// Interrupt stops every scheduled or playing segment and resets the clock
func (q *playbackQueue) Interrupt() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for p := range q.active {
		p.Stop()
	}
	clear(q.active)
	q.nextStart = 0
	observability.RecordPlayback("interrupted")
}

func (q *playbackQueue) NextStart() time.Duration {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.nextStart
}

func (q *playbackQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.active)
}
