package voice

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/entity"
)

type fakeSession struct {
	events    chan *ServerEvent
	closed    chan struct{}
	closeOnce sync.Once

	mu        sync.Mutex
	audio     [][]byte
	responses [][]FunctionResponse
	sendErr   error
}

func newFakeSession() *fakeSession {
	return &fakeSession{
		events: make(chan *ServerEvent, 16),
		closed: make(chan struct{}),
	}
}

func (s *fakeSession) SendAudio(ctx context.Context, pcm []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sendErr != nil {
		return s.sendErr
	}
	s.audio = append(s.audio, pcm)
	return nil
}

func (s *fakeSession) SendToolResponse(ctx context.Context, responses []FunctionResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses = append(s.responses, responses)
	return nil
}

func (s *fakeSession) Receive(ctx context.Context) (*ServerEvent, error) {
	select {
	case ev := <-s.events:
		return ev, nil
	case <-s.closed:
		return nil, io.EOF
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *fakeSession) Close() error {
	s.closeOnce.Do(func() { close(s.closed) })
	return nil
}

func (s *fakeSession) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

func (s *fakeSession) sentAudio() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.audio...)
}

func (s *fakeSession) toolResponses() [][]FunctionResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]FunctionResponse(nil), s.responses...)
}

type fakeDialer struct {
	mu      sync.Mutex
	session Session
	err     error
	calls   int
	config  SessionConfig
	// gate, when set, blocks Dial until it is closed
	gate    chan struct{}
	entered chan struct{}
}

func (d *fakeDialer) Dial(ctx context.Context, cfg SessionConfig) (Session, error) {
	d.mu.Lock()
	d.calls++
	d.config = cfg
	gate, entered := d.gate, d.entered
	d.mu.Unlock()

	if gate != nil {
		if entered != nil {
			close(entered)
		}
		<-gate
	}
	if d.err != nil {
		return nil, d.err
	}
	return d.session, nil
}

func (d *fakeDialer) dialCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

type fakeCapture struct {
	frames chan []float32
	mu     sync.Mutex
	closed bool
}

func newFakeCapture() *fakeCapture {
	return &fakeCapture{frames: make(chan []float32, 16)}
}

func (c *fakeCapture) Frames() <-chan []float32 { return c.frames }

func (c *fakeCapture) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeCapture) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

type playCall struct {
	at      time.Duration
	samples int
}

type fakeSpeaker struct {
	mu        sync.Mutex
	now       time.Duration
	calls     []playCall
	playbacks []*fakePlayback
	closed    bool
}

func (s *fakeSpeaker) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *fakeSpeaker) setNow(now time.Duration) {
	s.mu.Lock()
	s.now = now
	s.mu.Unlock()
}

func (s *fakeSpeaker) Play(samples []float32, sampleRate int, at time.Duration) (Playback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &fakePlayback{done: make(chan struct{})}
	s.calls = append(s.calls, playCall{at: at, samples: len(samples)})
	s.playbacks = append(s.playbacks, p)
	return p, nil
}

func (s *fakeSpeaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSpeaker) playCalls() []playCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]playCall(nil), s.calls...)
}

func (s *fakeSpeaker) allPlaybacks() []*fakePlayback {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*fakePlayback(nil), s.playbacks...)
}

func (s *fakeSpeaker) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

type fakePlayback struct {
	done    chan struct{}
	once    sync.Once
	mu      sync.Mutex
	stopped bool
}

func (p *fakePlayback) Stop() {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()
	p.finish()
}

func (p *fakePlayback) finish() { p.once.Do(func() { close(p.done) }) }

func (p *fakePlayback) Done() <-chan struct{} { return p.done }

func (p *fakePlayback) isStopped() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopped
}

type fakeDevices struct {
	capture    *fakeCapture
	speaker    *fakeSpeaker
	captureErr error
}

func newFakeDevices() *fakeDevices {
	return &fakeDevices{capture: newFakeCapture(), speaker: &fakeSpeaker{}}
}

func (d *fakeDevices) OpenCapture(ctx context.Context, sampleRate int) (CaptureStream, error) {
	if d.captureErr != nil {
		return nil, d.captureErr
	}
	return d.capture, nil
}

func (d *fakeDevices) OpenPlayback(ctx context.Context, sampleRate int) (PlaybackDevice, error) {
	return d.speaker, nil
}

// memoryStops is a minimal stop book with the production matching rules
type memoryStops struct {
	mu    sync.Mutex
	stops []entity.DeliveryStop
}

func (m *memoryStops) AddStop(args entity.AddStopArgs) (*entity.DeliveryStop, error) {
	if strings.TrimSpace(args.CustomerName) == "" || strings.TrimSpace(args.Address) == "" {
		return nil, errors.New("missing fields")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	stop := entity.DeliveryStop{
		ID:           "stop",
		CustomerName: args.CustomerName,
		Address:      args.Address,
		Notes:        args.Notes,
		Status:       domain.StopPending,
	}
	m.stops = append(m.stops, stop)
	return &stop, nil
}

func (m *memoryStops) RemoveStop(customerName string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.stops[:0]
	for _, s := range m.stops {
		if !strings.EqualFold(s.CustomerName, strings.TrimSpace(customerName)) {
			kept = append(kept, s)
		}
	}
	removed := len(m.stops) - len(kept)
	m.stops = kept
	return removed
}

func (m *memoryStops) ListStops() []entity.DeliveryStop {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entity.DeliveryStop(nil), m.stops...)
}
