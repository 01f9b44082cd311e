// Package relay lets a browser act as the microphone and speaker of the voice
// bridge. Audio travels as binary websocket frames of mono PCM16
// little-endian: 16 kHz from the browser, 24 kHz back to it.
package relay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/voice"
)

// Control is a JSON text frame exchanged next to the audio
type Control struct {
	Type string `json:"type"`
}

const (
	// ControlStop from the browser ends the session
	ControlStop = "stop"
	// ControlInterrupt tells the browser to drop audio it already buffered
	ControlInterrupt = "interrupt"
)

var ErrClosed = errors.New("relay connection closed")

// Conn wraps one browser websocket. It implements voice.AudioDevices.
type Conn struct {
	ws  *websocket.Conn
	log zerolog.Logger

	writeMu   sync.Mutex
	frames    chan []float32
	done      chan struct{}
	closeOnce sync.Once
}

func New(ws *websocket.Conn, log zerolog.Logger) *Conn {
	return &Conn{
		ws:     ws,
		log:    log,
		frames: make(chan []float32, 32),
		done:   make(chan struct{}),
	}
}

// Run reads browser frames until the socket closes, ctx ends or the browser
// sends a stop control. The capture stream ends when Run returns.
func (c *Conn) Run(ctx context.Context) error {
	defer close(c.frames)

	stop := context.AfterFunc(ctx, func() { _ = c.Close() })
	defer stop()

	for {
		msgType, data, err := c.ws.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
				return nil
			default:
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("relay read error: %w", err)
		}

		switch msgType {
		case websocket.BinaryMessage:
			select {
			case c.frames <- voice.DecodePCM16(data):
			case <-c.done:
				return nil
			}
		case websocket.TextMessage:
			if isStop(data) {
				return nil
			}
		}
	}
}

func (c *Conn) OpenCapture(ctx context.Context, sampleRate int) (voice.CaptureStream, error) {
	if sampleRate != voice.InputSampleRate {
		return nil, fmt.Errorf("unsupported capture rate %d", sampleRate)
	}
	if c.isClosed() {
		return nil, ErrClosed
	}
	return &capture{conn: c}, nil
}

func (c *Conn) OpenPlayback(ctx context.Context, sampleRate int) (voice.PlaybackDevice, error) {
	if sampleRate != voice.OutputSampleRate {
		return nil, fmt.Errorf("unsupported playback rate %d", sampleRate)
	}
	if c.isClosed() {
		return nil, ErrClosed
	}
	return &speaker{conn: c, start: time.Now()}, nil
}

// Close closes the socket. Both devices share it, so releasing either one
// ends the relay.
func (c *Conn) Close() error {
	return c.CloseWith(websocket.CloseNormalClosure, "")
}

// CloseWith closes the socket with the given close code and reason. Only the
// first close reaches the browser.
func (c *Conn) CloseWith(code int, reason string) error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		c.writeMu.Lock()
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(code, reason),
			time.Now().Add(time.Second))
		c.writeMu.Unlock()
		err = c.ws.Close()
	})
	return err
}

func (c *Conn) isClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *Conn) writeAudio(pcm []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteMessage(websocket.BinaryMessage, pcm)
}

func (c *Conn) writeControl(msgType string) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteJSON(Control{Type: msgType})
}

type capture struct {
	conn *Conn
}

func (c *capture) Frames() <-chan []float32 { return c.conn.frames }

func (c *capture) Close() error { return c.conn.Close() }

// speaker keeps the device clock on the server and ships each segment to the
// browser when its start time comes.
type speaker struct {
	conn  *Conn
	start time.Time
}

func (s *speaker) Now() time.Duration { return time.Since(s.start) }

func (s *speaker) Play(samples []float32, sampleRate int, at time.Duration) (voice.Playback, error) {
	if s.conn.isClosed() {
		return nil, ErrClosed
	}

	p := &playback{conn: s.conn, done: make(chan struct{})}
	length := voice.SamplesDuration(len(samples), sampleRate)
	pcm := voice.EncodePCM16(samples)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.timer = time.AfterFunc(max(at-s.Now(), 0), func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.finished {
			return
		}
		if err := s.conn.writeAudio(pcm); err != nil {
			s.conn.log.Debug().Err(err).Msg("failed to send audio to browser")
			p.finishLocked()
			return
		}
		p.sent = true
		p.timer = time.AfterFunc(length, p.finish)
	})
	return p, nil
}

func (s *speaker) Close() error { return s.conn.Close() }

type playback struct {
	conn *Conn
	done chan struct{}

	mu       sync.Mutex
	timer    *time.Timer
	sent     bool
	finished bool
}

// Stop cancels a pending segment, or asks the browser to drop one already
// sent.
func (p *playback) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.finished {
		return
	}
	if p.timer != nil {
		p.timer.Stop()
	}
	if p.sent {
		if err := p.conn.writeControl(ControlInterrupt); err != nil {
			p.conn.log.Debug().Err(err).Msg("failed to send interrupt to browser")
		}
	}
	p.finishLocked()
}

func (p *playback) Done() <-chan struct{} { return p.done }

func (p *playback) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.finishLocked()
}

func (p *playback) finishLocked() {
	if p.finished {
		return
	}
	p.finished = true
	close(p.done)
}
