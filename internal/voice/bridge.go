package voice

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain/contract"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/observability"
)

type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Status is a point-in-time view of the bridge
type Status struct {
	State State   `json:"-"`
	Name  string  `json:"state"`
	Level float64 `json:"level"`
}

var (
	// ErrConnectAborted is returned by Connect when Disconnect won the race
	ErrConnectAborted = errors.New("voice connection aborted")
	// ErrAlreadyActive is returned by Connect when a session is already
	// connecting or connected. The active session is left untouched.
	ErrAlreadyActive = errors.New("voice session already active")
	errCaptureClosed  = errors.New("capture device closed")
)

type Config struct {
	Model string
}

// Bridge runs at most one speech session at a time. Every session gets a
// generation number; events from an older generation are dropped so a late
// teardown can never clobber a newer session.
type Bridge struct {
	dialer Dialer
	stops  contract.StopBook
	cfg    Config
	log    zerolog.Logger

	mu       sync.Mutex
	state    State
	gen      uint64
	level    float64
	cancel   context.CancelFunc
	session  Session
	capture  CaptureStream
	speaker  PlaybackDevice
	playback *playbackQueue
}

func NewBridge(dialer Dialer, stops contract.StopBook, cfg Config, log zerolog.Logger) *Bridge {
	observability.RecordVoiceState(int(StateDisconnected))
	return &Bridge{
		dialer: dialer,
		stops:  stops,
		cfg:    cfg,
		log:    log,
	}
}

func (b *Bridge) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Status{State: b.state, Name: b.state.String(), Level: b.level}
}

// Connect opens the microphone, the speaker and the remote session, in that
// order. The bridge becomes Connected when the service acknowledges the
// setup. Calling Connect on an active bridge does nothing and reports
// ErrAlreadyActive.
func (b *Bridge) Connect(ctx context.Context, devices AudioDevices) error {
	b.mu.Lock()
	if b.state != StateDisconnected {
		b.mu.Unlock()
		return ErrAlreadyActive
	}
	b.gen++
	gen := b.gen
	sessionCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	b.cancel = cancel
	b.setStateLocked(StateConnecting)
	b.mu.Unlock()

	capture, err := devices.OpenCapture(ctx, InputSampleRate)
	if err != nil {
		b.teardown(gen, err)
		return fmt.Errorf("failed to open microphone: %w", err)
	}
	if !b.adopt(gen, func() { b.capture = capture }) {
		_ = capture.Close()
		return ErrConnectAborted
	}

	speaker, err := devices.OpenPlayback(ctx, OutputSampleRate)
	if err != nil {
		b.teardown(gen, err)
		return fmt.Errorf("failed to open speaker: %w", err)
	}
	if !b.adopt(gen, func() {
		b.speaker = speaker
		b.playback = newPlaybackQueue(speaker)
	}) {
		_ = speaker.Close()
		return ErrConnectAborted
	}

	session, err := b.dialer.Dial(ctx, SessionConfig{
		Model:             b.cfg.Model,
		SystemInstruction: SystemInstruction,
		Tools:             FunctionDeclarations(),
	})
	if err != nil {
		b.teardown(gen, err)
		return fmt.Errorf("failed to open voice session: %w", err)
	}
	if !b.adopt(gen, func() { b.session = session }) {
		_ = session.Close()
		return ErrConnectAborted
	}

	go b.receiveLoop(sessionCtx, gen, session)
	go b.forwardAudio(sessionCtx, gen, session, capture)
	b.log.Info().Uint64("generation", gen).Msg("voice session opened")
	return nil
}

// Disconnect tears the active session down. It is safe to call at any time,
// including while Connect is still running.
func (b *Bridge) Disconnect() {
	b.mu.Lock()
	gen := b.gen
	b.mu.Unlock()
	b.teardown(gen, nil)
}

func (b *Bridge) adopt(gen uint64, fn func()) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gen != gen || b.state == StateDisconnected {
		return false
	}
	fn()
	return true
}

func (b *Bridge) receiveLoop(ctx context.Context, gen uint64, session Session) {
	for {
		event, err := session.Receive(ctx)
		if err != nil {
			if ctx.Err() == nil {
				b.teardown(gen, err)
			}
			return
		}
		b.handleEvent(ctx, gen, session, event)
	}
}

func (b *Bridge) handleEvent(ctx context.Context, gen uint64, session Session, event *ServerEvent) {
	if b.currentPlayback(gen) == nil {
		return
	}

	if event.SetupComplete {
		b.markConnected(gen)
	}

	if len(event.ToolCalls) > 0 {
			responses := make([]FunctionResponse, 0, len(event.ToolCalls))
		for _, call := range event.ToolCalls {
			resp := dispatch(b.stops, call)
			b.log.Info().Str("tool", call.Name).Str("call_id", call.ID).Interface("response", resp.Response).Msg("function call handled")
			responses = append(responses, resp)
		}
		if err := session.SendToolResponse(ctx, responses); err != nil {
			b.log.Error().Err(err).Msg("failed to send tool response")
		}
	}

	if len(event.Audio) > 0 {
		queue := b.currentPlayback(gen)
		for _, chunk := range event.Audio {
			if queue == nil {
				break
			}
			if err := queue.Schedule(DecodePCM16(chunk), OutputSampleRate); err != nil {
				b.log.Error().Err(err).Msg("failed to play audio")
			}
		}
	}

	if event.Interrupted {
		if queue := b.currentPlayback(gen); queue != nil {
			queue.Interrupt()
		}
	}
}

func (b *Bridge) currentPlayback(gen uint64) *playbackQueue {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gen != gen {
		return nil
	}
	return b.playback
}

func (b *Bridge) markConnected(gen uint64) {
	b.mu.Lock()
	if b.gen != gen || b.state != StateConnecting {
		b.mu.Unlock()
		return
	}
	b.setStateLocked(StateConnected)
	b.mu.Unlock()

	b.log.Info().Uint64("generation", gen).Msg("voice session connected")
}

// forwardAudio drains the capture stream from the moment the session opens.
// Frames captured before the setup is acknowledged are dropped. It is the
// single sender, so frames reach the service in capture order, and a closed
// capture stream tears the session down in any state.
func (b *Bridge) forwardAudio(ctx context.Context, gen uint64, session Session, capture CaptureStream) {
	frames := capture.Frames()
	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-frames:
			if !ok {
				b.teardown(gen, errCaptureClosed)
				return
			}
			if !b.setLevel(gen, RMS(frame)) {
				continue
			}

			err := session.SendAudio(ctx, EncodePCM16(frame))
			observability.RecordVoiceFrame(err == nil)
			if err != nil {
				b.log.Debug().Err(err).Msg("failed to send audio frame")
			}
		}
	}
}

// setLevel records the input level and reports whether generation gen is
// connected.
func (b *Bridge) setLevel(gen uint64, level float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gen != gen || b.state != StateConnected {
		return false
	}
	b.level = level
	return true
}

// teardown releases everything owned by generation gen. Calls for an older
// generation or an already disconnected bridge are ignored.
func (b *Bridge) teardown(gen uint64, cause error) {
	b.mu.Lock()
	if b.gen != gen || b.state == StateDisconnected {
		b.mu.Unlock()
		return
	}
	b.gen++
	cancel := b.cancel
	capture, speaker, session, playback := b.capture, b.speaker, b.session, b.playback
	b.cancel, b.capture, b.speaker, b.session, b.playback = nil, nil, nil, nil, nil
	b.level = 0
	b.setStateLocked(StateDisconnected)
	b.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if capture != nil {
		if err := capture.Close(); err != nil {
			b.log.Warn().Err(err).Msg("failed to release microphone")
		}
	}
	if playback != nil {
		playback.Interrupt()
	}
	if speaker != nil {
		if err := speaker.Close(); err != nil {
			b.log.Warn().Err(err).Msg("failed to release speaker")
		}
	}
	if session != nil {
		if err := session.Close(); err != nil {
			b.log.Debug().Err(err).Msg("failed to close voice session")
		}
	}

	event := b.log.Info()
	if cause != nil {
		event = b.log.Warn().Err(cause)
	}
	event.Uint64("generation", gen).Msg("voice session closed")
}

func (b *Bridge) setStateLocked(state State) {
	b.state = state
	observability.RecordVoiceState(int(state))
}
