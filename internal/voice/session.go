// Package voice bridges a real-time speech session to the delivery stop book.
// It owns the connection lifecycle, forwards captured audio, schedules the
// spoken replies and answers the function calls issued by the remote model.
package voice

import (
	"context"
	"encoding/json"
	"time"
)

const (
	// InputSampleRate is the rate captured audio is sent at
	InputSampleRate = 16000
	// OutputSampleRate is the rate of the audio returned by the speech service
	OutputSampleRate = 24000
	// FrameSize is the number of samples per captured frame
	FrameSize = 4096
)

// Schema is the subset of OpenAPI schema used by function declarations
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

type FunctionDeclaration struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Parameters  *Schema `json:"parameters,omitempty"`
}

// FunctionCall is an action requested by the remote model
type FunctionCall struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Args json.RawMessage `json:"args,omitempty"`
}

// FunctionResponse acknowledges one FunctionCall
type FunctionResponse struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

// SessionConfig is sent once when the session opens
type SessionConfig struct {
	Model             string
	SystemInstruction string
	Tools             []FunctionDeclaration
}

// ServerEvent is one decoded message from the speech service. A single
// message may carry several of these fields at once.
type ServerEvent struct {
	SetupComplete bool
	// Audio holds PCM16 little-endian chunks at OutputSampleRate
	Audio       [][]byte
	Interrupted bool
	ToolCalls   []FunctionCall
}

// Session is an open bidirectional speech session
type Session interface {
	SendAudio(ctx context.Context, pcm []byte) error
	SendToolResponse(ctx context.Context, responses []FunctionResponse) error
	// Receive blocks for the next event. It returns an error once the session
	// is closed by either side.
	Receive(ctx context.Context) (*ServerEvent, error)
	Close() error
}

type Dialer interface {
	Dial(ctx context.Context, cfg SessionConfig) (Session, error)
}

// CaptureStream delivers mono float32 frames in [-1, 1]. The channel is
// closed when the device goes away.
type CaptureStream interface {
	Frames() <-chan []float32
	Close() error
}

// PlaybackDevice plays mono float32 audio on its own clock
type PlaybackDevice interface {
	// Now is the current position of the device clock
	Now() time.Duration
	// Play schedules samples to start at the given clock position
	Play(samples []float32, sampleRate int, at time.Duration) (Playback, error)
	Close() error
}

// Playback is one scheduled segment. Done is closed when it ends or stops.
type Playback interface {
	Stop()
	Done() <-chan struct{}
}

// AudioDevices opens the microphone and speaker of one client
type AudioDevices interface {
	OpenCapture(ctx context.Context, sampleRate int) (CaptureStream, error)
	OpenPlayback(ctx context.Context, sampleRate int) (PlaybackDevice, error)
}
