package voice

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/domain"
)

const waitFor = 2 * time.Second
const tick = 5 * time.Millisecond

type bridgeFixture struct {
	bridge  *Bridge
	dialer  *fakeDialer
	session *fakeSession
	devices *fakeDevices
	stops   *memoryStops
}

func newBridgeFixture(t *testing.T) *bridgeFixture {
	t.Helper()

	session := newFakeSession()
	f := &bridgeFixture{
		dialer:  &fakeDialer{session: session},
		session: session,
		devices: newFakeDevices(),
		stops:   &memoryStops{},
	}
	f.bridge = NewBridge(f.dialer, f.stops, Config{Model: "models/test"}, zerolog.Nop())
	t.Cleanup(f.bridge.Disconnect)
	return f
}

func (f *bridgeFixture) connect(t *testing.T) {
	t.Helper()

	require.NoError(t, f.bridge.Connect(context.Background(), f.devices))
	f.session.events <- &ServerEvent{SetupComplete: true}
	require.Eventually(t, func() bool {
		return f.bridge.Status().State == StateConnected
	}, waitFor, tick)
}

func TestBridge_ConnectLifecycle(t *testing.T) {
	f := newBridgeFixture(t)

	require.NoError(t, f.bridge.Connect(context.Background(), f.devices))
	assert.Equal(t, StateConnecting, f.bridge.Status().State)

	cfg := f.dialer.config
	assert.Equal(t, "models/test", cfg.Model)
	assert.Equal(t, SystemInstruction, cfg.SystemInstruction)
	require.Len(t, cfg.Tools, 3)

	f.session.events <- &ServerEvent{SetupComplete: true}
	require.Eventually(t, func() bool {
		return f.bridge.Status().State == StateConnected
	}, waitFor, tick)
	assert.Equal(t, "connected", f.bridge.Status().Name)
}

func TestBridge_ConnectWhileActiveIsNoop(t *testing.T) {
	f := newBridgeFixture(t)
	f.connect(t)

	err := f.bridge.Connect(context.Background(), f.devices)

	require.ErrorIs(t, err, ErrAlreadyActive)
	assert.Equal(t, 1, f.dialer.dialCalls())
	assert.Equal(t, StateConnected, f.bridge.Status().State)
}

func TestBridge_ForwardsFramesInOrder(t *testing.T) {
	f := newBridgeFixture(t)
	f.connect(t)

	frames := [][]float32{
		{0.5, -0.5, 0.5, -0.5},
		{0.25, 0.25},
		{0, 0, 0},
	}
	for _, frame := range frames {
		f.devices.capture.frames <- frame
	}

	require.Eventually(t, func() bool {
		return len(f.session.sentAudio()) == len(frames)
	}, waitFor, tick)

	sent := f.session.sentAudio()
	for i, frame := range frames {
		assert.Equal(t, EncodePCM16(frame), sent[i])
	}
}

func TestBridge_ReportsInputLevel(t *testing.T) {
	f := newBridgeFixture(t)
	f.connect(t)

	f.devices.capture.frames <- []float32{0.5, -0.5, 0.5, -0.5}

	require.Eventually(t, func() bool {
		return f.bridge.Status().Level > 0
	}, waitFor, tick)
	assert.InDelta(t, 0.5, f.bridge.Status().Level, 1e-6)
}

func TestBridge_SendFailureDoesNotDisconnect(t *testing.T) {
	f := newBridgeFixture(t)
	f.connect(t)

	f.session.mu.Lock()
	f.session.sendErr = assert.AnError
	f.session.mu.Unlock()

	f.devices.capture.frames <- []float32{0.1}
	f.devices.capture.frames <- []float32{0.2}

	require.Eventually(t, func() bool {
		return len(f.devices.capture.frames) == 0
	}, waitFor, tick)
	assert.Equal(t, StateConnected, f.bridge.Status().State)
}

func TestBridge_AddStopScenario(t *testing.T) {
	f := newBridgeFixture(t)
	f.connect(t)

	f.session.events <- &ServerEvent{ToolCalls: []FunctionCall{{
		ID:   "call-1",
		Name: ToolAddStop,
		Args: json.RawMessage(`{"customerName":"Maria","address":"Rua das Flores, 100"}`),
	}}}

	require.Eventually(t, func() bool {
		return len(f.session.toolResponses()) == 1
	}, waitFor, tick)

	resp := f.session.toolResponses()[0]
	require.Len(t, resp, 1)
	assert.Equal(t, "call-1", resp[0].ID)
	assert.Equal(t, ToolAddStop, resp[0].Name)
	assert.Equal(t, map[string]any{"result": "Parada para Maria adicionada com sucesso."}, resp[0].Response)

	stops := f.stops.ListStops()
	require.Len(t, stops, 1)
	assert.Equal(t, "Maria", stops[0].CustomerName)
	assert.Equal(t, "Rua das Flores, 100", stops[0].Address)
	assert.Equal(t, domain.StopPending, stops[0].Status)
}

func TestBridge_ToolFailureKeepsSession(t *testing.T) {
	f := newBridgeFixture(t)
	f.connect(t)

	f.session.events <- &ServerEvent{ToolCalls: []FunctionCall{
		{ID: "bad", Name: ToolAddStop, Args: json.RawMessage(`{"customerName":`)},
		{ID: "list", Name: ToolListStops},
	}}

	require.Eventually(t, func() bool {
		return len(f.session.toolResponses()) == 1
	}, waitFor, tick)

	resp := f.session.toolResponses()[0]
	require.Len(t, resp, 2)
	assert.Equal(t, map[string]any{"error": "Erro ao executar comando no aplicativo."}, resp[0].Response)
	assert.Equal(t, map[string]any{"stops": "[]"}, resp[1].Response)
	assert.Equal(t, StateConnected, f.bridge.Status().State)
}

func TestBridge_SchedulesAudioBackToBack(t *testing.T) {
	f := newBridgeFixture(t)
	f.connect(t)

	second := EncodePCM16(make([]float32, OutputSampleRate))
	half := EncodePCM16(make([]float32, OutputSampleRate/2))
	f.session.events <- &ServerEvent{Audio: [][]byte{second, half}}

	require.Eventually(t, func() bool {
		return len(f.devices.speaker.playCalls()) == 2
	}, waitFor, tick)

	calls := f.devices.speaker.playCalls()
	assert.Equal(t, time.Duration(0), calls[0].at)
	assert.Equal(t, time.Second, calls[1].at)
	assert.Equal(t, OutputSampleRate/2, calls[1].samples)
}

func TestBridge_InterruptionStopsPlayback(t *testing.T) {
	f := newBridgeFixture(t)
	f.connect(t)

	chunk := EncodePCM16(make([]float32, OutputSampleRate))
	f.session.events <- &ServerEvent{Audio: [][]byte{chunk, chunk}}
	require.Eventually(t, func() bool {
		return len(f.devices.speaker.playCalls()) == 2
	}, waitFor, tick)

	f.devices.speaker.setNow(300 * time.Millisecond)
	f.session.events <- &ServerEvent{Interrupted: true}

	require.Eventually(t, func() bool {
		for _, p := range f.devices.speaker.allPlaybacks() {
			if !p.isStopped() {
				return false
			}
		}
		return true
	}, waitFor, tick)

	f.session.events <- &ServerEvent{Audio: [][]byte{chunk}}
	require.Eventually(t, func() bool {
		return len(f.devices.speaker.playCalls()) == 3
	}, waitFor, tick)
	assert.Equal(t, 300*time.Millisecond, f.devices.speaker.playCalls()[2].at)
}

func TestBridge_DisconnectReleasesEverything(t *testing.T) {
	f := newBridgeFixture(t)
	f.connect(t)

	f.devices.capture.frames <- []float32{0.5}
	f.session.events <- &ServerEvent{Audio: [][]byte{EncodePCM16(make([]float32, 2400))}}
	require.Eventually(t, func() bool {
		return len(f.devices.speaker.playCalls()) == 1 && f.bridge.Status().Level > 0
	}, waitFor, tick)

	f.bridge.Disconnect()

	status := f.bridge.Status()
	assert.Equal(t, StateDisconnected, status.State)
	assert.Zero(t, status.Level)
	assert.True(t, f.devices.capture.isClosed())
	assert.True(t, f.devices.speaker.isClosed())
	assert.True(t, f.session.isClosed())
	assert.True(t, f.devices.speaker.allPlaybacks()[0].isStopped())

	f.bridge.Disconnect()
	assert.Equal(t, StateDisconnected, f.bridge.Status().State)
}

func TestBridge_ReconnectAfterDisconnect(t *testing.T) {
	f := newBridgeFixture(t)
	f.connect(t)
	f.bridge.Disconnect()

	next := newFakeSession()
	f.dialer.mu.Lock()
	f.dialer.session = next
	f.dialer.mu.Unlock()
	f.session = next
	f.devices = newFakeDevices()

	f.connect(t)
	assert.Equal(t, 2, f.dialer.dialCalls())
}

func TestBridge_RemoteCloseTearsDown(t *testing.T) {
	f := newBridgeFixture(t)
	f.connect(t)

	require.NoError(t, f.session.Close())

	require.Eventually(t, func() bool {
		return f.bridge.Status().State == StateDisconnected
	}, waitFor, tick)
	assert.True(t, f.devices.capture.isClosed())
	assert.True(t, f.devices.speaker.isClosed())
}

func TestBridge_CaptureLossTearsDown(t *testing.T) {
	f := newBridgeFixture(t)
	f.connect(t)

	close(f.devices.capture.frames)

	require.Eventually(t, func() bool {
		return f.bridge.Status().State == StateDisconnected
	}, waitFor, tick)
	assert.True(t, f.session.isClosed())
}

func TestBridge_CaptureLossWhileConnectingTearsDown(t *testing.T) {
	f := newBridgeFixture(t)

	require.NoError(t, f.bridge.Connect(context.Background(), f.devices))
	require.Equal(t, StateConnecting, f.bridge.Status().State)

	close(f.devices.capture.frames)

	require.Eventually(t, func() bool {
		return f.bridge.Status().State == StateDisconnected
	}, waitFor, tick)
	assert.True(t, f.session.isClosed())
	assert.True(t, f.devices.speaker.isClosed())

	f.devices = newFakeDevices()
	f.session = newFakeSession()
	f.dialer.session = f.session
	f.connect(t)
}

func TestBridge_DropsFramesBeforeSetup(t *testing.T) {
	f := newBridgeFixture(t)

	require.NoError(t, f.bridge.Connect(context.Background(), f.devices))
	f.devices.capture.frames <- []float32{0.5, -0.5}

	require.Eventually(t, func() bool {
		return len(f.devices.capture.frames) == 0
	}, waitFor, tick)
	assert.Empty(t, f.session.sentAudio())
	assert.Zero(t, f.bridge.Status().Level)

	f.session.events <- &ServerEvent{SetupComplete: true}
	require.Eventually(t, func() bool {
		return f.bridge.Status().State == StateConnected
	}, waitFor, tick)

	f.devices.capture.frames <- []float32{0.25}
	require.Eventually(t, func() bool {
		return len(f.session.sentAudio()) == 1
	}, waitFor, tick)
	assert.Equal(t, EncodePCM16([]float32{0.25}), f.session.sentAudio()[0])
}

func TestBridge_ConnectFailures(t *testing.T) {
	t.Run("Should stay disconnected when the microphone is denied", func(t *testing.T) {
		f := newBridgeFixture(t)
		f.devices.captureErr = assert.AnError

		err := f.bridge.Connect(context.Background(), f.devices)

		require.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, StateDisconnected, f.bridge.Status().State)
		assert.Zero(t, f.dialer.dialCalls())
		assert.False(t, f.devices.speaker.isClosed())
	})

	t.Run("Should release devices when the session cannot open", func(t *testing.T) {
		f := newBridgeFixture(t)
		f.dialer.err = assert.AnError

		err := f.bridge.Connect(context.Background(), f.devices)

		require.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, StateDisconnected, f.bridge.Status().State)
		assert.True(t, f.devices.capture.isClosed())
		assert.True(t, f.devices.speaker.isClosed())
	})
}

func TestBridge_DisconnectDuringConnect(t *testing.T) {
	f := newBridgeFixture(t)
	f.dialer.gate = make(chan struct{})
	f.dialer.entered = make(chan struct{})

	result := make(chan error, 1)
	go func() {
		result <- f.bridge.Connect(context.Background(), f.devices)
	}()

	<-f.dialer.entered
	assert.Equal(t, StateConnecting, f.bridge.Status().State)

	f.bridge.Disconnect()
	close(f.dialer.gate)

	err := <-result
	require.ErrorIs(t, err, ErrConnectAborted)
	assert.Equal(t, StateDisconnected, f.bridge.Status().State)
	assert.True(t, f.session.isClosed())
	assert.True(t, f.devices.capture.isClosed())
	assert.True(t, f.devices.speaker.isClosed())
}
