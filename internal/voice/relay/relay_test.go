package relay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/voice"
)

type relayFixture struct {
	server  *Conn
	client  *websocket.Conn
	runDone chan error
}

func newRelayFixture(t *testing.T) *relayFixture {
	t.Helper()

	conns := make(chan *Conn, 1)
	f := &relayFixture{runDone: make(chan error, 1)}
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := New(ws, zerolog.Nop())
		conns <- c
		f.runDone <- c.Run(context.Background())
	}))
	t.Cleanup(srv.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	f.client = client
	f.server = <-conns
	t.Cleanup(func() { _ = f.server.Close() })
	return f
}

func TestConn_CaptureFrames(t *testing.T) {
	f := newRelayFixture(t)

	capture, err := f.server.OpenCapture(context.Background(), voice.InputSampleRate)
	require.NoError(t, err)

	require.NoError(t, f.client.WriteMessage(websocket.BinaryMessage, voice.EncodePCM16([]float32{0, -1})))
	require.NoError(t, f.client.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`)))
	require.NoError(t, f.client.WriteMessage(websocket.BinaryMessage, voice.EncodePCM16([]float32{-0.5})))

	assert.Equal(t, []float32{0, -1}, <-capture.Frames())
	assert.Equal(t, []float32{-0.5}, <-capture.Frames())
}

func TestConn_StopControlEndsCapture(t *testing.T) {
	f := newRelayFixture(t)

	capture, err := f.server.OpenCapture(context.Background(), voice.InputSampleRate)
	require.NoError(t, err)

	require.NoError(t, f.client.WriteMessage(websocket.TextMessage, []byte(`{"type":"stop"}`)))

	require.NoError(t, <-f.runDone)
	_, ok := <-capture.Frames()
	assert.False(t, ok)
}

func TestConn_ClientDisconnectEndsCapture(t *testing.T) {
	f := newRelayFixture(t)

	capture, err := f.server.OpenCapture(context.Background(), voice.InputSampleRate)
	require.NoError(t, err)

	require.NoError(t, f.client.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))

	require.NoError(t, <-f.runDone)
	_, ok := <-capture.Frames()
	assert.False(t, ok)
}

func TestConn_RejectsUnexpectedRates(t *testing.T) {
	f := newRelayFixture(t)

	_, err := f.server.OpenCapture(context.Background(), 44100)
	require.Error(t, err)

	_, err = f.server.OpenPlayback(context.Background(), voice.InputSampleRate)
	require.Error(t, err)
}

func TestSpeaker_PlaySendsAudio(t *testing.T) {
	f := newRelayFixture(t)

	spk, err := f.server.OpenPlayback(context.Background(), voice.OutputSampleRate)
	require.NoError(t, err)

	samples := []float32{0.5, -0.5, 0.25}
	p, err := spk.Play(samples, voice.OutputSampleRate, 0)
	require.NoError(t, err)

	require.NoError(t, f.client.SetReadDeadline(time.Now().Add(2*time.Second)))
	msgType, data, err := f.client.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.BinaryMessage, msgType)
	assert.Equal(t, voice.EncodePCM16(samples), data)

	select {
	case <-p.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("playback never finished")
	}
}

func TestSpeaker_StopBeforeStart(t *testing.T) {
	f := newRelayFixture(t)

	spk, err := f.server.OpenPlayback(context.Background(), voice.OutputSampleRate)
	require.NoError(t, err)

	p, err := spk.Play([]float32{0.1}, voice.OutputSampleRate, spk.Now()+time.Hour)
	require.NoError(t, err)

	p.Stop()
	p.Stop()

	select {
	case <-p.Done():
	default:
		t.Fatal("stopped playback should be done")
	}
}

func TestSpeaker_StopAfterSendInterruptsBrowser(t *testing.T) {
	f := newRelayFixture(t)

	spk, err := f.server.OpenPlayback(context.Background(), voice.OutputSampleRate)
	require.NoError(t, err)

	p, err := spk.Play(make([]float32, voice.OutputSampleRate*10), voice.OutputSampleRate, 0)
	require.NoError(t, err)

	require.NoError(t, f.client.SetReadDeadline(time.Now().Add(2*time.Second)))
	msgType, _, err := f.client.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.BinaryMessage, msgType)

	p.Stop()

	var ctrl Control
	require.NoError(t, f.client.ReadJSON(&ctrl))
	assert.Equal(t, ControlInterrupt, ctrl.Type)
	<-p.Done()
}

func TestConn_DevicesFailAfterClose(t *testing.T) {
	f := newRelayFixture(t)

	require.NoError(t, f.server.Close())

	_, err := f.server.OpenCapture(context.Background(), voice.InputSampleRate)
	require.ErrorIs(t, err, ErrClosed)
	_, err = f.server.OpenPlayback(context.Background(), voice.OutputSampleRate)
	require.ErrorIs(t, err, ErrClosed)
	require.NoError(t, f.server.Close())
}
