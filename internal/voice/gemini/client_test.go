package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/voice"
)

// liveServer is a scripted stand-in for the Live endpoint. It records every
// client message and replies with the given server messages once the setup
// arrives.
type liveServer struct {
	t        *testing.T
	received chan map[string]any
	replies  []string
	query    chan string
}

func newLiveServer(t *testing.T, replies ...string) (*liveServer, string) {
	t.Helper()

	ls := &liveServer{
		t:        t,
		received: make(chan map[string]any, 16),
		replies:  replies,
		query:    make(chan string, 1),
	}
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ls.query <- r.URL.Query().Get("key")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		first := true
		for {
			var msg map[string]any
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			ls.received <- msg
			if first {
				first = false
				for _, reply := range ls.replies {
					if err := conn.WriteMessage(websocket.TextMessage, []byte(reply)); err != nil {
						return
					}
				}
			}
		}
	}))
	t.Cleanup(srv.Close)

	return ls, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dialTest(t *testing.T, endpoint string) voice.Session {
	t.Helper()

	d := NewDialer(endpoint, "secret", zerolog.Nop())
	s, err := d.Dial(context.Background(), voice.SessionConfig{
		Model:             "gemini-live-test",
		SystemInstruction: "seja breve",
		Tools:             voice.FunctionDeclarations(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDialer_SendsSetup(t *testing.T) {
	ls, endpoint := newLiveServer(t)

	dialTest(t, endpoint)

	assert.Equal(t, "secret", <-ls.query)

	msg := <-ls.received
	setup, ok := msg["setup"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "models/gemini-live-test", setup["model"])
	assert.Equal(t, map[string]any{"responseModalities": []any{"AUDIO"}}, setup["generationConfig"])

	instruction := setup["systemInstruction"].(map[string]any)
	assert.Equal(t, []any{map[string]any{"text": "seja breve"}}, instruction["parts"])

	tools := setup["tools"].([]any)
	require.Len(t, tools, 1)
	decls := tools[0].(map[string]any)["functionDeclarations"].([]any)
	require.Len(t, decls, 3)
	assert.Equal(t, voice.ToolAddStop, decls[0].(map[string]any)["name"])
}

func TestDialer_RequiresAPIKey(t *testing.T) {
	d := NewDialer("ws://127.0.0.1:1", "", zerolog.Nop())

	_, err := d.Dial(context.Background(), voice.SessionConfig{})

	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestSession_SendAudioAndToolResponse(t *testing.T) {
	ls, endpoint := newLiveServer(t)
	s := dialTest(t, endpoint)
	<-ls.received

	require.NoError(t, s.SendAudio(context.Background(), []byte{0x01, 0x02}))
	require.NoError(t, s.SendToolResponse(context.Background(), []voice.FunctionResponse{
		{ID: "call-1", Name: voice.ToolListStops, Response: map[string]any{"stops": "[]"}},
	}))

	audio := (<-ls.received)["realtimeInput"].(map[string]any)["audio"].(map[string]any)
	assert.Equal(t, "audio/pcm;rate=16000", audio["mimeType"])
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0x01, 0x02}), audio["data"])

	responses := (<-ls.received)["toolResponse"].(map[string]any)["functionResponses"].([]any)
	require.Len(t, responses, 1)
	assert.Equal(t, map[string]any{
		"id":       "call-1",
		"name":     voice.ToolListStops,
		"response": map[string]any{"stops": "[]"},
	}, responses[0])
}

func TestSession_Receive(t *testing.T) {
	pcm := []byte{0x00, 0x40, 0x00, 0xc0}
	_, endpoint := newLiveServer(t,
		`{"setupComplete":{}}`,
		`{"serverContent":{"turnComplete":true}}`,
		`{"serverContent":{"modelTurn":{"parts":[{"inlineData":{"mimeType":"audio/pcm;rate=24000","data":"`+base64.StdEncoding.EncodeToString(pcm)+`"}}]}}}`,
		`{"toolCall":{"functionCalls":[{"id":"c1","name":"addDeliveryStop","args":{"customerName":"Maria","address":"Rua das Flores, 100"}}]}}`,
		`{"serverContent":{"interrupted":true}}`,
	)
	s := dialTest(t, endpoint)
	ctx := context.Background()

	ev, err := s.Receive(ctx)
	require.NoError(t, err)
	assert.True(t, ev.SetupComplete)

	// turnComplete alone carries nothing and is skipped
	ev, err = s.Receive(ctx)
	require.NoError(t, err)
	require.Len(t, ev.Audio, 1)
	assert.Equal(t, pcm, ev.Audio[0])

	ev, err = s.Receive(ctx)
	require.NoError(t, err)
	require.Len(t, ev.ToolCalls, 1)
	assert.Equal(t, "c1", ev.ToolCalls[0].ID)
	assert.Equal(t, voice.ToolAddStop, ev.ToolCalls[0].Name)
	var args map[string]string
	require.NoError(t, json.Unmarshal(ev.ToolCalls[0].Args, &args))
	assert.Equal(t, "Maria", args["customerName"])

	ev, err = s.Receive(ctx)
	require.NoError(t, err)
	assert.True(t, ev.Interrupted)
}

func TestSession_ReceiveAfterClose(t *testing.T) {
	_, endpoint := newLiveServer(t)
	s := dialTest(t, endpoint)

	require.NoError(t, s.Close())

	_, err := s.Receive(context.Background())
	require.Error(t, err)
}

func TestDecodeEvent(t *testing.T) {
	t.Run("Should reject invalid base64 audio", func(t *testing.T) {
		msg := serverMessage{ServerContent: &serverContent{ModelTurn: &content{Parts: []part{
			{InlineData: &blob{Data: "%%%"}},
		}}}}

		_, err := decodeEvent(msg)
		require.Error(t, err)
	})

	t.Run("Should skip text parts", func(t *testing.T) {
		msg := serverMessage{ServerContent: &serverContent{ModelTurn: &content{Parts: []part{{Text: "olá"}}}}}

		ev, err := decodeEvent(msg)
		require.NoError(t, err)
		assert.Nil(t, ev)
	})
}
