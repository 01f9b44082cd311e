// Package gemini speaks the Gemini Live BidiGenerateContent websocket protocol
package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/voice"
)

const inputMimeType = "audio/pcm;rate=16000"

var ErrMissingAPIKey = errors.New("gemini api key is not configured")

// Dialer opens Live sessions against endpoint
type Dialer struct {
	endpoint string
	apiKey   string
	ws       *websocket.Dialer
	log      zerolog.Logger
}

func NewDialer(endpoint, apiKey string, log zerolog.Logger) *Dialer {
	return &Dialer{
		endpoint: endpoint,
		apiKey:   apiKey,
		ws:       websocket.DefaultDialer,
		log:      log,
	}
}

// Dial connects and sends the setup message. The session is usable right
// away; the server confirms the setup with a SetupComplete event.
func (d *Dialer) Dial(ctx context.Context, cfg voice.SessionConfig) (voice.Session, error) {
	if d.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	wsURL, err := url.Parse(d.endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse endpoint '%s': %w", d.endpoint, err)
	}
	query := wsURL.Query()
	query.Set("key", d.apiKey)
	wsURL.RawQuery = query.Encode()

	conn, _, err := d.ws.DialContext(ctx, wsURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to websocket: %w", err)
	}

	s := &session{conn: conn, log: d.log}
	if err := s.write(clientMessage{Setup: newSetup(cfg)}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to send setup: %w", err)
	}
	return s, nil
}

func newSetup(cfg voice.SessionConfig) *setup {
	model := cfg.Model
	if !strings.HasPrefix(model, "models/") {
		model = "models/" + model
	}

	st := &setup{
		Model:            model,
		GenerationConfig: generationConfig{ResponseModalities: []string{"AUDIO"}},
	}
	if cfg.SystemInstruction != "" {
		st.SystemInstruction = &content{Parts: []part{{Text: cfg.SystemInstruction}}}
	}
	if len(cfg.Tools) > 0 {
		st.Tools = []tool{{FunctionDeclarations: cfg.Tools}}
	}
	return st
}

type session struct {
	conn *websocket.Conn
	log  zerolog.Logger

	// gorilla/websocket allows one concurrent writer
	writeMu   sync.Mutex
	closeOnce sync.Once
}

func (s *session) SendAudio(ctx context.Context, pcm []byte) error {
	return s.write(clientMessage{RealtimeInput: &realtimeInput{
		Audio: &blob{MimeType: inputMimeType, Data: base64.StdEncoding.EncodeToString(pcm)},
	}})
}

func (s *session) SendToolResponse(ctx context.Context, responses []voice.FunctionResponse) error {
	return s.write(clientMessage{ToolResponse: &toolResponse{FunctionResponses: responses}})
}

func (s *session) write(msg clientMessage) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(msg)
}

// Receive reads until a message carries something the bridge cares about
func (s *session) Receive(ctx context.Context) (*voice.ServerEvent, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var msg serverMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil, fmt.Errorf("session closed by server: %w", err)
			}
			return nil, fmt.Errorf("websocket read error in live session: %w", err)
		}

		event, err := decodeEvent(msg)
		if err != nil {
			s.log.Warn().Err(err).Msg("dropping undecodable server message")
			continue
		}
		if msg.GoAway != nil {
			s.log.Warn().Str("time_left", msg.GoAway.TimeLeft).Msg("server is about to close the session")
		}
		if event != nil {
			return event, nil
		}
	}
}

func (s *session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.writeMu.Lock()
		_ = s.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		s.writeMu.Unlock()
		err = s.conn.Close()
	})
	return err
}

// decodeEvent returns nil for messages without anything actionable
func decodeEvent(msg serverMessage) (*voice.ServerEvent, error) {
	event := &voice.ServerEvent{SetupComplete: msg.SetupComplete != nil}

	if sc := msg.ServerContent; sc != nil {
		event.Interrupted = sc.Interrupted
		if sc.ModelTurn != nil {
			for _, p := range sc.ModelTurn.Parts {
				if p.InlineData == nil || p.InlineData.Data == "" {
					continue
				}
				pcm, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
				if err != nil {
					return nil, fmt.Errorf("invalid inline audio: %w", err)
				}
				event.Audio = append(event.Audio, pcm)
			}
		}
	}
	if msg.ToolCall != nil {
		event.ToolCalls = msg.ToolCall.FunctionCalls
	}

	if !event.SetupComplete && !event.Interrupted && len(event.Audio) == 0 && len(event.ToolCalls) == 0 {
		return nil, nil
	}
	return event, nil
}
