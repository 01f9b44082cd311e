package gemini

import "github.com/whestprvcj-prog/gest-o-de-equipes-frotas/internal/voice"

// Client messages of the BidiGenerateContent protocol

type clientMessage struct {
	Setup         *setup         `json:"setup,omitempty"`
	RealtimeInput *realtimeInput `json:"realtimeInput,omitempty"`
	ToolResponse  *toolResponse  `json:"toolResponse,omitempty"`
}

type setup struct {
	Model             string           `json:"model"`
	GenerationConfig  generationConfig `json:"generationConfig"`
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	Tools             []tool           `json:"tools,omitempty"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string `json:"text,omitempty"`
	InlineData *blob  `json:"inlineData,omitempty"`
}

type blob struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type tool struct {
	FunctionDeclarations []voice.FunctionDeclaration `json:"functionDeclarations"`
}

type realtimeInput struct {
	Audio *blob `json:"audio"`
}

type toolResponse struct {
	FunctionResponses []voice.FunctionResponse `json:"functionResponses"`
}

// Server messages

type serverMessage struct {
	SetupComplete *struct{}      `json:"setupComplete,omitempty"`
	ServerContent *serverContent `json:"serverContent,omitempty"`
	ToolCall      *toolCall      `json:"toolCall,omitempty"`
	GoAway        *goAway        `json:"goAway,omitempty"`
}

type serverContent struct {
	ModelTurn    *content `json:"modelTurn,omitempty"`
	Interrupted  bool     `json:"interrupted,omitempty"`
	TurnComplete bool     `json:"turnComplete,omitempty"`
}

type toolCall struct {
	FunctionCalls []voice.FunctionCall `json:"functionCalls"`
}

type goAway struct {
	TimeLeft string `json:"timeLeft"`
}
