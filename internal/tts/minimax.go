package tts

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	minimaxEndpoint = "https://api.minimaxi.com/v1/t2a_v2"
	minimaxModel    = "speech-02-turbo"

	defaultEnglishVoice = "male-qn-qingse"
	defaultChineseVoice = "female-shaonv"
)

// MiniMax synthesizes speech through the MiniMax t2a_v2 HTTP API.
type MiniMax struct {
	apiKey     string
	groupID    string
	endpoint   string
	enVoice    string
	cnVoice    string
	speed      float64
	httpClient *http.Client
}

type MiniMaxOption func(*MiniMax)

func WithVoices(english, chinese string) MiniMaxOption {
	return func(m *MiniMax) {
		if english != "" {
			m.enVoice = english
		}
		if chinese != "" {
			m.cnVoice = chinese
		}
	}
}

func WithSpeed(speed float64) MiniMaxOption {
	return func(m *MiniMax) {
		if speed < 0.5 {
			speed = 0.5
		}
		if speed > 2.0 {
			speed = 2.0
		}
		m.speed = speed
	}
}

func WithGroupID(id string) MiniMaxOption {
	return func(m *MiniMax) { m.groupID = id }
}

// WithEndpoint overrides the API URL, used by tests.
func WithEndpoint(url string) MiniMaxOption {
	return func(m *MiniMax) { m.endpoint = url }
}

func NewMiniMax(apiKey string, opts ...MiniMaxOption) (*MiniMax, error) {
	if apiKey == "" {
		return nil, errors.New("minimax: api key must not be empty")
	}
	m := &MiniMax{
		apiKey:     apiKey,
		endpoint:   minimaxEndpoint,
		enVoice:    defaultEnglishVoice,
		cnVoice:    defaultChineseVoice,
		speed:      1.0,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, o := range opts {
		o(m)
	}
	return m, nil
}

type minimaxRequest struct {
	Model        string               `json:"model"`
	Text         string               `json:"text"`
	Stream       bool                 `json:"stream"`
	OutputFormat string               `json:"output_format"`
	LangBoost    string               `json:"language_boost"`
	VoiceSetting minimaxVoiceSetting  `json:"voice_setting"`
	AudioSetting minimaxAudioSetting  `json:"audio_setting"`
}

type minimaxVoiceSetting struct {
	VoiceID string  `json:"voice_id"`
	Speed   float64 `json:"speed"`
	Vol     float64 `json:"vol"`
	Pitch   int     `json:"pitch"`
}

type minimaxAudioSetting struct {
	SampleRate int    `json:"sample_rate"`
	Bitrate    int    `json:"bitrate"`
	Format     string `json:"format"`
	Channel    int    `json:"channel"`
}

type minimaxResponse struct {
	Data struct {
		Audio string `json:"audio"` // hex-encoded mp3
	} `json:"data"`
	BaseResp struct {
		StatusCode int    `json:"status_code"`
		StatusMsg  string `json:"status_msg"`
	} `json:"base_resp"`
}

func (m *MiniMax) Synthesize(ctx context.Context, text string, lang Lang) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("minimax: text must not be empty")
	}

	voice := m.enVoice
	if lang == LangChinese {
		voice = m.cnVoice
	}
	payload := minimaxRequest{
		Model:        minimaxModel,
		Text:         text,
		OutputFormat: "hex",
		LangBoost:    "auto",
		VoiceSetting: minimaxVoiceSetting{VoiceID: voice, Speed: m.speed, Vol: 1.0},
		AudioSetting: minimaxAudioSetting{SampleRate: 32000, Bitrate: 128000, Format: "mp3", Channel: 1},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if m.groupID != "" {
		req.Header.Set("Group-Id", m.groupID)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("minimax: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("minimax: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out minimaxResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("minimax: decode response: %w", err)
	}
	if out.BaseResp.StatusCode != 0 {
		return nil, fmt.Errorf("minimax: synthesis failed: %s", out.BaseResp.StatusMsg)
	}
	if out.Data.Audio == "" {
		return nil, errors.New("minimax: response carries no audio")
	}
	audio, err := hex.DecodeString(out.Data.Audio)
	if err != nil {
		return nil, fmt.Errorf("minimax: decode audio hex: %w", err)
	}
	return audio, nil
}
