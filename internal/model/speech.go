package model

// SpeechResult は音声認識の応答です。認識できなかった場合 Text は空。
type SpeechResult struct {
	Text    string `json:"text"`
	Success bool   `json:"success"`
}
