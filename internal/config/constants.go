// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "vocab-galaxy"
	AppVersion = "0.4.0"
)

// デフォルト設定値
const (
	DefaultServerPort      = ":8080"
	DefaultLogLevel        = "info"
	DefaultAuthEnabled     = false
	DefaultShutdownTimeout = 5 * time.Second
	DefaultRequestTimeout  = 60 * time.Second

	DefaultDeepLURL         = "https://api-free.deepl.com/v2/translate"
	DefaultDeepLTimeout     = 10 * time.Second
	DefaultTranslationLimit = 10 // DeepL呼び出し回数 / rate_window
	DefaultTranslationWin   = time.Minute
	DefaultPersistTimeout   = 5 * time.Second
	DefaultResolveTimeout   = 30 * time.Second

	DefaultDictionaryPath = "data/frwiktionary.jsonl"

	DefaultLLMModel        = "claude-3-5-haiku-latest"
	DefaultLLMMaxTokens    = 256
	DefaultLLMTemperature  = 0.3
	DefaultLLMTimeout      = 30 * time.Second
	DefaultLLMMonthlyQuota = 50
	DefaultLLMRetryBackoff = 2 * time.Second

	DefaultSpeechBaseURL  = "https://api.groq.com/openai/v1"
	DefaultSpeechModel    = "whisper-large-v3-turbo"
	DefaultSpeechLanguage = "fr"
	DefaultSpeechTimeout  = 30 * time.Second
)
