// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL         string `mapstructure:"url"`
		AutoMigrate bool   `mapstructure:"auto_migrate"`
	} `mapstructure:"database"`
	Server struct {
		Port           string        `mapstructure:"port"`
		RequestTimeout time.Duration `mapstructure:"request_timeout"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	JWT struct {
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"jwt"`
	Translation struct {
		DeepLURL       string        `mapstructure:"deepl_url"`
		DeepLAPIKey    string        `mapstructure:"deepl_api_key"`
		Timeout        time.Duration `mapstructure:"timeout"`
		RateLimit      int           `mapstructure:"rate_limit"` // 0 で無効
		RateWindow     time.Duration `mapstructure:"rate_window"`
		PersistTimeout time.Duration `mapstructure:"persist_timeout"`
		ResolveTimeout time.Duration `mapstructure:"resolve_timeout"`
	} `mapstructure:"translation"`
	Dictionary struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"dictionary"`
	LLM struct {
		APIKey       string        `mapstructure:"api_key"`
		BaseURL      string        `mapstructure:"base_url"`
		Model        string        `mapstructure:"model"`
		MaxTokens    int           `mapstructure:"max_tokens"`
		Temperature  float64       `mapstructure:"temperature"`
		Timeout      time.Duration `mapstructure:"timeout"`
		MonthlyQuota int           `mapstructure:"monthly_quota"`
		RetryBackoff time.Duration `mapstructure:"retry_backoff"`
	} `mapstructure:"llm"`
	Speech struct {
		APIKey   string        `mapstructure:"api_key"`
		BaseURL  string        `mapstructure:"base_url"`
		Model    string        `mapstructure:"model"`
		Language string        `mapstructure:"language"`
		Timeout  time.Duration `mapstructure:"timeout"`
	} `mapstructure:"speech"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP") // 例: APP_LOG_LEVEL
	viper.AutomaticEnv()
	// 秘密情報は接頭辞なしの環境変数でも受け付ける
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET")
	viper.BindEnv("translation.deepl_api_key", "DEEPL_API_KEY")
	viper.BindEnv("llm.api_key", "ANTHROPIC_API_KEY")
	viper.BindEnv("speech.api_key", "GROQ_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	applyDefaults(&Cfg)

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	log.Printf("Translation rate limit: %d per %s", Cfg.Translation.RateLimit, Cfg.Translation.RateWindow)
	log.Printf("LLM monthly quota: %d", Cfg.LLM.MonthlyQuota)

	return nil
}

// --- デフォルト値の設定 ---
func applyDefaults(c *Config) {
	if c.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		c.Server.Port = DefaultServerPort
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = DefaultRequestTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if !viper.IsSet("auth.enabled") {
		log.Printf("Auth enabled flag not set, defaulting to %t", DefaultAuthEnabled)
		c.Auth.Enabled = DefaultAuthEnabled
	}
	if c.Auth.Enabled && c.JWT.SecretKey == "" {
		log.Println("Warning: auth is enabled but jwt.secret_key is empty.")
	}

	if c.Translation.DeepLURL == "" {
		c.Translation.DeepLURL = DefaultDeepLURL
	}
	if c.Translation.Timeout <= 0 {
		c.Translation.Timeout = DefaultDeepLTimeout
	}
	if !viper.IsSet("translation.rate_limit") {
		c.Translation.RateLimit = DefaultTranslationLimit
	}
	if c.Translation.RateWindow <= 0 {
		c.Translation.RateWindow = DefaultTranslationWin
	}
	if c.Translation.PersistTimeout <= 0 {
		c.Translation.PersistTimeout = DefaultPersistTimeout
	}
	if c.Translation.ResolveTimeout <= 0 {
		c.Translation.ResolveTimeout = DefaultResolveTimeout
	}
	if c.Dictionary.Path == "" {
		c.Dictionary.Path = DefaultDictionaryPath
	}

	if c.LLM.Model == "" {
		c.LLM.Model = DefaultLLMModel
	}
	if c.LLM.MaxTokens <= 0 {
		c.LLM.MaxTokens = DefaultLLMMaxTokens
	}
	if !viper.IsSet("llm.temperature") {
		c.LLM.Temperature = DefaultLLMTemperature
	}
	if c.LLM.Timeout <= 0 {
		c.LLM.Timeout = DefaultLLMTimeout
	}
	if c.LLM.MonthlyQuota <= 0 {
		c.LLM.MonthlyQuota = DefaultLLMMonthlyQuota
	}
	if c.LLM.RetryBackoff <= 0 {
		c.LLM.RetryBackoff = DefaultLLMRetryBackoff
	}

	if c.Speech.BaseURL == "" {
		c.Speech.BaseURL = DefaultSpeechBaseURL
	}
	if c.Speech.Model == "" {
		c.Speech.Model = DefaultSpeechModel
	}
	if c.Speech.Language == "" {
		c.Speech.Language = DefaultSpeechLanguage
	}
	if c.Speech.Timeout <= 0 {
		c.Speech.Timeout = DefaultSpeechTimeout
	}
}
