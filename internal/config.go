package internal

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 int           `env:"PORT,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,required=true"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath        string        `env:"BLUGE_FILEPATH,required=true"`
	BufferSize           int           `env:"BUFFER_SIZE,required=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,required=true"`
	AuthSecret           string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	LimitMessages        *int          `env:"LIMIT_MESSAGES"`
	MaxContentLength     int           `env:"MAX_CONTENT_LENGTH,default=5000"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	CensoredWords        string        `env:"CENSORED_WORDS"`
	SearchLimit          int           `env:"SEARCH_LIMIT,default=50"`
	CorsAllowedOrigins   string        `env:"CORS_ALLOWED_ORIGINS,default=http://localhost:3000"`
}

func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CensoredWordList splits the configured comma-separated dictionary.
func (c Config) CensoredWordList() []string {
	if strings.TrimSpace(c.CensoredWords) == "" {
		return nil
	}
	parts := strings.Split(c.CensoredWords, ",")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if w := strings.TrimSpace(p); w != "" {
			words = append(words, w)
		}
	}
	return words
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
