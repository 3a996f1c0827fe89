package configs

import "time"

// OpenAI configures the completion endpoint behind the script widget. The
// service starts without an APIKey; script requests then fail with a
// configuration error.
type OpenAI struct {
	APIKey  string        `env:"API_KEY"`
	URL     string        `env:"URL" envDefault:"https://api.openai.com/v1/chat/completions"`
	Model   string        `env:"MODEL" envDefault:"gpt-3.5-turbo"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
}
