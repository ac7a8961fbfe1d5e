package boot

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is everything the client needs from the environment.
type Config struct {
	APIBaseURL       string        `mapstructure:"api_base_url"`
	UploadLimitBytes int64         `mapstructure:"upload_limit_bytes"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
	PageSize         int           `mapstructure:"page_size"`
}

// Load reads <dir>/<env>.yaml and lets SITE_* environment variables
// override it. Missing file is fine; defaults cover everything.
func Load(dir, env string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("api_base_url", "http://localhost:8080/api")
	v.SetDefault("upload_limit_bytes", int64(20<<20))
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("page_size", 20)

	v.SetEnvPrefix("SITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
