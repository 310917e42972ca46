package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Env    string
	Server struct {
		Addr       string
		CORSOrigin string
	}
	Database struct {
		URL string
	}
	Auth struct {
		AccessTokenSecret  string
		RefreshTokenSecret string
		AccessExpiryMin    int
		RefreshExpiryMin   int
		SecureCookies      bool
	}
	Storage struct {
		Bucket    string
		KeyPrefix string
		Region    string
		Endpoint  string
		PublicURL string
	}
	AWS struct {
		Profile string
	}
}

// Load reads configuration from environment variables and an optional config file.
func Load() (*Config, error) {
	loadDotEnv()

	v := viper.New()
	v.SetEnvPrefix("VIDTUBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("env", "development")
	v.SetDefault("server.addr", "0.0.0.0:8080")
	v.SetDefault("server.corsorigin", "*")
	v.SetDefault("database.url", "")
	v.SetDefault("auth.accesstokensecret", "")
	v.SetDefault("auth.refreshtokensecret", "")
	v.SetDefault("auth.accessexpirymin", 15)
	v.SetDefault("auth.refreshexpirymin", 10080)
	v.SetDefault("auth.securecookies", true)
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.keyprefix", "vidtube-media")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.publicurl", "")
	v.SetDefault("aws.profile", "")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database url is required")
	}
	if cfg.Auth.AccessTokenSecret == "" {
		return nil, fmt.Errorf("access token secret is required")
	}
	if cfg.Auth.RefreshTokenSecret == "" {
		return nil, fmt.Errorf("refresh token secret is required")
	}

	return &cfg, nil
}

func loadDotEnv() {
	file, err := os.Open(".env")
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.Index(line, "=")
		if idx <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}

		if _, exists := os.LookupEnv(key); !exists {
			_ = os.Setenv(key, value)
		}
	}
}
