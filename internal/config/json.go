package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON names
// and string durations.
type StructuredJSONConfig struct {
	App struct {
		Env          string `json:"env"`
		TokenSignKey string `json:"token_sign_key"`
		BcryptCost   int    `json:"bcrypt_cost"`
		FrontendURL  string `json:"frontend_url"`
		Version      string `json:"version"`
	} `json:"app"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		RateLimit      float64  `json:"rate_limit"`
		RateBurst      int      `json:"rate_burst"`
		TrustedProxies []string `json:"trusted_proxies"`
	} `json:"server"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`

	OAuth struct {
		Google jsonOAuthClient `json:"google"`
		Kakao  jsonOAuthClient `json:"kakao"`
	} `json:"oauth"`

	Recaptcha struct {
		ProjectID string  `json:"project_id"`
		SiteKey   string  `json:"site_key"`
		APIKey    string  `json:"api_key"`
		Threshold float64 `json:"threshold"`
	} `json:"recaptcha"`
}

type jsonOAuthClient struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURL  string `json:"redirect_url"`
	Scope        string `json:"scope"`
	AuthURL      string `json:"auth_url"`
	TokenURL     string `json:"token_url"`
	ProfileURL   string `json:"profile_url"`
}

func (c jsonOAuthClient) toConfig() OAuthClient {
	return OAuthClient(c)
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Env:          jsonCfg.App.Env,
			TokenSignKey: jsonCfg.App.TokenSignKey,
			BcryptCost:   jsonCfg.App.BcryptCost,
			FrontendURL:  jsonCfg.App.FrontendURL,
			Version:      jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			RateLimit:      jsonCfg.Server.RateLimit,
			RateBurst:      jsonCfg.Server.RateBurst,
			TrustedProxies: jsonCfg.Server.TrustedProxies,
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		OAuth: OAuth{
			Google: jsonCfg.OAuth.Google.toConfig(),
			Kakao:  jsonCfg.OAuth.Kakao.toConfig(),
		},
		Recaptcha: Recaptcha{
			ProjectID: jsonCfg.Recaptcha.ProjectID,
			SiteKey:   jsonCfg.Recaptcha.SiteKey,
			APIKey:    jsonCfg.Recaptcha.APIKey,
			Threshold: jsonCfg.Recaptcha.Threshold,
		},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
