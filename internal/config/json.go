package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Telegram struct {
		Token         string  `json:"token"`
		WebhookURL    string  `json:"webhook_url"`
		WebhookSecret string  `json:"webhook_secret"`
		AdminChatIDs  []int64 `json:"admin_chat_ids"`
	} `json:"telegram,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Cache struct {
		DefaultTTL      Duration `json:"default_ttl"`
		CleanupInterval Duration `json:"cleanup_interval"`
	} `json:"cache,omitempty"`

	Geo struct {
		BaseURL string   `json:"base_url"`
		Timeout Duration `json:"timeout"`
	} `json:"geo,omitempty"`
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

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Telegram: Telegram{
			Token:         jsonCfg.Telegram.Token,
			WebhookURL:    jsonCfg.Telegram.WebhookURL,
			WebhookSecret: jsonCfg.Telegram.WebhookSecret,
			AdminChatIDs:  jsonCfg.Telegram.AdminChatIDs,
		},
		Storage: Storage{
			DB: DBConfig{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Cache: Cache{
			DefaultTTL:      time.Duration(jsonCfg.Cache.DefaultTTL),
			CleanupInterval: time.Duration(jsonCfg.Cache.CleanupInterval),
		},
		Geo: Geo{
			BaseURL: jsonCfg.Geo.BaseURL,
			Timeout: time.Duration(jsonCfg.Geo.Timeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
