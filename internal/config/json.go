package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Once bool `json:"once"`
	} `json:"app,omitempty"`

	Adapter struct {
		WSAddress        string   `json:"ws_address"`
		HandshakeTimeout Duration `json:"handshake_timeout"`
		WriteTimeout     Duration `json:"write_timeout"`
		MaxMessageSize   int64    `json:"max_message_size"`
	} `json:"adapter,omitempty"`

	Sync struct {
		Org               string   `json:"org"`
		ViewID            string   `json:"view_id"`
		InvalidationDelay Duration `json:"invalidation_delay"`
	} `json:"sync,omitempty"`
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
		App: App{Once: jsonCfg.App.Once},
		Adapter: Adapter{
			WSAddress:        jsonCfg.Adapter.WSAddress,
			HandshakeTimeout: time.Duration(jsonCfg.Adapter.HandshakeTimeout),
			WriteTimeout:     time.Duration(jsonCfg.Adapter.WriteTimeout),
			MaxMessageSize:   jsonCfg.Adapter.MaxMessageSize,
		},
		Sync: Sync{
			Org:               jsonCfg.Sync.Org,
			ViewID:            jsonCfg.Sync.ViewID,
			InvalidationDelay: time.Duration(jsonCfg.Sync.InvalidationDelay),
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
