// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// configuration file. Durations accept both "30m" strings and nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app"`

	Auth struct {
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		PasswordHashCost int      `json:"password_hash_cost"`
	} `json:"auth"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db"`

		Images struct {
			Bucket        string   `json:"bucket"`
			Region        string   `json:"region"`
			Endpoint      string   `json:"endpoint"`
			PublicBaseURL string   `json:"public_base_url"`
			AccessKey     string   `json:"access_key"`
			SecretKey     string   `json:"secret_key"`
			PresignTTL    Duration `json:"presign_ttl"`
		} `json:"images"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`
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

	images := jsonCfg.Storage.Images
	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Auth: Auth{
			TokenSignKey:     jsonCfg.Auth.TokenSignKey,
			TokenIssuer:      jsonCfg.Auth.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.Auth.TokenDuration),
			PasswordHashCost: jsonCfg.Auth.PasswordHashCost,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Images: Images{
				Bucket:        images.Bucket,
				Region:        images.Region,
				Endpoint:      images.Endpoint,
				PublicBaseURL: images.PublicBaseURL,
				AccessKey:     images.AccessKey,
				SecretKey:     images.SecretKey,
				PresignTTL:    time.Duration(images.PresignTTL),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
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
