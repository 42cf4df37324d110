package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Remote struct {
		BaseURL        string   `json:"base_url"`
		WatchURL       string   `json:"watch_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"remote,omitempty"`

	Storage struct {
		DSN       string `json:"dsn"`
		BackupDir string `json:"backup_dir"`
	} `json:"storage,omitempty"`

	Sync struct {
		StoreSwitchDebounce  Duration `json:"store_switch_debounce"`
		RealtimeDebounce     Duration `json:"realtime_debounce"`
		EventDebounce        Duration `json:"event_debounce"`
		RetryAttempts        int      `json:"retry_attempts"`
		RetryBaseDelay       Duration `json:"retry_base_delay"`
		PullRetryDelay       Duration `json:"pull_retry_delay"`
		StatusSuccessDisplay Duration `json:"status_success_display"`
		StatusFailureDisplay Duration `json:"status_failure_display"`
		JobInterval          Duration `json:"job_interval"`
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
		Remote: Remote{
			BaseURL:        jsonCfg.Remote.BaseURL,
			WatchURL:       jsonCfg.Remote.WatchURL,
			RequestTimeout: time.Duration(jsonCfg.Remote.RequestTimeout),
		},
		Storage: Storage{
			DSN:       jsonCfg.Storage.DSN,
			BackupDir: jsonCfg.Storage.BackupDir,
		},
		Sync: Sync{
			StoreSwitchDebounce:  time.Duration(jsonCfg.Sync.StoreSwitchDebounce),
			RealtimeDebounce:     time.Duration(jsonCfg.Sync.RealtimeDebounce),
			EventDebounce:        time.Duration(jsonCfg.Sync.EventDebounce),
			RetryAttempts:        jsonCfg.Sync.RetryAttempts,
			RetryBaseDelay:       time.Duration(jsonCfg.Sync.RetryBaseDelay),
			PullRetryDelay:       time.Duration(jsonCfg.Sync.PullRetryDelay),
			StatusSuccessDisplay: time.Duration(jsonCfg.Sync.StatusSuccessDisplay),
			StatusFailureDisplay: time.Duration(jsonCfg.Sync.StatusFailureDisplay),
			JobInterval:          time.Duration(jsonCfg.Sync.JobInterval),
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
