package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-r remote store base URL
//	-w remote metadata watch (websocket) URL
//	-d local database file path
//	-b backup directory path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval background sync job interval (e.g., "5m")
//	-log-file write logs to a file next to the executable
func ParseFlags() *StructuredConfig {
	var remoteBaseURL string
	var remoteWatchURL string
	var databaseDSN string
	var backupDir string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var logToFile bool

	flag.StringVar(&remoteBaseURL, "r", "", "Remote store base URL")
	flag.StringVar(&remoteWatchURL, "w", "", "Remote metadata watch URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database file path")
	flag.StringVar(&backupDir, "b", "", "Backup directory path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync job interval (e.g., 5m)")
	flag.BoolVar(&logToFile, "log-file", false, "Write logs to a file next to the executable")

	flag.Parse()

	return &StructuredConfig{
		Remote: Remote{
			BaseURL:        remoteBaseURL,
			WatchURL:       remoteWatchURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DSN:       databaseDSN,
			BackupDir: backupDir,
		},
		Sync: Sync{
			JobInterval: syncInterval,
		},
		LogToFile:    logToFile,
		JSONFilePath: jsonConfigPath,
	}
}
