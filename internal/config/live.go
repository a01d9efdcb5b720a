package config

import "strings"

// Live game sources.
const (
	LiveSourceLocal = "local"
	LiveSourceAWS   = "aws"
	LiveSourceOff   = "off"
)

// LiveConfig points at the live game JSON files.
type LiveConfig struct {
	Source string
	Dir    string
	Bucket string
	Prefix string
	Region string
}

func loadLive() LiveConfig {
	source := strings.ToLower(strings.TrimSpace(envOrDefault(envLiveSource, defaultLiveSource)))
	switch source {
	case LiveSourceLocal, LiveSourceAWS, LiveSourceOff:
	default:
		source = defaultLiveSource
	}
	return LiveConfig{
		Source: source,
		Dir:    envOrDefault(envLiveDir, defaultLiveDir),
		Bucket: envOrDefault(envLiveBucket, defaultLiveBucket),
		Prefix: envOrDefault(envLivePrefix, defaultLivePrefix),
		Region: envOrDefault(envAWSRegion, defaultAWSRegion),
	}
}
