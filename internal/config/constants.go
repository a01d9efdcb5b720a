package config

import "time"

const (
	envPort          = "PORT"
	envPollInterval  = "POLL_INTERVAL"
	envProvider      = "PROVIDER"
	envStatsAPIURL   = "STATS_API_BASE_URL"
	envCSVPath       = "CSV_PATH"
	envFallbackCSV   = "FALLBACK_CSV"
	envBBRefSeason   = "BBREF_SEASON"
	envProviderRate  = "PROVIDER_MIN_INTERVAL"
	envProviderTries = "PROVIDER_MAX_ATTEMPTS"
	envMinMinutes    = "MIN_MINUTES"
	envTotalMarker   = "TOTAL_MARKER"
	envInvalidPolicy = "INVALID_MINUTES_POLICY"
	envMatchCutoff   = "MATCH_CUTOFF"
	envMatchFold     = "MATCH_FOLD"
	envLiveSource    = "LIVE_SOURCE"
	envLiveDir       = "LIVE_DIR"
	envLiveBucket    = "LIVE_BUCKET"
	envLivePrefix    = "LIVE_PREFIX"
	envAWSRegion     = "AWS_REGION"
	envTeamsFile     = "TEAMS_FILE"
	envTeamLogoBase  = "TEAM_LOGO_BASE"
	envSnapshotDir   = "SNAPSHOT_DIR"
	envSnapshotKeep  = "SNAPSHOT_RETENTION"
	envAdminToken    = "ADMIN_TOKEN"
	envShotsSource   = "SHOTS_SOURCE"
	envNBAStatsURL   = "NBA_STATS_BASE_URL"
	envShotsSeason   = "SHOTS_SEASON"
	envLogLevel      = "LOG_LEVEL"
	envLogFormat     = "LOG_FORMAT"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Roster data changes at most daily; live files are rewritten every few minutes.
	defaultPollInterval  = 5 * Duration(time.Minute)
	defaultProvider      = "fixture"
	defaultStatsAPIURL   = "http://localhost:5000"
	defaultCSVPath       = "data/nba_per_game.csv"
	defaultBBRefSeason   = 2025
	defaultProviderRate  = Duration(time.Second)
	defaultProviderTries = 3
	defaultMinMinutes    = 5.0
	defaultTotalMarker   = "TOT"
	defaultInvalidPolicy = "drop"
	defaultMatchCutoff   = 0.6
	defaultLiveSource    = "local"
	defaultLiveDir       = "data/live"
	defaultLiveBucket    = "ash-dcsc-project"
	defaultLivePrefix    = "NBA_Live_Data/Current_Matches/"
	defaultAWSRegion     = "us-east-1"
	defaultSnapshotDir   = "data/snapshots"
	defaultSnapshotKeep  = 5
	defaultShotsSource   = "fixture"
	defaultShotsSeason   = "2022-23"
	defaultLogLevel      = "info"
	defaultLogFormat     = "json"
	defaultMetricsPort   = "9090"
	defaultServiceName   = "nba-insights-service"
)
