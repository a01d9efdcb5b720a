package statsapi

import "time"

const (
	providerName       = "statsapi"
	defaultBaseURL     = "http://localhost:5000"
	defaultHTTPTimeout = 15 * time.Second
	maxErrorBody       = 512
	userAgent          = "nba-insights-service"

	pathDataset = "/dataset"
	pathPlayers = "/players"
	pathImages  = "/get_images"
)
