package env

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MinterTeam/restaking-explorer/latency"
)

// New builds the environment from flags. Environment variables fill flags that
// were not passed, a config file overrides both.
func New(args []string) (*ExplorerEnvironment, error) {
	fs := flag.NewFlagSet("explorer", flag.ContinueOnError)
	appName := fs.String("app_name", "Restaking Explorer", "App name")
	debug := fs.Bool("debug", false, "Debug mode")
	apiHost := fs.String("api_host", "", "API host")
	apiPort := fs.Int("api_port", 8000, "API port")
	baseDelayMs := fs.Int("base_delay_ms", int(latency.DefaultBase/time.Millisecond), "Simulated latency base, ms")
	jitterMs := fs.Int("jitter_ms", int(latency.DefaultJitter/time.Millisecond), "Simulated latency jitter, ms")
	wsLink := fs.String("ws_link", "", "Centrifugo API link")
	wsKey := fs.String("ws_key", "", "Centrifugo API key")
	overviewInterval := fs.Int("overview_interval", 30, "Overview broadcast interval, seconds")
	configFile := fs.String("config", "", "Config file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	passed := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { passed[f.Name] = true })

	for flagName, key := range map[string]string{
		"app_name":          "EXPLORER_APP_NAME",
		"debug":             "EXPLORER_DEBUG",
		"api_host":          "EXPLORER_API_HOST",
		"api_port":          "EXPLORER_API_PORT",
		"base_delay_ms":     "EXPLORER_BASE_DELAY_MS",
		"jitter_ms":         "EXPLORER_JITTER_MS",
		"ws_link":           "CENTRIFUGO_LINK",
		"ws_key":            "CENTRIFUGO_KEY",
		"overview_interval": "EXPLORER_OVERVIEW_INTERVAL",
	} {
		value, ok := os.LookupEnv(key)
		if !ok || passed[flagName] {
			continue
		}
		if err := fs.Set(flagName, value); err != nil {
			return nil, fmt.Errorf("env %s: %w", key, err)
		}
	}

	envData := &ExplorerEnvironment{
		AppName:          *appName,
		Debug:            *debug,
		ApiHost:          *apiHost,
		ApiPort:          *apiPort,
		BaseDelay:        time.Duration(*baseDelayMs) * time.Millisecond,
		Jitter:           time.Duration(*jitterMs) * time.Millisecond,
		WsLink:           *wsLink,
		WsKey:            *wsKey,
		OverviewInterval: time.Duration(*overviewInterval) * time.Second,
	}

	if *configFile != "" {
		config, err := NewViperConfig(*configFile)
		if err != nil {
			return nil, err
		}
		applyConfig(envData, config)
	}

	return envData, nil
}

func applyConfig(envData *ExplorerEnvironment, config Config) {
	if config.IsSet("name") {
		envData.AppName = config.GetString("name")
	}
	if config.IsSet("app.debug") {
		envData.Debug = config.GetBool("app.debug")
	}
	if config.IsSet("explorerApi.host") {
		envData.ApiHost = config.GetString("explorerApi.host")
	}
	if config.IsSet("explorerApi.port") {
		envData.ApiPort = config.GetInt("explorerApi.port")
	}
	if config.IsSet("latency.baseMs") {
		envData.BaseDelay = time.Duration(config.GetInt("latency.baseMs")) * time.Millisecond
	}
	if config.IsSet("latency.jitterMs") {
		envData.Jitter = time.Duration(config.GetInt("latency.jitterMs")) * time.Millisecond
	}
	if config.IsSet("centrifugo.link") {
		envData.WsLink = config.GetString("centrifugo.link")
	}
	if config.IsSet("centrifugo.key") {
		envData.WsKey = config.GetString("centrifugo.key")
	}
	if config.IsSet("workers.overviewInterval") {
		envData.OverviewInterval = time.Duration(config.GetInt("workers.overviewInterval")) * time.Second
	}
}
