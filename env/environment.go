package env

import (
	"strconv"
	"time"
)

type ExplorerEnvironment struct {
	AppName          string
	Debug            bool
	ApiHost          string
	ApiPort          int
	BaseDelay        time.Duration
	Jitter           time.Duration
	WsLink           string
	WsKey            string
	OverviewInterval time.Duration
}

// BroadcastEnabled reports whether overview snapshots should be pushed to Centrifugo
func (e *ExplorerEnvironment) BroadcastEnabled() bool {
	return e.WsLink != "" && e.OverviewInterval > 0
}

// ApiLink renders the listen address
func (e *ExplorerEnvironment) ApiLink() string {
	return e.ApiHost + ":" + strconv.Itoa(e.ApiPort)
}
