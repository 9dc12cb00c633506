package opts

import (
	"github.com/walteh/stagesync/pkg/config"
	"github.com/walteh/stagesync/pkg/log"
	"github.com/walteh/stagesync/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	Reporter   *status.Manager
	UserLogger *log.UserLogger
}
