// Package logging configures the zap logger shared by the commands.
package logging

import (
	"go.uber.org/zap"
)

// Logger is the most recently configured logger.
var Logger *zap.Logger = zap.NewNop()

// Setup builds a production logger, or a development logger when debug is
// set, tagged with the application name and version. On failure Logger falls
// back to zap's example logger and the error is returned.
func Setup(debug bool, appName, appVersion string) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		Logger = zap.NewExample()
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(Logger)
	return nil
}
