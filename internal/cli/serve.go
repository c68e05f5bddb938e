package cli

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/tonicworks/chordbase-api/internal/api"
	"github.com/tonicworks/chordbase-api/internal/logger"
)

func serveCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the collection over HTTP",
		RunE: func(_ *cobra.Command, _ []string) error {
			if app.Cfg.IsProduction() {
				gin.SetMode(gin.ReleaseMode)
			}

			router := api.SetupRouter(app.Collection, app.Analyzer, app.Engine, app.Metrics, app.Cfg, app.Version)

			logger.Info("Starting server", logger.Fields{
				"port":        app.Cfg.Port,
				"environment": app.Cfg.Environment,
				"auth_mode":   app.Cfg.AuthMode,
			})
			return router.Run(":" + app.Cfg.Port)
		},
	}
}
