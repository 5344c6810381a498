package route

import (
	"github.com/bassista/go_unis/internal/api/controller"
	"github.com/bassista/go_unis/internal/app"
	"github.com/gin-gonic/gin"
)

// NewConfigurationRouter sets up configuration-related routes.
func NewConfigurationRouter(appCtx *app.App, group *gin.RouterGroup) {
	cc := controller.NewConfigurationController(appCtx.Config, appCtx.Monitor)

	group.GET("configuration", cc.GetConfiguration)
}
