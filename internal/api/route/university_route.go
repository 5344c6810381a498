package route

import (
	"github.com/bassista/go_unis/internal/api/controller"
	"github.com/bassista/go_unis/internal/api/middleware"
	"github.com/bassista/go_unis/internal/app"
	"github.com/gin-gonic/gin"
)

func NewUniversityRouter(appCtx *app.App, group *gin.RouterGroup) {
	uc := controller.NewUniversityController(appCtx.BaseCtx, appCtx.List, appCtx.Cache, appCtx.Store)
	timeoutMiddleware := middleware.RequestTimeout(appCtx.Config.Server.RequestTimeout)

	group.GET("universities", timeoutMiddleware, uc.AllUniversities)
	group.POST("universities/refresh", timeoutMiddleware, uc.Refresh)
	group.GET("universities/state", uc.State)
	group.GET("universities/:id", timeoutMiddleware, uc.GetUniversity)
}
