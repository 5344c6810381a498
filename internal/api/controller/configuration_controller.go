package controller

import (
	"net/http"

	"github.com/bassista/go_unis/internal/config"
	"github.com/gin-gonic/gin"
)

// ConfigurationResponse is the non-secret part of the configuration.
type ConfigurationResponse struct {
	APIBaseURL string `json:"apiBaseUrl"`
	Country    string `json:"country"`
	Connected  bool   `json:"connected"`
}

// Connectivity reports the current network state.
type Connectivity interface {
	IsConnected() bool
}

// ConfigurationController handles GET /configuration.
type ConfigurationController struct {
	config       *config.Config
	connectivity Connectivity
}

func NewConfigurationController(cfg *config.Config, connectivity Connectivity) *ConfigurationController {
	return &ConfigurationController{config: cfg, connectivity: connectivity}
}

func (cc *ConfigurationController) GetConfiguration(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigurationResponse{
		APIBaseURL: cc.config.API.Scheme + "://" + cc.config.API.Host,
		Country:    cc.config.API.Country,
		Connected:  cc.connectivity != nil && cc.connectivity.IsConnected(),
	})
}
