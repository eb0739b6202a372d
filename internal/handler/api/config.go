package api

import (
	"net/http"

	resdto "courtmate-gateway/internal/handler/dto/response"
	"courtmate-gateway/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	maps config.MapsConfig
}

func NewConfigHandler(cfg config.Config) *ConfigHandler {
	return &ConfigHandler{maps: cfg.Maps}
}

// @Summary Runtime configuration for the browser
// @Tags config
// @Produce json
// @Success 200 {object} resdto.ConfigResponse
// @Router /api/config [get]
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.ConfigResponse{GoogleMapsAPIKey: h.maps.GoogleMapsAPIKey})
}
