package handlers

import (
	"net/http"

	"rentify/middleware"
	"rentify/utils"

	"github.com/gin-gonic/gin"
)

// AdminStatsHandler returns the marketplace-wide dashboard counters.
func (hb *HandlerBundle) AdminStatsHandler(c *gin.Context) {
	stats, err := hb.Dashboard.AdminStats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Stats failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// UserStatsHandler returns the session user's dashboard view.
func (hb *HandlerBundle) UserStatsHandler(c *gin.Context) {
	identity, ok := middleware.UserIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}

	stats, err := hb.Dashboard.UserStats(c.Request.Context(), identity)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Stats failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// AgencyStatsHandler returns the dashboard view for one agency.
func (hb *HandlerBundle) AgencyStatsHandler(c *gin.Context) {
	agencyID := c.Param("id")

	stats, err := hb.Dashboard.AgencyStats(c.Request.Context(), agencyID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Stats failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
