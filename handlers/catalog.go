package handlers

import (
	"errors"
	"net/http"

	"rentify/models"
	"rentify/services/catalog"
	"rentify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListCarsHandler returns the merged catalog: normalized feed cars plus
// locally added agency cars.
func (hb *HandlerBundle) ListCarsHandler(c *gin.Context) {
	cars, err := hb.Catalog.ListCars(c.Request.Context())
	if err != nil {
		var unavailable *catalog.CatalogUnavailableError
		if errors.As(err, &unavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": unavailable.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Listing failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"cars": cars})
}

// AddCarHandler persists a locally added car.
func (hb *HandlerBundle) AddCarHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.Car
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid car payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	car, err := hb.Catalog.AddCar(c.Request.Context(), req)
	if err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verrs})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Add car failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, car)
}

// RemoveCarHandler removes a locally added car by id. Feed cars cannot be
// removed; their ids are not in the stored set.
func (hb *HandlerBundle) RemoveCarHandler(c *gin.Context) {
	id := c.Param("id")
	if err := hb.Catalog.RemoveCar(c.Request.Context(), id); err != nil {
		if errors.Is(err, catalog.ErrCarNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Remove car failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
