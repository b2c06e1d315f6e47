package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sherpa/internal/models/request_models"
	"sherpa/internal/services"
	"sherpa/pkg/utils"
)

type MapController struct {
	pinService     services.PinServiceInterface
	exportService  services.ExportServiceInterface
	mapViewService services.MapViewServiceInterface
}

func NewMapController(
	pinService services.PinServiceInterface,
	exportService services.ExportServiceInterface,
	mapViewService services.MapViewServiceInterface,
) *MapController {
	return &MapController{
		pinService:     pinService,
		exportService:  exportService,
		mapViewService: mapViewService,
	}
}

func (mc *MapController) GetPins(c *gin.Context) {
	var req request_models.MapPinsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary and destination city are required")
		return
	}

	pins, err := mc.pinService.MapItinerary(c.Request.Context(), req.Itinerary, req.DestCity)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"pins": pins}, "Pins resolved successfully")
}

func (mc *MapController) ExportKML(c *gin.Context) {
	var req request_models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "City and pins are required")
		return
	}

	kml := mc.exportService.ToKML(req.Pins, req.City)
	c.Header("Content-Disposition", `attachment; filename="`+req.City+` Itinerary.kml"`)
	c.Data(http.StatusOK, "application/vnd.google-earth.kml+xml", []byte(kml))
}

func (mc *MapController) ExportCSV(c *gin.Context) {
	var req request_models.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "City and pins are required")
		return
	}

	csv := mc.exportService.ToCSV(req.Pins)
	c.Header("Content-Disposition", `attachment; filename="`+req.City+` Itinerary.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(csv))
}

func (mc *MapController) GetRegion(c *gin.Context) {
	var req request_models.RegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Pins are required")
		return
	}

	visible := mc.mapViewService.FilterByCategory(req.Pins, req.Category)
	region, ok := mc.mapViewService.BoundingRegion(visible)

	resp := gin.H{
		"counts": mc.mapViewService.CategoryCounts(req.Pins),
		"mapped": ok,
	}
	if ok {
		resp["region"] = region
	}
	utils.RespondSuccess(c, resp, "Region computed successfully")
}
