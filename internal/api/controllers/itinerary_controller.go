package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sherpa/internal/models/request_models"
	"sherpa/internal/models/response_models"
	"sherpa/internal/services"
	"sherpa/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	assistantService services.AssistantServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	assistantService services.AssistantServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		assistantService: assistantService,
	}
}

type parsedItinerary struct {
	Document response_models.ItineraryDocument `json:"document"`
	Days     []response_models.Day             `json:"days"`
	Cost     response_models.CostSummary       `json:"cost"`
}

func (ic *ItineraryController) ParseItinerary(c *gin.Context) {
	var req request_models.ParseItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary text is required")
		return
	}

	doc := ic.itineraryService.Parse(req.Itinerary)
	rows := ic.itineraryService.ParseCost(doc.Sections[response_models.SectionCost])

	utils.RespondSuccess(c, parsedItinerary{
		Document: doc,
		Days:     ic.itineraryService.MergeTransferBlocks(doc),
		Cost:     ic.itineraryService.SelectCostSummary(rows),
	}, "Itinerary parsed successfully")
}

func (ic *ItineraryController) TweakItinerary(c *gin.Context) {
	var req request_models.TweakItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination, itinerary and feedback are required")
		return
	}

	rewritten, err := ic.assistantService.TweakItinerary(c.Request.Context(), req.Destination, req.Itinerary, req.Feedback)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"itinerary": rewritten}, "Itinerary updated")
}
