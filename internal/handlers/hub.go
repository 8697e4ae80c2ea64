package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/vetrina-app/vetrina-backend/internal/middleware"
  "github.com/vetrina-app/vetrina-backend/internal/services"
)

type HubHandler struct {
  hubService services.PersonalizationHubService
}

func NewHubHandler(hubService services.PersonalizationHubService) *HubHandler {
  return &HubHandler{hubService: hubService}
}

func (hh *HubHandler) GetHub(c *gin.Context) {
  userID, ok := middleware.UserID(c)
  if !ok {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }

  hub, err := hh.hubService.GetHub(c.Request.Context(), userID)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"hub": hub})
}
