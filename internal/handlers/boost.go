package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/vetrina-app/vetrina-backend/internal/middleware"
  "github.com/vetrina-app/vetrina-backend/internal/services"
)

type BoostHandler struct {
  boostService services.BoostService
}

func NewBoostHandler(boostService services.BoostService) *BoostHandler {
  return &BoostHandler{boostService: boostService}
}

type boostRequest struct {
  Items   []services.ItemCandidate   `json:"items"`
  Modules []services.ModuleCandidate `json:"modules"`
  Stories []services.StoryCandidate  `json:"stories"`
}

// Boost re-ranks whichever candidate lists the caller supplied.
func (bh *BoostHandler) Boost(c *gin.Context) {
  userID, ok := middleware.UserID(c)
  if !ok {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }

  var req boostRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }

  out := gin.H{}
  if req.Items != nil {
    out["items"] = bh.boostService.BoostItemsForUser(c.Request.Context(), userID, req.Items)
  }
  if req.Modules != nil {
    out["modules"] = bh.boostService.BoostModulesForUser(c.Request.Context(), userID, req.Modules)
  }
  if req.Stories != nil {
    out["stories"] = bh.boostService.RankStoriesForUser(c.Request.Context(), userID, req.Stories)
  }
  c.JSON(http.StatusOK, out)
}
