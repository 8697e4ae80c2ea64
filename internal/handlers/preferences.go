package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/vetrina-app/vetrina-backend/internal/middleware"
  "github.com/vetrina-app/vetrina-backend/internal/services"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

type PreferencesHandler struct {
  preferencesService services.PreferencesService
}

func NewPreferencesHandler(preferencesService services.PreferencesService) *PreferencesHandler {
  return &PreferencesHandler{preferencesService: preferencesService}
}

func (prh *PreferencesHandler) GetPreferences(c *gin.Context) {
  userID, ok := middleware.UserID(c)
  if !ok {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }

  preference, err := prh.preferencesService.Get(c.Request.Context(), userID)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"preferences": preference})
}

func (prh *PreferencesHandler) PutPreferences(c *gin.Context) {
  userID, ok := middleware.UserID(c)
  if !ok {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }

  var body types.UserPreference
  if err := c.ShouldBindJSON(&body); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  body.UserID = userID

  saved, err := prh.preferencesService.Upsert(c.Request.Context(), &body)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"preferences": saved})
}

func (prh *PreferencesHandler) PatchPreferences(c *gin.Context) {
  userID, ok := middleware.UserID(c)
  if !ok {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }

  var patch services.PreferencePatch
  if err := c.ShouldBindJSON(&patch); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }

  saved, err := prh.preferencesService.Patch(c.Request.Context(), userID, patch)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"preferences": saved})
}
