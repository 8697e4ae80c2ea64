package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/vetrina-app/vetrina-backend/internal/middleware"
  "github.com/vetrina-app/vetrina-backend/internal/scoring"
  "github.com/vetrina-app/vetrina-backend/internal/services"
)

type ProfileHandler struct {
  profileService services.StyleProfileService
}

func NewProfileHandler(profileService services.StyleProfileService) *ProfileHandler {
  return &ProfileHandler{profileService: profileService}
}

type ingestEventRequest struct {
  EventType  string `json:"event_type" binding:"required"`
  SourceType string `json:"source_type" binding:"required"`
  SourceID   string `json:"source_id"`
}

// IngestEvent accepts an interaction event. Ingestion is fire-and-forget:
// merge failures are logged downstream and the caller still gets a 202.
func (ph *ProfileHandler) IngestEvent(c *gin.Context) {
  userID, ok := middleware.UserID(c)
  if !ok {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }

  var req ingestEventRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }

  sourceID := uuid.Nil
  if req.SourceID != "" {
    parsed, err := uuid.Parse(req.SourceID)
    if err != nil {
      c.JSON(http.StatusBadRequest, gin.H{"error": "invalid source_id"})
      return
    }
    sourceID = parsed
  }

  profile := ph.profileService.UpdateProfile(
    c.Request.Context(),
    userID,
    scoring.EventType(req.EventType),
    scoring.SourceType(req.SourceType),
    sourceID,
  )
  c.JSON(http.StatusAccepted, gin.H{"profile": profile})
}

func (ph *ProfileHandler) GetProfile(c *gin.Context) {
  userID, ok := middleware.UserID(c)
  if !ok {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }

  profile, err := ph.profileService.GetOrCreateProfile(c.Request.Context(), userID)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"profile": profile})
}

func (ph *ProfileHandler) GetTopPreferences(c *gin.Context) {
  userID, ok := middleware.UserID(c)
  if !ok {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }

  prefs, err := ph.profileService.GetTopPreferences(c.Request.Context(), userID)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"top_preferences": prefs})
}

func (ph *ProfileHandler) CreateSnapshot(c *gin.Context) {
  userID, ok := middleware.UserID(c)
  if !ok {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }

  snapshot, err := ph.profileService.CreateSnapshot(c.Request.Context(), userID, "")
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusCreated, gin.H{"snapshot": snapshot})
}
