package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/vetrina-app/vetrina-backend/internal/middleware"
  "github.com/vetrina-app/vetrina-backend/internal/services"
)

type ChatPreferenceHandler struct {
  chatPreferenceService services.ChatPreferenceService
}

func NewChatPreferenceHandler(chatPreferenceService services.ChatPreferenceService) *ChatPreferenceHandler {
  return &ChatPreferenceHandler{chatPreferenceService: chatPreferenceService}
}

// IngestFilters folds chat-extracted preference filters into the user's
// preference mirror. Extraction happens upstream; this endpoint takes the
// structured result.
func (ch *ChatPreferenceHandler) IngestFilters(c *gin.Context) {
  userID, ok := middleware.UserID(c)
  if !ok {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }

  var filters services.ChatFilters
  if err := c.ShouldBindJSON(&filters); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }

  if err := ch.chatPreferenceService.IngestChatFilters(c.Request.Context(), userID, filters); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusAccepted, gin.H{"status": "ingested"})
}
