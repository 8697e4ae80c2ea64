package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/vetrina-app/vetrina-backend/internal/middleware"
  "github.com/vetrina-app/vetrina-backend/internal/services"
)

type VersionHandler struct {
  versionService services.ProfileVersionService
}

func NewVersionHandler(versionService services.ProfileVersionService) *VersionHandler {
  return &VersionHandler{versionService: versionService}
}

func (vh *VersionHandler) CreateVersion(c *gin.Context) {
  userID, ok := middleware.UserID(c)
  if !ok {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }

  version, err := vh.versionService.Snapshot(c.Request.Context(), userID)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusCreated, gin.H{"version": version})
}

func (vh *VersionHandler) ListVersions(c *gin.Context) {
  userID, ok := middleware.UserID(c)
  if !ok {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }

  versions, err := vh.versionService.ListVersions(c.Request.Context(), userID, 0)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  c.JSON(http.StatusOK, gin.H{"versions": versions})
}

func (vh *VersionHandler) RestoreVersion(c *gin.Context) {
  userID, ok := middleware.UserID(c)
  if !ok {
    c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
    return
  }

  versionID, err := uuid.Parse(c.Param("id"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid version id"})
    return
  }

  version, err := vh.versionService.RestoreVersion(c.Request.Context(), userID, versionID, &userID)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
    return
  }
  if version == nil {
    c.JSON(http.StatusNotFound, gin.H{"error": "version not found"})
    return
  }
  c.JSON(http.StatusOK, gin.H{"restored": version})
}
