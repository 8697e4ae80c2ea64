package services

import (
  "context"
  "encoding/json"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/repos"
  "github.com/vetrina-app/vetrina-backend/internal/scoring"
)

// SourceMetadataService resolves the descriptive attributes of an event
// subject. Lookups degrade to zero metadata: a missing or failing subject
// never blocks ingestion, it just removes the metadata-driven signal.
type SourceMetadataService interface {
  Resolve(ctx context.Context, sourceType scoring.SourceType, sourceID uuid.UUID) scoring.SourceMetadata
}

type sourceMetadataService struct {
  influencerRepo repos.InfluencerRepo
  itemRepo       repos.ItemRepo
  log            *logger.Logger
}

func NewSourceMetadataService(influencerRepo repos.InfluencerRepo, itemRepo repos.ItemRepo, baseLog *logger.Logger) SourceMetadataService {
  svcLog := baseLog.With("service", "SourceMetadataService")
  return &sourceMetadataService{influencerRepo: influencerRepo, itemRepo: itemRepo, log: svcLog}
}

func (s *sourceMetadataService) Resolve(ctx context.Context, sourceType scoring.SourceType, sourceID uuid.UUID) scoring.SourceMetadata {
  switch sourceType {
  case scoring.SourceInfluencer:
    influencer, err := s.influencerRepo.GetByID(ctx, nil, sourceID)
    if err != nil {
      s.log.Warn("influencer metadata unresolved", "source_id", sourceID, "error", err)
      return scoring.SourceMetadata{}
    }
    return scoring.SourceMetadata{
      StyleArchetype:         influencer.StyleArchetype,
      CategoryFocus:          influencer.CategoryFocus,
      CommerceReadinessScore: influencer.CommerceReadinessScore,
      PriceTier:              influencer.PriceTier,
    }
  case scoring.SourceProduct:
    item, err := s.itemRepo.GetByID(ctx, nil, sourceID)
    if err != nil {
      s.log.Warn("item metadata unresolved", "source_id", sourceID, "error", err)
      return scoring.SourceMetadata{}
    }
    return scoring.SourceMetadata{
      Category:           item.Category,
      OccasionTag:        item.OccasionTag,
      StyleTags:          decodeStringList(item.StyleTags),
      ColorPalette:       item.ColorPalette,
      PrimaryMaterial:    item.PrimaryMaterial,
      SilhouetteType:     item.SilhouetteType,
      DetailTags:         decodeStringList(item.DetailTags),
      PatternType:        item.PatternType,
      CoverageLevel:      item.CoverageLevel,
      SustainabilityTags: decodeStringList(item.SustainabilityTags),
      SeasonSuitability:  decodeStringList(item.SeasonSuitability),
      PriceTier:          item.PriceTier,
    }
  default:
    // Retailer subjects carry no scored attributes yet.
    return scoring.SourceMetadata{}
  }
}

func decodeStringList(raw datatypes.JSON) []string {
  if len(raw) == 0 {
    return nil
  }
  var out []string
  if err := json.Unmarshal(raw, &out); err != nil {
    return nil
  }
  return out
}
