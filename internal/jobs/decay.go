package jobs

import (
  "context"
  "encoding/json"
  "time"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/repos"
  "github.com/vetrina-app/vetrina-backend/internal/scoring"
  "github.com/vetrina-app/vetrina-backend/internal/services"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

const (
  // DecayJobName keys the job-run ledger rows.
  DecayJobName = "weekly_decay"

  // decayAdvisoryLockKey serializes runs across processes via postgres.
  decayAdvisoryLockKey = 7431002

  // minDecayInterval guards against double-application inside one period.
  // Slightly under a week so a drifting schedule still fires.
  minDecayInterval = 6 * 24 * time.Hour

  decayBatchSize = 500
)

// DecayJob is the weekly attenuation batch: snapshot every profile, then
// multiply every layer score by the decay factor. Per-profile failures are
// logged and skipped; the job itself only fails on setup errors.
type DecayJob struct {
  db          *gorm.DB
  profileRepo repos.StyleProfileRepo
  profiles    services.StyleProfileService
  jobRunRepo  repos.JobRunRepo
  log         *logger.Logger

  // runExclusive wraps one pass in the cross-process advisory lock. Tests
  // substitute a pass-through.
  runExclusive func(ctx context.Context, fn func() error) error
}

func NewDecayJob(
  db *gorm.DB,
  profileRepo repos.StyleProfileRepo,
  profiles services.StyleProfileService,
  jobRunRepo repos.JobRunRepo,
  baseLog *logger.Logger,
) *DecayJob {
  j := &DecayJob{
    db:          db,
    profileRepo: profileRepo,
    profiles:    profiles,
    jobRunRepo:  jobRunRepo,
    log:         baseLog.With("job", DecayJobName),
  }
  j.runExclusive = j.advisoryExclusive
  return j
}

// advisoryExclusive runs fn while holding the postgres advisory lock. The
// lock is session-scoped, so the whole pass is pinned to one connection. If
// another process holds the lock the pass is skipped.
func (j *DecayJob) advisoryExclusive(ctx context.Context, fn func() error) error {
  return j.db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
    var locked bool
    if err := conn.Raw("SELECT pg_try_advisory_lock(?)", decayAdvisoryLockKey).Scan(&locked).Error; err != nil {
      return err
    }
    if !locked {
      j.log.Info("decay already running elsewhere, skipping")
      return nil
    }
    defer func() {
      if err := conn.Exec("SELECT pg_advisory_unlock(?)", decayAdvisoryLockKey).Error; err != nil {
        j.log.Error("advisory unlock failed", "error", err)
      }
    }()
    return fn()
  })
}

// Run executes one guarded decay pass. Safe to call from any number of
// schedulers: the advisory lock serializes concurrent attempts and the
// run-marker guard makes a second attempt inside the period a no-op.
func (j *DecayJob) Run(ctx context.Context) error {
  return j.runExclusive(ctx, func() error {
    return j.runLocked(ctx)
  })
}

func (j *DecayJob) runLocked(ctx context.Context) error {
  if last, err := j.jobRunRepo.LastCompleted(ctx, nil, DecayJobName); err == nil &&
    withinDecayPeriod(last.CompletedAt, time.Now().UTC()) {
    j.log.Info("decay already applied this period, skipping",
      "last_completed_at", last.CompletedAt)
    return nil
  }

  run, err := j.jobRunRepo.Start(ctx, nil, DecayJobName)
  if err != nil {
    return err
  }

  decayed, failed := j.decayAll(ctx)

  detail, _ := json.Marshal(map[string]interface{}{
    "profiles_decayed": decayed,
    "profiles_failed":  failed,
    "decay_factor":     scoring.DecayFactor,
  })
  if failed > 0 && decayed == 0 {
    return j.jobRunRepo.Fail(ctx, nil, run.ID, datatypes.JSON(detail))
  }
  if err := j.jobRunRepo.Complete(ctx, nil, run.ID, datatypes.JSON(detail)); err != nil {
    return err
  }
  j.log.Info("decay pass finished", "decayed", decayed, "failed", failed)
  return nil
}

func withinDecayPeriod(completedAt *time.Time, now time.Time) bool {
  return completedAt != nil && now.Sub(*completedAt) < minDecayInterval
}

func (j *DecayJob) decayAll(ctx context.Context) (decayed, failed int) {
  offset := 0
  for {
    ids, err := j.profileRepo.ListUserIDs(ctx, nil, offset, decayBatchSize)
    if err != nil {
      j.log.Error("profile page load failed, aborting pass", "offset", offset, "error", err)
      failed++
      return
    }
    if len(ids) == 0 {
      return
    }

    for _, userID := range ids {
      if _, err := j.profiles.CreateSnapshot(ctx, userID, types.SnapshotReasonWeekly); err != nil {
        j.log.Error("weekly snapshot failed, skipping profile", "user_id", userID, "error", err)
        failed++
        continue
      }
      if err := j.profileRepo.ScaleLayers(ctx, userID, scoring.DecayFactor); err != nil {
        j.log.Error("decay failed, skipping profile", "user_id", userID, "error", err)
        failed++
        continue
      }
      decayed++
    }
    offset += len(ids)
  }
}
