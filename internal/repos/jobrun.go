package repos

import (
  "context"
  "errors"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/datatypes"
  "github.com/vetrina-app/vetrina-backend/internal/apperr"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

type JobRunRepo interface {
  Start(ctx context.Context, tx *gorm.DB, jobName string) (*types.JobRun, error)
  Complete(ctx context.Context, tx *gorm.DB, runID uuid.UUID, detail datatypes.JSON) error
  Fail(ctx context.Context, tx *gorm.DB, runID uuid.UUID, detail datatypes.JSON) error
  // LastCompleted returns apperr.ErrNotFound when the job has never
  // completed successfully.
  LastCompleted(ctx context.Context, tx *gorm.DB, jobName string) (*types.JobRun, error)
}

type jobRunRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewJobRunRepo(db *gorm.DB, baseLog *logger.Logger) JobRunRepo {
  repoLog := baseLog.With("repo", "JobRunRepo")
  return &jobRunRepo{db: db, log: repoLog}
}

func (r *jobRunRepo) Start(ctx context.Context, tx *gorm.DB, jobName string) (*types.JobRun, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  run := &types.JobRun{
    JobName:   jobName,
    Status:    types.JobRunStatusRunning,
    StartedAt: time.Now().UTC(),
  }
  if err := transaction.WithContext(ctx).Create(run).Error; err != nil {
    return nil, err
  }
  return run, nil
}

func (r *jobRunRepo) finish(ctx context.Context, tx *gorm.DB, runID uuid.UUID, status string, detail datatypes.JSON) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  now := time.Now().UTC()
  return transaction.WithContext(ctx).
    Model(&types.JobRun{}).
    Where("id = ?", runID).
    Updates(map[string]interface{}{
      "status":       status,
      "detail":       detail,
      "completed_at": &now,
    }).Error
}

func (r *jobRunRepo) Complete(ctx context.Context, tx *gorm.DB, runID uuid.UUID, detail datatypes.JSON) error {
  return r.finish(ctx, tx, runID, types.JobRunStatusCompleted, detail)
}

func (r *jobRunRepo) Fail(ctx context.Context, tx *gorm.DB, runID uuid.UUID, detail datatypes.JSON) error {
  return r.finish(ctx, tx, runID, types.JobRunStatusFailed, detail)
}

func (r *jobRunRepo) LastCompleted(ctx context.Context, tx *gorm.DB, jobName string) (*types.JobRun, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }

  var run types.JobRun
  err := transaction.WithContext(ctx).
    Where("job_name = ? AND status = ?", jobName, types.JobRunStatusCompleted).
    Order("completed_at DESC").
    First(&run).Error
  if err != nil {
    if errors.Is(err, gorm.ErrRecordNotFound) {
      return nil, apperr.ErrNotFound
    }
    return nil, err
  }
  return &run, nil
}
