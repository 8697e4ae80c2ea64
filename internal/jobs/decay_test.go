package jobs

import (
  "context"
  "encoding/json"
  "errors"
  "sync"
  "testing"
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
  "gorm.io/gorm"
  "github.com/vetrina-app/vetrina-backend/internal/apperr"
  "github.com/vetrina-app/vetrina-backend/internal/logger"
  "github.com/vetrina-app/vetrina-backend/internal/scoring"
  "github.com/vetrina-app/vetrina-backend/internal/services"
  "github.com/vetrina-app/vetrina-backend/internal/types"
)

type fakeDecayProfileRepo struct {
  mu      sync.Mutex
  userIDs []uuid.UUID
  scaled  map[uuid.UUID]float64
  failFor map[uuid.UUID]bool
}

func (f *fakeDecayProfileRepo) GetOrCreate(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.StyleProfile, error) {
  return &types.StyleProfile{UserID: userID}, nil
}

func (f *fakeDecayProfileRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.StyleProfile, error) {
  return &types.StyleProfile{UserID: userID}, nil
}

func (f *fakeDecayProfileRepo) ApplyUpdate(ctx context.Context, userID uuid.UUID, update scoring.Update, now time.Time) (*types.StyleProfile, error) {
  return nil, errors.New("not used")
}

func (f *fakeDecayProfileRepo) ScaleLayers(ctx context.Context, userID uuid.UUID, factor float64) error {
  f.mu.Lock()
  defer f.mu.Unlock()
  if f.failFor[userID] {
    return errors.New("scale failed")
  }
  if f.scaled == nil {
    f.scaled = map[uuid.UUID]float64{}
  }
  f.scaled[userID] = factor
  return nil
}

func (f *fakeDecayProfileRepo) ListUserIDs(ctx context.Context, tx *gorm.DB, offset, limit int) ([]uuid.UUID, error) {
  if offset >= len(f.userIDs) {
    return nil, nil
  }
  ids := f.userIDs[offset:]
  if len(ids) > limit {
    ids = ids[:limit]
  }
  return ids, nil
}

type fakeSnapshotService struct {
  services.StyleProfileService

  mu        sync.Mutex
  snapshots map[uuid.UUID]string
  failFor   map[uuid.UUID]bool
}

func (f *fakeSnapshotService) CreateSnapshot(ctx context.Context, userID uuid.UUID, reason string) (*types.StyleProfileSnapshot, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  if f.failFor[userID] {
    return nil, errors.New("snapshot failed")
  }
  if f.snapshots == nil {
    f.snapshots = map[uuid.UUID]string{}
  }
  f.snapshots[userID] = reason
  return &types.StyleProfileSnapshot{UserID: userID, Reason: reason}, nil
}

type fakeJobRunRepo struct {
  mu        sync.Mutex
  last      *types.JobRun
  started   int
  completed []datatypes.JSON
  failed    []datatypes.JSON
}

func (f *fakeJobRunRepo) Start(ctx context.Context, tx *gorm.DB, jobName string) (*types.JobRun, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  f.started++
  return &types.JobRun{
    ID:        uuid.New(),
    JobName:   jobName,
    Status:    types.JobRunStatusRunning,
    StartedAt: time.Now().UTC(),
  }, nil
}

func (f *fakeJobRunRepo) Complete(ctx context.Context, tx *gorm.DB, runID uuid.UUID, detail datatypes.JSON) error {
  f.mu.Lock()
  defer f.mu.Unlock()
  f.completed = append(f.completed, detail)
  return nil
}

func (f *fakeJobRunRepo) Fail(ctx context.Context, tx *gorm.DB, runID uuid.UUID, detail datatypes.JSON) error {
  f.mu.Lock()
  defer f.mu.Unlock()
  f.failed = append(f.failed, detail)
  return nil
}

func (f *fakeJobRunRepo) LastCompleted(ctx context.Context, tx *gorm.DB, jobName string) (*types.JobRun, error) {
  f.mu.Lock()
  defer f.mu.Unlock()
  if f.last == nil {
    return nil, apperr.ErrNotFound
  }
  return f.last, nil
}

func passthroughExclusive(ctx context.Context, fn func() error) error {
  return fn()
}

func testLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("dev")
  if err != nil {
    t.Fatalf("logger: %v", err)
  }
  return log
}

func TestDecayAllSnapshotsThenScales(t *testing.T) {
  users := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
  profileRepo := &fakeDecayProfileRepo{userIDs: users}
  snapshots := &fakeSnapshotService{}
  job := NewDecayJob(nil, profileRepo, snapshots, nil, testLogger(t))

  decayed, failed := job.decayAll(context.Background())
  if decayed != 3 || failed != 0 {
    t.Fatalf("decayed=%d failed=%d, want 3/0", decayed, failed)
  }
  for _, userID := range users {
    if snapshots.snapshots[userID] != types.SnapshotReasonWeekly {
      t.Errorf("user %s snapshot reason = %q, want weekly", userID, snapshots.snapshots[userID])
    }
    if factor := profileRepo.scaled[userID]; factor != scoring.DecayFactor {
      t.Errorf("user %s scaled by %v, want %v", userID, factor, scoring.DecayFactor)
    }
  }
}

func TestDecayAllSkipsFailingProfileAndContinues(t *testing.T) {
  healthy := uuid.New()
  broken := uuid.New()
  profileRepo := &fakeDecayProfileRepo{
    userIDs: []uuid.UUID{broken, healthy},
    failFor: map[uuid.UUID]bool{broken: true},
  }
  snapshots := &fakeSnapshotService{}
  job := NewDecayJob(nil, profileRepo, snapshots, nil, testLogger(t))

  decayed, failed := job.decayAll(context.Background())
  if decayed != 1 || failed != 1 {
    t.Fatalf("decayed=%d failed=%d, want 1/1", decayed, failed)
  }
  if _, ok := profileRepo.scaled[healthy]; !ok {
    t.Error("healthy profile was not decayed")
  }
}

func TestDecayAllSnapshotFailureSkipsScaling(t *testing.T) {
  userID := uuid.New()
  profileRepo := &fakeDecayProfileRepo{userIDs: []uuid.UUID{userID}}
  snapshots := &fakeSnapshotService{failFor: map[uuid.UUID]bool{userID: true}}
  job := NewDecayJob(nil, profileRepo, snapshots, nil, testLogger(t))

  decayed, failed := job.decayAll(context.Background())
  if decayed != 0 || failed != 1 {
    t.Fatalf("decayed=%d failed=%d, want 0/1", decayed, failed)
  }
  if _, ok := profileRepo.scaled[userID]; ok {
    t.Error("profile must not decay when its snapshot failed")
  }
}

func TestRunSkipsWhenAlreadyAppliedThisPeriod(t *testing.T) {
  userID := uuid.New()
  profileRepo := &fakeDecayProfileRepo{userIDs: []uuid.UUID{userID}}
  snapshots := &fakeSnapshotService{}
  yesterday := time.Now().UTC().Add(-24 * time.Hour)
  runs := &fakeJobRunRepo{last: &types.JobRun{
    JobName:     DecayJobName,
    Status:      types.JobRunStatusCompleted,
    CompletedAt: &yesterday,
  }}
  job := NewDecayJob(nil, profileRepo, snapshots, runs, testLogger(t))
  job.runExclusive = passthroughExclusive

  if err := job.Run(context.Background()); err != nil {
    t.Fatal(err)
  }
  if runs.started != 0 {
    t.Errorf("ledger runs started = %d, want 0 inside the guard period", runs.started)
  }
  if len(profileRepo.scaled) != 0 {
    t.Error("no profile may decay inside the guard period")
  }
  if len(snapshots.snapshots) != 0 {
    t.Error("no snapshot may be taken inside the guard period")
  }
}

func TestRunRecordsCompletedLedgerRow(t *testing.T) {
  users := []uuid.UUID{uuid.New(), uuid.New()}
  profileRepo := &fakeDecayProfileRepo{userIDs: users}
  snapshots := &fakeSnapshotService{}
  runs := &fakeJobRunRepo{}
  job := NewDecayJob(nil, profileRepo, snapshots, runs, testLogger(t))
  job.runExclusive = passthroughExclusive

  if err := job.Run(context.Background()); err != nil {
    t.Fatal(err)
  }
  if runs.started != 1 {
    t.Fatalf("ledger runs started = %d, want 1", runs.started)
  }
  if len(runs.completed) != 1 || len(runs.failed) != 0 {
    t.Fatalf("completed=%d failed=%d, want 1/0", len(runs.completed), len(runs.failed))
  }
  var detail map[string]interface{}
  if err := json.Unmarshal(runs.completed[0], &detail); err != nil {
    t.Fatal(err)
  }
  if detail["profiles_decayed"] != float64(2) {
    t.Errorf("profiles_decayed = %v, want 2", detail["profiles_decayed"])
  }
  for _, userID := range users {
    if factor := profileRepo.scaled[userID]; factor != scoring.DecayFactor {
      t.Errorf("user %s scaled by %v, want %v", userID, factor, scoring.DecayFactor)
    }
  }
}

func TestWithinDecayPeriod(t *testing.T) {
  now := time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC)

  cases := []struct {
    name        string
    completedAt *time.Time
    want        bool
  }{
    {"never run", nil, false},
    {"yesterday", timePtr(now.Add(-24 * time.Hour)), true},
    {"five days ago", timePtr(now.Add(-5 * 24 * time.Hour)), true},
    {"seven days ago", timePtr(now.Add(-7 * 24 * time.Hour)), false},
  }
  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      if got := withinDecayPeriod(tc.completedAt, now); got != tc.want {
        t.Errorf("withinDecayPeriod = %v, want %v", got, tc.want)
      }
    })
  }
}

func timePtr(t time.Time) *time.Time { return &t }
