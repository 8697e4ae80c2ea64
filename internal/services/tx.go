package services

import (
  "context"
  "gorm.io/gorm"
)

// TxRunner runs a function inside a single database transaction. Services
// whose writes span several repos depend on this seam rather than on
// *gorm.DB directly.
type TxRunner interface {
  RunInTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type gormTxRunner struct {
  db *gorm.DB
}

func NewGormTxRunner(db *gorm.DB) TxRunner {
  return &gormTxRunner{db: db}
}

func (r *gormTxRunner) RunInTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
  return r.db.WithContext(ctx).Transaction(fn)
}
