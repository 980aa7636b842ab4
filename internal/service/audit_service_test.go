package service

import (
	"context"
	"testing"

	"visus-api/internal/domain/entity"
	"visus-api/internal/repository"
	"visus-api/internal/testsupport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditServiceWritesInsideTransaction(t *testing.T) {
	db := testsupport.NewTestDB(t)
	s := NewAuditService(testsupport.NewTestLogger(), repository.NewAuditLogRepository())
	ctx := context.Background()

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	require.NoError(t, s.LogCreate(ctx, tx, "admin", entity.AuditActionDoctorCreate, "doctor", 1, map[string]string{"name": "A"}))
	require.NoError(t, tx.Commit().Error)

	var logs []entity.AuditLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "admin", logs[0].Actor)
	assert.Equal(t, "doctor", logs[0].Metadata["entity"])
}

func TestAuditFailureLeavesTransactionUsable(t *testing.T) {
	db := testsupport.NewTestDB(t)
	s := NewAuditService(testsupport.NewTestLogger(), repository.NewAuditLogRepository())
	ctx := context.Background()

	require.NoError(t, db.Migrator().DropTable(&entity.AuditLog{}))

	tx := db.WithContext(ctx).Begin()
	defer tx.Rollback()

	require.NoError(t, tx.Create(&entity.Doctor{Name: "before", Role: "r"}).Error)
	assert.Error(t, s.LogCreate(ctx, tx, "admin", entity.AuditActionDoctorCreate, "doctor", 1, nil))
	require.NoError(t, tx.Error)

	require.NoError(t, tx.Create(&entity.Doctor{Name: "after", Role: "r"}).Error)
	require.NoError(t, tx.Commit().Error)

	var count int64
	require.NoError(t, db.Model(&entity.Doctor{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}
