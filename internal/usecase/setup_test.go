package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"visus-api/internal/delivery/dto"
	"visus-api/internal/delivery/http/middleware"
	"visus-api/internal/infrastructure/storage"
	"visus-api/internal/repository"
	"visus-api/internal/service"
	"visus-api/internal/testsupport"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testPublicURL = "http://localhost:8080/media"

type fixture struct {
	db           *gorm.DB
	log          *logrus.Logger
	storage      *storage.LocalStorage
	auditService service.AuditService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := testsupport.NewTestLogger()
	fs, err := storage.NewLocalStorage(filepath.Join(t.TempDir(), "storage"), testPublicURL, log)
	require.NoError(t, err)

	return &fixture{
		db:           testsupport.NewTestDB(t),
		log:          log,
		storage:      fs,
		auditService: service.NewAuditService(log, repository.NewAuditLogRepository()),
	}
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), middleware.AdminIdentityKey, "admin")
}

func strPtr(s string) *string { return &s }

func flexInt(i int) *dto.FlexibleInt {
	n := dto.FlexibleInt(i)
	return &n
}

func boolPtr(b bool) *bool { return &b }
