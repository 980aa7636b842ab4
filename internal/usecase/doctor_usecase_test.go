package usecase

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"visus-api/internal/delivery/dto"
	"visus-api/internal/domain/entity"
	"visus-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDoctorUsecase(f *fixture) DoctorUsecase {
	return NewDoctorUsecase(f.db, f.log, repository.NewDoctorRepository(), f.storage, f.auditService)
}

func TestCreateDoctorEchoesRecord(t *testing.T) {
	f := newFixture(t)
	uc := newDoctorUsecase(f)

	req := &dto.DoctorRequest{
		Name:            strPtr("Айжан Ермекова"),
		Role:            strPtr("Врач-офтальмолог"),
		ExperienceYears: flexInt(12),
		DescriptionRu:   strPtr("Диагностика"),
		PhotoURL:        strPtr("http://localhost:8080/media/doctors/a.jpg"),
	}

	created, err := uc.CreateDoctor(adminContext(), req)
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, *req.Name, created.Name)
	assert.Equal(t, *req.Role, created.Role)
	assert.Equal(t, 12, *created.ExperienceYears)
	assert.Equal(t, "Диагностика", *created.DescriptionRu)
	assert.Nil(t, created.DescriptionKk)

	doctors, err := uc.GetAllDoctors(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, *created, doctors[0])
}

func TestGetAllDoctorsOrderedByID(t *testing.T) {
	f := newFixture(t)
	uc := newDoctorUsecase(f)

	for _, name := range []string{"C", "A", "B"} {
		_, err := uc.CreateDoctor(adminContext(), &dto.DoctorRequest{Name: strPtr(name), Role: strPtr("Врач")})
		require.NoError(t, err)
	}

	doctors, err := uc.GetAllDoctors(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 3)
	assert.Equal(t, "C", doctors[0].Name)
	assert.Less(t, doctors[0].ID, doctors[1].ID)
	assert.Less(t, doctors[1].ID, doctors[2].ID)
}

func TestUpdateDoctorReplacesAllFields(t *testing.T) {
	f := newFixture(t)
	uc := newDoctorUsecase(f)

	created, err := uc.CreateDoctor(adminContext(), &dto.DoctorRequest{
		Name:            strPtr("Old"),
		Role:            strPtr("Врач"),
		ExperienceYears: flexInt(3),
		DescriptionKk:   strPtr("old kk"),
	})
	require.NoError(t, err)

	updated, err := uc.UpdateDoctor(adminContext(), created.ID, &dto.DoctorRequest{Name: strPtr("New"), Role: strPtr("Хирург")})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "Хирург", updated.Role)
	assert.Nil(t, updated.ExperienceYears)
	assert.Nil(t, updated.DescriptionKk)
}

func TestUpdateDoctorNotFound(t *testing.T) {
	f := newFixture(t)
	uc := newDoctorUsecase(f)

	_, err := uc.UpdateDoctor(adminContext(), 999, &dto.DoctorRequest{Name: strPtr("X"), Role: strPtr("Y")})
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	doctors, err := uc.GetAllDoctors(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doctors)
}

func TestDeleteDoctorRemovesPhotoAndRow(t *testing.T) {
	f := newFixture(t)
	uc := newDoctorUsecase(f)
	ctx := adminContext()

	obj, err := f.storage.Save(ctx, strings.NewReader("photo"), "a.jpg", "doctors", "a.jpg")
	require.NoError(t, err)
	photoPath := filepath.Join(f.storage.Root(), "doctors", "a.jpg")
	require.FileExists(t, photoPath)

	created, err := uc.CreateDoctor(ctx, &dto.DoctorRequest{Name: strPtr("A"), Role: strPtr("B"), PhotoURL: strPtr(obj.URL)})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteDoctor(ctx, created.ID))

	assert.NoFileExists(t, photoPath)
	doctors, err := uc.GetAllDoctors(ctx)
	require.NoError(t, err)
	assert.Empty(t, doctors)
}

func TestDeleteDoctorWithMissingPhotoStillDeletesRow(t *testing.T) {
	f := newFixture(t)
	uc := newDoctorUsecase(f)
	ctx := adminContext()

	created, err := uc.CreateDoctor(ctx, &dto.DoctorRequest{Name: strPtr("A"), Role: strPtr("B"), PhotoURL: strPtr("doctors/gone.jpg")})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteDoctor(ctx, created.ID))

	doctors, err := uc.GetAllDoctors(ctx)
	require.NoError(t, err)
	assert.Empty(t, doctors)
}

func TestDeleteDoctorNotFound(t *testing.T) {
	f := newFixture(t)
	uc := newDoctorUsecase(f)

	assert.ErrorIs(t, uc.DeleteDoctor(adminContext(), 42), ErrDoctorNotFound)
}

func TestDoctorWritesAreAudited(t *testing.T) {
	f := newFixture(t)
	uc := newDoctorUsecase(f)
	ctx := adminContext()

	created, err := uc.CreateDoctor(ctx, &dto.DoctorRequest{Name: strPtr("A"), Role: strPtr("B")})
	require.NoError(t, err)
	_, err = uc.UpdateDoctor(ctx, created.ID, &dto.DoctorRequest{Name: strPtr("A2"), Role: strPtr("B")})
	require.NoError(t, err)
	require.NoError(t, uc.DeleteDoctor(ctx, created.ID))

	logs, err := NewAuditLogUsecase(f.db, f.log, repository.NewAuditLogRepository()).GetAllAuditLogs(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, logs.Total)

	assert.Equal(t, entity.AuditActionDoctorDelete, logs.Logs[0].Action)
	assert.Equal(t, entity.AuditActionDoctorUpdate, logs.Logs[1].Action)
	assert.Equal(t, entity.AuditActionDoctorCreate, logs.Logs[2].Action)
	for _, l := range logs.Logs {
		assert.Equal(t, "admin", l.Actor)
		assert.Equal(t, "doctor", l.Metadata["entity"])
	}
}

func TestDoctorWriteSurvivesAuditFailure(t *testing.T) {
	f := newFixture(t)
	uc := newDoctorUsecase(f)
	ctx := adminContext()

	require.NoError(t, f.db.Migrator().DropTable(&entity.AuditLog{}))

	created, err := uc.CreateDoctor(ctx, &dto.DoctorRequest{Name: strPtr("A"), Role: strPtr("B")})
	require.NoError(t, err)

	updated, err := uc.UpdateDoctor(ctx, created.ID, &dto.DoctorRequest{Name: strPtr("A2"), Role: strPtr("B")})
	require.NoError(t, err)
	assert.Equal(t, "A2", updated.Name)

	doctors, err := uc.GetAllDoctors(context.Background())
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	assert.Equal(t, "A2", doctors[0].Name)
}
