package database_test

import (
	"testing"

	"visus-api/internal/domain/entity"
	"visus-api/internal/infrastructure/database"
	"visus-api/internal/testsupport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedFillsEmptyTablesOnce(t *testing.T) {
	db := testsupport.NewTestDB(t)
	log := testsupport.NewTestLogger()

	require.NoError(t, database.Seed(db, log))
	require.NoError(t, database.Seed(db, log))

	var doctors, services, reviews int64
	require.NoError(t, db.Model(&entity.Doctor{}).Count(&doctors).Error)
	require.NoError(t, db.Model(&entity.ServiceItem{}).Count(&services).Error)
	require.NoError(t, db.Model(&entity.Review{}).Count(&reviews).Error)

	assert.Equal(t, int64(3), doctors)
	assert.Equal(t, int64(2), services)
	assert.Equal(t, int64(1), reviews)
}

func TestSeedLeavesPopulatedTablesAlone(t *testing.T) {
	db := testsupport.NewTestDB(t)
	require.NoError(t, db.Create(&entity.Doctor{Name: "Existing", Role: "Врач"}).Error)

	require.NoError(t, database.Seed(db, testsupport.NewTestLogger()))

	var doctors []entity.Doctor
	require.NoError(t, db.Find(&doctors).Error)
	require.Len(t, doctors, 1)
	assert.Equal(t, "Existing", doctors[0].Name)
}
