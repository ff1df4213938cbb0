package utils

import (
	"fmt"
	"testing"
	"time"

	"medishare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestPurgeExpiredMedicines(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Medicine{}))

	stale := models.Medicine{
		MedicineName: "Expiralol",
		ExpDate:      time.Now().AddDate(0, 0, -2),
		Address:      "a", Phone: "p", Description: "d", UserID: 1,
	}
	fresh := models.Medicine{
		MedicineName: "Paracetamol",
		ExpDate:      time.Now().AddDate(1, 0, 0),
		Address:      "a", Phone: "p", Description: "d", UserID: 1,
	}
	expiringToday := models.Medicine{
		MedicineName: "Cetirizine",
		ExpDate:      time.Now(),
		Address:      "a", Phone: "p", Description: "d", UserID: 1,
	}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Create(&fresh).Error)
	require.NoError(t, db.Create(&expiringToday).Error)

	purgeExpiredMedicines(db)

	var names []string
	require.NoError(t, db.Model(&models.Medicine{}).Order("medicine_name").Pluck("medicine_name", &names).Error)

	// Listings expiring today survive until tomorrow's run
	assert.Equal(t, []string{"Cetirizine", "Paracetamol"}, names)
}
