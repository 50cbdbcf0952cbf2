package pagesController

import (
	"edusite/config"
	"edusite/database"
	"edusite/models"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Get("/", Home)
	return app, db
}

func TestHomeFiltersInactiveAndCapsPrograms(t *testing.T) {
	app, db := setupApp(t)

	require.NoError(t, db.Create(&models.Partner{Name: "Acme Schools", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Partner{Name: "Gone Inc", IsActive: false}).Error)

	require.NoError(t, db.Create(&models.Testimonial{Name: "Mrs. Bello", Role: "Parent", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Testimonial{Name: "Hidden", IsActive: false}).Error)

	for i := 0; i < 4; i++ {
		require.NoError(t, db.Create(&models.Program{Title: fmt.Sprintf("Program %d", i), IsActive: true}).Error)
	}
	require.NoError(t, db.Create(&models.Program{Title: "Retired", IsActive: false}).Error)

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var parsed struct {
		Data struct {
			Partners     []models.Partner     `json:"partners"`
			Testimonials []models.Testimonial `json:"testimonials"`
			Programs     []models.Program     `json:"programs"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &parsed))

	require.Len(t, parsed.Data.Partners, 1)
	assert.Equal(t, "Acme Schools", parsed.Data.Partners[0].Name)

	require.Len(t, parsed.Data.Testimonials, 1)
	assert.Equal(t, "Mrs. Bello", parsed.Data.Testimonials[0].Name)

	// Landing view shows at most three programs
	assert.Len(t, parsed.Data.Programs, 3)
	for _, program := range parsed.Data.Programs {
		assert.NotEqual(t, "Retired", program.Title)
	}
}
