package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"finance-tracker-backend/internal/models"
	"finance-tracker-backend/internal/repository"
	"finance-tracker-backend/internal/services/auth"
	"finance-tracker-backend/internal/services/importer"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newImportRouter wires the upload handler behind stub auth/company
// context values. Migrating only the given models lets a test make job
// creation fail by leaving the import_jobs table out.
func newImportRouter(t *testing.T, uploadDir string, migrate ...interface{}) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(migrate...))

	svc := importer.NewService(
		repository.NewImportJobRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewTransactionRepository(db),
		zerolog.Nop(),
	)
	h := NewImportHandler(svc, uploadDir)

	r := gin.New()
	r.POST("/import", func(c *gin.Context) {
		c.Set("claims", &auth.Claims{UserID: 10, Role: models.RoleOwner})
		c.Set("companyID", uint(1))
	}, h.Upload)
	return r
}

func csvUploadRequest(t *testing.T, filename string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("date,type,category,amount\n2024-01-15,income,Sales,100\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/import", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadRemovesFileWhenJobCreationFails(t *testing.T) {
	uploadDir := t.TempDir()
	// import_jobs is not migrated, so CreateJob fails after the file
	// has been stored.
	r := newImportRouter(t, uploadDir, &models.Category{}, &models.Transaction{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, csvUploadRequest(t, "data.csv"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "stored file should be removed when no run will consume it")
}

func TestUploadRejectsNonCSV(t *testing.T) {
	uploadDir := t.TempDir()
	r := newImportRouter(t, uploadDir, &models.Category{}, &models.Transaction{}, &models.ImportJob{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, csvUploadRequest(t, "data.xlsx"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	entries, err := os.ReadDir(uploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
