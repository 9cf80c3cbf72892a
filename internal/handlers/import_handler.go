package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"finance-tracker-backend/internal/middleware"
	"finance-tracker-backend/internal/services/importer"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxUploadSize = 5 << 20 // 5 MB

type ImportHandler struct {
	service   *importer.Service
	uploadDir string
}

func NewImportHandler(service *importer.Service, uploadDir string) *ImportHandler {
	return &ImportHandler{service: service, uploadDir: uploadDir}
}

// Upload accepts a CSV file, creates a pending job, and starts the run
// in a detached goroutine. The response carries only the job id; the
// client polls GetJob for the outcome.
func (h *ImportHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 5 MB)"})
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".csv" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only CSV files are allowed"})
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store file"})
		return
	}
	dst := filepath.Join(h.uploadDir, fmt.Sprintf("import-%s%s", uuid.New().String(), ext))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store file"})
		return
	}

	claims := middleware.CurrentClaims(c)
	companyID := middleware.CompanyID(c)

	job, err := h.service.CreateJob(companyID, claims.UserID, file.Filename)
	if err != nil {
		// No run will ever pick the file up, so drop it here.
		os.Remove(dst)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	go h.service.Run(job.ID, companyID, claims.UserID, dst)

	c.JSON(http.StatusAccepted, gin.H{"message": "import started", "jobId": job.ID})
}

func (h *ImportHandler) GetJob(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("jobId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job ID"})
		return
	}

	job, err := h.service.GetJob(uint(jobID), middleware.CompanyID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "import job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, job)
}
