package importer

import (
	"fmt"
	"os"

	"finance-tracker-backend/internal/models"
	"finance-tracker-backend/internal/repository"

	"github.com/rs/zerolog"
)

const importCurrency = "KZT"

type Service struct {
	jobs         *repository.ImportJobRepository
	categories   *repository.CategoryRepository
	transactions *repository.TransactionRepository
	log          zerolog.Logger
}

func NewService(
	jobs *repository.ImportJobRepository,
	categories *repository.CategoryRepository,
	transactions *repository.TransactionRepository,
	log zerolog.Logger,
) *Service {
	return &Service{
		jobs:         jobs,
		categories:   categories,
		transactions: transactions,
		log:          log,
	}
}

// CreateJob inserts a pending job row. The caller responds to the
// upload request with the job id and starts Run in its own goroutine.
func (s *Service) CreateJob(companyID, userID uint, fileName string) (*models.ImportJob, error) {
	return s.jobs.Create(companyID, userID, fileName)
}

// GetJob returns the job scoped to the owning company; jobs of other
// companies appear absent.
func (s *Service) GetJob(jobID, companyID uint) (*models.ImportJob, error) {
	return s.jobs.GetForCompany(jobID, companyID)
}

// Run executes one import to completion and finalizes the job exactly
// once. Row-level failures (validation or persistence) are recorded and
// processing continues; only a file that cannot be read or parsed fails
// the run outright. The uploaded file is removed afterwards best-effort.
func (s *Service) Run(jobID, companyID, userID uint, filePath string) {
	defer os.Remove(filePath)

	rows, err := parseFile(filePath)
	if err != nil {
		s.log.Error().Uint("job", jobID).Err(err).Msg("import failed to read file")
		s.finalize(jobID, models.ImportFailed, 0, 0, 0, []string{
			fmt.Sprintf("could not process file: %s", err.Error()),
		})
		return
	}

	totalRows := len(rows)
	successRows := 0
	var errs []string

	for i, row := range rows {
		line := i + 2 // the header occupies line 1
		if err := s.processRow(row, companyID, userID); err != nil {
			errs = append(errs, fmt.Sprintf("Row %d: %s", line, err.Error()))
			s.log.Warn().Uint("job", jobID).Int("line", line).Err(err).Msg("import row failed")
			continue
		}
		successRows++
	}

	failedRows := totalRows - successRows
	status := models.ImportSuccess
	if totalRows > 0 && successRows == 0 {
		status = models.ImportFailed
	}
	s.finalize(jobID, status, totalRows, successRows, failedRows, errs)
	s.log.Info().
		Uint("job", jobID).
		Int("success", successRows).
		Int("failed", failedRows).
		Msg("import finished")
}

func (s *Service) processRow(row RawRow, companyID, userID uint) error {
	draft, err := validateRow(row)
	if err != nil {
		return err
	}

	categoryID, err := s.categories.GetOrCreate(companyID, draft.Category, draft.Type)
	if err != nil {
		return err
	}

	return s.transactions.Create(&models.Transaction{
		CompanyID:  companyID,
		CategoryID: categoryID,
		Type:       draft.Type,
		Amount:     draft.Amount,
		Currency:   importCurrency,
		Date:       draft.Date,
		Comment:    draft.Comment,
		CreatedBy:  userID,
	})
}

func (s *Service) finalize(jobID uint, status models.ImportStatus, totalRows, successRows, failedRows int, errs []string) {
	if err := s.jobs.Finalize(jobID, status, totalRows, successRows, failedRows, errs); err != nil {
		s.log.Error().Uint("job", jobID).Err(err).Msg("failed to finalize import job")
	}
}
