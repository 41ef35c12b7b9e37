package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/formlift/docextract/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for
// batch result exports.
type Service struct {
	batches repository.BatchRepository
	jobs    repository.ExtractJobRepository
	docs    repository.DocumentRepository
	logger  *slog.Logger
}

func NewService(batches repository.BatchRepository, jobs repository.ExtractJobRepository, docs repository.DocumentRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{batches: batches, jobs: jobs, docs: docs, logger: logger}
}

// ExportBatchXLSX returns an XLSX workbook (as bytes) listing every job of the
// batch with its document state and extracted data.
func (s *Service) ExportBatchXLSX(ctx context.Context, batchID uuid.UUID) ([]byte, error) {
	start := time.Now()

	batch, err := s.batches.GetByID(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("load batch: %w", err)
	}
	jobs, err := s.jobs.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("query batch jobs: %w", err)
	}

	docIDs := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		docIDs = append(docIDs, j.DocumentID)
	}
	docs, err := s.docs.ListByIDs(ctx, docIDs)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	docByID := make(map[uuid.UUID]int, len(docs))
	for i, d := range docs {
		docByID[d.ID] = i
	}

	f := excelize.NewFile()
	const sheet = "Extractions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Document ID",
		"Filename",
		"Document Status",
		"Job Status",
		"Error",
		"Extracted Data",
		"Completed At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, j := range jobs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		filename, docStatus, extracted := "", "", ""
		if i, ok := docByID[j.DocumentID]; ok {
			d := docs[i]
			filename = d.Filename
			docStatus = d.Status
			extracted = string(d.ExtractedData)
		}

		errMsg := ""
		if j.ErrorMessage != nil {
			errMsg = *j.ErrorMessage
		}
		completedAt := ""
		if j.CompletedAt != nil {
			completedAt = j.CompletedAt.UTC().Format("2006-01-02 15:04:05")
		}

		write(1, j.DocumentID.String())
		write(2, filename)
		write(3, docStatus)
		write(4, j.Status)
		write(5, truncate(errMsg, 140))
		write(6, truncate(extracted, 2000))
		write(7, completedAt)
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 38) // document id
	_ = f.SetColWidth(sheet, "B", "B", 32) // filename
	_ = f.SetColWidth(sheet, "C", "D", 16) // statuses
	_ = f.SetColWidth(sheet, "E", "E", 40) // error
	_ = f.SetColWidth(sheet, "F", "F", 80) // data
	_ = f.SetColWidth(sheet, "G", "G", 20) // completed

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"batch_id", batchID.String(),
		"batch_status", batch.Status,
		"rows", len(jobs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
