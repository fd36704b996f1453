package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jfmartel/boampwatch/internal/pdfdoc"
	"github.com/jfmartel/boampwatch/internal/records"
	"github.com/jfmartel/boampwatch/internal/signals"
)

// Result field names written by the PDF-processing stage.
const (
	FieldGeneratedLink = "generated_link"
	FieldPDFStatus     = "pdf_status"
	FieldPages         = "pages_extracted"
	FieldLotNumbers    = "lot_numbers"
	FieldVisit         = "visite_obligatoire"
	FieldKeywordsUsed  = "keywords_used"
	FieldLinks         = "extracted_links"
	FieldPrimaryLink   = "primary_extracted_link"
)

// Catalog fetches records for a target date.
type Catalog interface {
	FetchAllForDate(ctx context.Context, targetDate string) []records.Record
}

// Retriever fetches one notice document and extracts its text.
type Retriever interface {
	DocumentURL(id string, published time.Time) string
	Fetch(ctx context.Context, url string) (*pdfdoc.Document, error)
}

// Runner sequences the pipeline stages for submitted jobs. Each job runs in
// its own goroutine to a terminal state; the shared store carries progress
// to pollers.
type Runner struct {
	store     *Store
	catalog   Catalog
	retriever Retriever
	logger    *slog.Logger
}

// NewRunner creates a job runner.
func NewRunner(store *Store, catalog Catalog, retriever Retriever, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{store: store, catalog: catalog, retriever: retriever, logger: logger}
}

// Params are the inputs for one extraction job.
type Params struct {
	TargetDate  string
	Keywords    []string
	Departments []string
}

// Submit validates params, registers a new job and starts it in the
// background. It returns the job id.
func (r *Runner) Submit(params Params) (string, error) {
	if len(params.Keywords) == 0 {
		return "", fmt.Errorf("at least one keyword is required")
	}
	if len(params.Departments) == 0 {
		return "", fmt.Errorf("at least one department is required")
	}

	id := fmt.Sprintf("extract_%d_%s", time.Now().Unix(), uuid.New().String()[:8])
	r.store.Put(&Job{
		ID:          id,
		Status:      StatusStarting,
		Stage:       StageInitializing,
		Keywords:    params.Keywords,
		TargetDate:  params.TargetDate,
		Departments: params.Departments,
		CreatedAt:   time.Now().UTC(),
	})

	go r.run(id, params)

	r.logger.Info("job submitted", "job_id", id, "target_date", params.TargetDate,
		"keywords", len(params.Keywords), "departments", len(params.Departments))
	return id, nil
}

// run executes the pipeline to a terminal state. There is no cancellation:
// a submitted job always finishes as completed or error.
func (r *Runner) run(id string, params Params) {
	ctx := context.Background()

	defer func() {
		if rec := recover(); rec != nil {
			r.fail(id, fmt.Sprintf("internal error: %v", rec))
		}
	}()

	r.setStage(id, StageDataExtraction)
	all := r.catalog.FetchAllForDate(ctx, params.TargetDate)
	if len(all) == 0 {
		r.complete(id, fmt.Sprintf("No records found for date %s", params.TargetDate))
		return
	}
	r.store.Update(id, func(j *Job) { j.TotalRecords = len(all) })
	r.logger.Info("catalog fetched", "job_id", id, "records", len(all))

	r.setStage(id, StageKeywordFiltering)
	filtered := records.FilterByKeywords(all, params.Keywords)
	if len(filtered) == 0 {
		r.complete(id, "No matches found for the selected keywords")
		return
	}

	r.setStage(id, StageDeduplication)
	deduped := records.Deduplicate(filtered, records.FieldID, records.FieldKeyword)

	r.setStage(id, StageDepartmentFiltering)
	final := records.FilterByDepartments(deduped, params.Departments)
	if len(final) == 0 {
		r.complete(id, fmt.Sprintf("No records found for selected departments: %s",
			strings.Join(params.Departments, ", ")))
		return
	}

	r.setStage(id, StagePDFProcessing)
	r.store.Update(id, func(j *Job) {
		j.TotalRecords = len(final)
		j.ProcessedRecords = 0
	})

	for i, rec := range final {
		recID := rec.ID()
		r.store.Update(id, func(j *Job) {
			j.ProcessedRecords = i + 1
			j.CurrentRecord = recID
		})
		r.processRecord(ctx, rec)
	}

	summary := BuildSummary(final)
	r.store.Update(id, func(j *Job) {
		j.Results = final
		j.Summary = summary
	})
	r.complete(id, fmt.Sprintf("Processing completed. Found %d records.", len(summary)))
}

// processRecord derives and fetches the notice document for one record and
// mines its text. Every failure is recorded on the record itself and never
// aborts the batch.
func (r *Runner) processRecord(ctx context.Context, rec records.Record) {
	recID := rec.ID()
	if recID == "" {
		rec[FieldPDFStatus] = "Skipped - No ID"
		return
	}

	published, err := pdfdoc.ParsePublicationDate(rec.String(records.FieldPublishDate))
	if err != nil {
		rec[FieldPDFStatus] = "Error - Date parsing failed"
		return
	}

	link := r.retriever.DocumentURL(recID, published)
	rec[FieldGeneratedLink] = link
	rec[FieldKeywordsUsed] = rec.String(records.FieldKeyword)

	doc, err := r.retriever.Fetch(ctx, link)
	if err != nil {
		r.logger.Warn("document fetch failed", "record", recID, "error", err)
		rec[FieldPDFStatus] = fmt.Sprintf("Error: %v", err)
		return
	}

	rec[FieldPDFStatus] = "Success"
	rec[FieldPages] = doc.Pages

	text := pdfdoc.ReconstructText(doc.Text)

	// A deduplicated record carries its matched keywords joined by ";".
	anchors := splitKeywords(rec.String(records.FieldKeyword))

	rec[FieldLotNumbers] = strings.Join(signals.FindLotNumbers(text, anchors), ", ")
	rec[FieldVisit] = signals.VisitMandatory(text, signals.VisitAnchors)

	links := signals.ExtractLinks(text)
	rec[FieldLinks] = strings.Join(links, ", ")
	if len(links) > 0 {
		rec[FieldPrimaryLink] = links[0]
	} else {
		rec[FieldPrimaryLink] = ""
	}
}

func (r *Runner) setStage(id string, stage Stage) {
	r.store.Update(id, func(j *Job) {
		j.Status = StatusProcessing
		j.Stage = stage
	})
}

func (r *Runner) complete(id, message string) {
	r.store.Update(id, func(j *Job) {
		j.Status = StatusCompleted
		j.Message = message
	})
	r.logger.Info("job completed", "job_id", id, "message", message)
}

func (r *Runner) fail(id, message string) {
	r.store.Update(id, func(j *Job) {
		j.Status = StatusError
		j.Error = message
	})
	r.logger.Error("job failed", "job_id", id, "error", message)
}

func splitKeywords(joined string) []string {
	var out []string
	for _, part := range strings.Split(joined, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
