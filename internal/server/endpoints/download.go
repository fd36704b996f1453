package endpoints

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jfmartel/boampwatch/internal/api"
	"github.com/jfmartel/boampwatch/internal/jobs"
	"github.com/jfmartel/boampwatch/internal/records"
	"github.com/jfmartel/boampwatch/internal/svcctx"
)

// utf8BOM prefixes CSV exports so spreadsheet tools decode accented
// French text correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// resultColumns is the fixed column order for the full results export.
var resultColumns = []string{
	records.FieldID,
	records.FieldPublishDate,
	records.FieldBuyer,
	records.FieldSubject,
	records.FieldDepartmentCode,
	records.FieldResolvedDepartment,
	records.FieldDeadline,
	records.FieldKeyword,
	jobs.FieldGeneratedLink,
	jobs.FieldPDFStatus,
	jobs.FieldPages,
	jobs.FieldLotNumbers,
	jobs.FieldVisit,
	jobs.FieldLinks,
	jobs.FieldPrimaryLink,
}

// summaryColumns is the fixed column order for the summary export.
var summaryColumns = []string{
	"keywords", "buyer", "subject", "lots", "visit_mandatory",
	"department", "deadline", "pdf_link", "extracted_link",
}

// exportFilename names a CSV export: boamp_<kind>_<target date>_<HHMMSS>.csv.
// The time suffix keeps repeated exports of the same job from clobbering
// each other.
func exportFilename(kind, targetDate string) string {
	return fmt.Sprintf("boamp_%s_%s_%s.csv", kind, targetDate, time.Now().Format("150405"))
}

func writeCSV(w http.ResponseWriter, filename string, header []string, rows [][]string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(utf8BOM)

	cw := csv.NewWriter(w)
	cw.Write(header)
	for _, row := range rows {
		cw.Write(row)
	}
	cw.Flush()
}

// DownloadResultsEndpoint handles GET /api/jobs/{job_id}/download/results.
type DownloadResultsEndpoint struct{}

func (e *DownloadResultsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/jobs/{job_id}/download/results", e.handler
}

func (e *DownloadResultsEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Download job results as CSV
//	@Description	Exports the full per-record results of a completed job as a CSV file
//	@Tags			extraction
//	@Produce		text/csv
//	@Param			job_id	path	string	true	"Job ID"
//	@Success		200
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/api/jobs/{job_id}/download/results [get]
func (e *DownloadResultsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("job_id")

	store := svcctx.JobStoreFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "job store not initialized")
		return
	}
	results, err := store.Results(jobID)
	if err != nil {
		writeJobError(w, jobID, err)
		return
	}
	job, err := store.Get(jobID)
	if err != nil {
		writeJobError(w, jobID, err)
		return
	}

	rows := make([][]string, 0, len(results))
	for _, rec := range results {
		row := make([]string, len(resultColumns))
		for i, col := range resultColumns {
			row[i] = rec.String(col)
		}
		rows = append(rows, row)
	}

	filename := exportFilename("results", job.TargetDate)
	writeCSV(w, filename, resultColumns, rows)
}

func (e *DownloadResultsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "download-results <job_id>",
		Short: "Download full results CSV for a completed job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			data, err := client.GetRaw(cmd.Context(), "/api/jobs/"+args[0]+"/download/results")
			if err != nil {
				return err
			}
			if outputFile == "" {
				outputFile = fmt.Sprintf("boamp_results_%s.csv", args[0])
			}
			if err := os.WriteFile(outputFile, data, 0o644); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			cmd.Println("Saved to", outputFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path")
	return cmd
}

// DownloadSummaryEndpoint handles GET /api/jobs/{job_id}/download/summary.
type DownloadSummaryEndpoint struct{}

func (e *DownloadSummaryEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/jobs/{job_id}/download/summary", e.handler
}

func (e *DownloadSummaryEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Download job summary as CSV
//	@Description	Exports the condensed summary table of a completed job as a CSV file
//	@Tags			extraction
//	@Produce		text/csv
//	@Param			job_id	path	string	true	"Job ID"
//	@Success		200
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/api/jobs/{job_id}/download/summary [get]
func (e *DownloadSummaryEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("job_id")

	store := svcctx.JobStoreFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "job store not initialized")
		return
	}
	summary, err := store.Summary(jobID)
	if err != nil {
		writeJobError(w, jobID, err)
		return
	}
	job, err := store.Get(jobID)
	if err != nil {
		writeJobError(w, jobID, err)
		return
	}

	rows := make([][]string, 0, len(summary))
	for _, row := range summary {
		rows = append(rows, []string{
			row.Keywords, row.Buyer, row.Subject, row.Lots, row.VisitMandatory,
			row.Department, row.Deadline, row.PDFLink, row.ExtractedLink,
		})
	}

	filename := exportFilename("summary", job.TargetDate)
	writeCSV(w, filename, summaryColumns, rows)
}

func (e *DownloadSummaryEndpoint) Command(getServerURL func() string) *cobra.Command {
	var outputFile string
	cmd := &cobra.Command{
		Use:   "download-summary <job_id>",
		Short: "Download summary CSV for a completed job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			data, err := client.GetRaw(cmd.Context(), "/api/jobs/"+args[0]+"/download/summary")
			if err != nil {
				return err
			}
			if outputFile == "" {
				outputFile = fmt.Sprintf("boamp_summary_%s.csv", args[0])
			}
			if err := os.WriteFile(outputFile, data, 0o644); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			cmd.Println("Saved to", outputFile)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path")
	return cmd
}
