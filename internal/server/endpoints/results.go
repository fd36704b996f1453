package endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jfmartel/boampwatch/internal/api"
	"github.com/jfmartel/boampwatch/internal/jobs"
	"github.com/jfmartel/boampwatch/internal/records"
	"github.com/jfmartel/boampwatch/internal/svcctx"
)

// ResultsResponse is the full per-record table for a completed job.
type ResultsResponse struct {
	JobID   string           `json:"job_id"`
	Count   int              `json:"count"`
	Results []records.Record `json:"results"`
}

// SummaryResponse is the condensed summary table for a completed job.
type SummaryResponse struct {
	JobID   string            `json:"job_id"`
	Count   int               `json:"count"`
	Summary []jobs.SummaryRow `json:"summary"`
}

// writeJobError maps store errors onto HTTP statuses.
func writeJobError(w http.ResponseWriter, jobID string, err error) {
	switch {
	case errors.Is(err, jobs.ErrNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("job %s not found", jobID))
	case errors.Is(err, jobs.ErrNotCompleted):
		writeError(w, http.StatusConflict, fmt.Sprintf("job %s is not completed", jobID))
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// ResultsEndpoint handles GET /api/jobs/{job_id}/results.
type ResultsEndpoint struct{}

func (e *ResultsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/jobs/{job_id}/results", e.handler
}

func (e *ResultsEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get job results
//	@Description	Returns the full per-record results of a completed extraction job
//	@Tags			extraction
//	@Produce		json
//	@Param			job_id	path		string	true	"Job ID"
//	@Success		200		{object}	ResultsResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/api/jobs/{job_id}/results [get]
func (e *ResultsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, ResultsResponse{
		JobID:   jobID,
		Count:   len(results),
		Results: results,
	})
}

func (e *ResultsEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "results <job_id>",
		Short: "Get full results of a completed job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ResultsResponse
			if err := client.Get(cmd.Context(), "/api/jobs/"+args[0]+"/results", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}

// SummaryEndpoint handles GET /api/jobs/{job_id}/summary.
type SummaryEndpoint struct{}

func (e *SummaryEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/jobs/{job_id}/summary", e.handler
}

func (e *SummaryEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get job summary
//	@Description	Returns the condensed summary table of a completed extraction job
//	@Tags			extraction
//	@Produce		json
//	@Param			job_id	path		string	true	"Job ID"
//	@Success		200		{object}	SummaryResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/api/jobs/{job_id}/summary [get]
func (e *SummaryEndpoint) handler(w http.ResponseWriter, r *http.Request) {
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

	writeJSON(w, http.StatusOK, SummaryResponse{
		JobID:   jobID,
		Count:   len(summary),
		Summary: summary,
	})
}

func (e *SummaryEndpoint) Command(getServerURL func() string) *cobra.Command {
	var asTable bool
	cmd := &cobra.Command{
		Use:   "summary <job_id>",
		Short: "Get summary table of a completed job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp SummaryResponse
			if err := client.Get(cmd.Context(), "/api/jobs/"+args[0]+"/summary", &resp); err != nil {
				return err
			}

			if !asTable {
				return api.Output(resp)
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Keywords", "Buyer", "Subject", "Lots", "Visit", "Dept", "Deadline", "Link"})
			for _, row := range resp.Summary {
				link := row.ExtractedLink
				if link == "" {
					link = row.PDFLink
				}
				t.AppendRow(table.Row{
					row.Keywords, row.Buyer, row.Subject, row.Lots,
					row.VisitMandatory, row.Department, row.Deadline, link,
				})
			}
			t.SetStyle(table.StyleLight)
			t.Render()
			return nil
		},
	}
	cmd.Flags().BoolVar(&asTable, "table", false, "Render as a table instead of yaml/json")
	return cmd
}
