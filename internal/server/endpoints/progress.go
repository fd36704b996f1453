package endpoints

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jfmartel/boampwatch/internal/api"
	"github.com/jfmartel/boampwatch/internal/jobs"
	"github.com/jfmartel/boampwatch/internal/svcctx"
)

// ProgressEndpoint handles GET /api/jobs/{job_id}.
type ProgressEndpoint struct{}

func (e *ProgressEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/jobs/{job_id}", e.handler
}

func (e *ProgressEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get job progress
//	@Description	Returns the current status and stage of an extraction job
//	@Tags			extraction
//	@Produce		json
//	@Param			job_id	path		string	true	"Job ID"
//	@Success		200		{object}	jobs.Job
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/jobs/{job_id} [get]
func (e *ProgressEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("job_id")
	if jobID == "" {
		writeError(w, http.StatusBadRequest, "job_id is required")
		return
	}

	store := svcctx.JobStoreFrom(r.Context())
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "job store not initialized")
		return
	}

	job, err := store.Get(jobID)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("job %s not found", jobID))
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, job)
}

func (e *ProgressEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "progress <job_id>",
		Short: "Get extraction job progress",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp jobs.Job
			if err := client.Get(cmd.Context(), "/api/jobs/"+args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
