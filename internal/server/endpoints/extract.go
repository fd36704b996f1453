package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/cobra"

	"github.com/jfmartel/boampwatch/internal/api"
	"github.com/jfmartel/boampwatch/internal/jobs"
	"github.com/jfmartel/boampwatch/internal/records"
	"github.com/jfmartel/boampwatch/internal/svcctx"
)

// extractRequestSchema validates the extraction request shape before it is
// decoded. Keyword and department membership rules are enforced afterwards
// because they depend on the combined custom keywords.
const extractRequestSchema = `{
	"type": "object",
	"properties": {
		"target_date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
		"keywords": {"type": "array", "items": {"type": "string"}},
		"custom_keywords": {"type": "string"},
		"departments": {"type": "array", "items": {"type": "string", "minLength": 1}}
	},
	"required": ["target_date", "departments"],
	"additionalProperties": false
}`

var compiledExtractSchema = jsonschema.MustCompileString("extract_request.json", extractRequestSchema)

// ExtractRequest is the request body for starting an extraction job.
type ExtractRequest struct {
	TargetDate     string   `json:"target_date"`
	Keywords       []string `json:"keywords"`
	CustomKeywords string   `json:"custom_keywords,omitempty"`
	Departments    []string `json:"departments"`
}

// ExtractResponse is the response for starting an extraction job.
type ExtractResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// ExtractEndpoint handles POST /api/extract.
type ExtractEndpoint struct{}

func (e *ExtractEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/extract", e.handler
}

func (e *ExtractEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Start an extraction job
//	@Description	Starts a background job that fetches the day's notices, filters them and mines the matched documents
//	@Tags			extraction
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ExtractRequest	true	"Extraction parameters"
//	@Success		202		{object}	ExtractResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		503		{object}	ErrorResponse
//	@Router			/api/extract [post]
func (e *ExtractEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	var raw any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := compiledExtractSchema.Validate(raw); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	data, err := json.Marshal(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	var req ExtractRequest
	if err := json.Unmarshal(data, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	keywords := records.CombineKeywords(req.Keywords, req.CustomKeywords)
	if len(keywords) == 0 {
		writeError(w, http.StatusBadRequest, "at least one keyword is required")
		return
	}

	runner := svcctx.RunnerFrom(r.Context())
	if runner == nil {
		writeError(w, http.StatusServiceUnavailable, "job runner not initialized")
		return
	}

	jobID, err := runner.Submit(jobs.Params{
		TargetDate:  req.TargetDate,
		Keywords:    keywords,
		Departments: req.Departments,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusAccepted, ExtractResponse{
		JobID:  jobID,
		Status: string(jobs.StatusStarting),
	})
}

func (e *ExtractEndpoint) Command(getServerURL func() string) *cobra.Command {
	var (
		targetDate     string
		keywords       []string
		customKeywords string
		departments    []string
	)
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Start an extraction job",
		RunE: func(cmd *cobra.Command, args []string) error {
			if targetDate == "" {
				targetDate = time.Now().Format("2006-01-02")
			}
			if len(departments) == 0 {
				return fmt.Errorf("--departments is required")
			}

			req := ExtractRequest{
				TargetDate:     targetDate,
				Keywords:       keywords,
				CustomKeywords: strings.Join(strings.Split(customKeywords, ","), "\n"),
				Departments:    departments,
			}

			client := api.NewClient(getServerURL())
			var resp ExtractResponse
			if err := client.Post(cmd.Context(), "/api/extract", req, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVar(&targetDate, "date", "", "Publication date to scan (YYYY-MM-DD, default today)")
	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "Keywords from the predefined catalog")
	cmd.Flags().StringVar(&customKeywords, "custom-keywords", "", "Extra comma-separated keywords")
	cmd.Flags().StringSliceVar(&departments, "departments", nil, "Department codes to keep (required)")
	return cmd
}
