// Package jobs holds the extraction job model, the in-memory job store and
// the runner that sequences the pipeline stages for one job.
package jobs

import (
	"time"

	"github.com/jfmartel/boampwatch/internal/records"
)

// Status represents the lifecycle state of a job.
type Status string

const (
	StatusStarting   Status = "starting"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// Terminal reports whether no further mutation may occur.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// Stage identifies the pipeline stage a processing job is in.
type Stage string

const (
	StageInitializing        Stage = "initializing"
	StageDataExtraction      Stage = "data_extraction"
	StageKeywordFiltering    Stage = "keyword_filtering"
	StageDeduplication       Stage = "deduplication"
	StageDepartmentFiltering Stage = "department_filtering"
	StagePDFProcessing       Stage = "pdf_processing"
)

// Job is the progress record for one extraction run. It is mutated only by
// the runner that owns its id; readers always receive copies.
type Job struct {
	ID               string    `json:"job_id"`
	Status           Status    `json:"status"`
	Stage            Stage     `json:"current_step"`
	TotalRecords     int       `json:"total_records"`
	ProcessedRecords int       `json:"processed_records"`
	CurrentRecord    string    `json:"current_record"`
	Keywords         []string  `json:"keywords"`
	TargetDate       string    `json:"target_date"`
	Departments      []string  `json:"departments"`
	Message          string    `json:"message,omitempty"`
	Error            string    `json:"error,omitempty"`
	CreatedAt        time.Time `json:"created_at"`

	// Result containers, populated at completion. Excluded from progress
	// snapshots; served by the dedicated results endpoints.
	Results []records.Record `json:"-"`
	Summary []SummaryRow     `json:"-"`
}

// clone returns a copy safe to hand to readers while the runner keeps
// writing. Slices are copied; records are shared because completed results
// are never mutated again.
func (j *Job) clone() *Job {
	out := *j
	out.Keywords = append([]string(nil), j.Keywords...)
	out.Departments = append([]string(nil), j.Departments...)
	out.Results = append([]records.Record(nil), j.Results...)
	out.Summary = append([]SummaryRow(nil), j.Summary...)
	return &out
}
