package jobs

import "github.com/jfmartel/boampwatch/internal/records"

// deadlineSentinel marks notices without a response deadline.
const deadlineSentinel = "Pas Mentionné"

// SummaryRow is the condensed projection of one processed record.
type SummaryRow struct {
	Keywords       string `json:"keywords"`
	Buyer          string `json:"buyer"`
	Subject        string `json:"subject"`
	Lots           string `json:"lots"`
	VisitMandatory string `json:"visit_mandatory"`
	Department     string `json:"department"`
	Deadline       string `json:"deadline"`
	PDFLink        string `json:"pdf_link"`
	ExtractedLink  string `json:"extracted_link"`
}

// BuildSummary projects processed records onto the fixed summary columns.
// The resolved department falls back to the raw department-code field, and
// a missing deadline falls back to the "not mentioned" sentinel.
func BuildSummary(recs []records.Record) []SummaryRow {
	rows := make([]SummaryRow, 0, len(recs))
	for _, rec := range recs {
		row := SummaryRow{
			Keywords:       orDefault(rec.String(records.FieldKeyword), "N/A"),
			Buyer:          orDefault(rec.String(records.FieldBuyer), "N/A"),
			Subject:        orDefault(rec.String(records.FieldSubject), "N/A"),
			Lots:           rec.String(FieldLotNumbers),
			VisitMandatory: orDefault(rec.String(FieldVisit), "no"),
			Department:     orDefault(rec.String(records.FieldResolvedDepartment), rec.String(records.FieldDepartmentCode)),
			Deadline:       orDefault(rec.String(records.FieldDeadline), deadlineSentinel),
			PDFLink:        orDefault(rec.String(FieldGeneratedLink), "N/A"),
			ExtractedLink:  rec.String(FieldPrimaryLink),
		}
		rows = append(rows, row)
	}
	return rows
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
