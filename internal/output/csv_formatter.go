package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter emits one row per bucket and milestone, then one row per custom projection.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

var csvHeader = []string{"Mode", "BucketID", "Bucket", "Owner", "Label", "Age", "YearsFromNow", "AccountValue", "MonthlyPayment", "AnnualPayment", "PenaltyApplied", "PenaltyRate"}

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	if report.Result != nil {
		for _, br := range report.Result.BucketCalculations {
			for _, mp := range br.Calculations {
				p := mp.Point
				row := []string{
					"milestone",
					br.Bucket.ID,
					br.Bucket.Name,
					string(br.Bucket.Owner),
					mp.Label,
					p.Age.String(),
					p.YearsFromNow.String(),
					p.AccountValue.StringFixed(2),
					p.MonthlyPayment.StringFixed(2),
					p.AnnualPayment.StringFixed(2),
					boolToString(p.PenaltyApplied),
					p.PenaltyRate.String(),
				}
				if err := w.Write(row); err != nil {
					return nil, err
				}
			}
		}
	}
	if report.Custom != nil {
		for _, r := range report.Custom.Results {
			p := r.Projection
			row := []string{
				"custom",
				r.Bucket.ID,
				r.Bucket.Name,
				string(r.Bucket.Owner),
				"custom",
				p.Age.String(),
				p.YearsFromNow.String(),
				p.AccountValue.StringFixed(2),
				p.MonthlyPayment.StringFixed(2),
				p.AnnualPayment.StringFixed(2),
				boolToString(p.PenaltyApplied),
				p.PenaltyRate.String(),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
