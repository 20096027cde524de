package output

import (
	json "github.com/goccy/go-json"

	"github.com/rpgo/bucket-planner/internal/domain"
)

// JSONFormatter serializes the engine output as pretty-printed JSON. A report
// holding only one kind of result is emitted as that result unchanged.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

type combinedJSON struct {
	Result *domain.PortfolioResult `json:"result"`
	Custom *domain.CustomResults   `json:"custom"`
}

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	var v any
	switch {
	case report.Result != nil && report.Custom != nil:
		v = combinedJSON{Result: report.Result, Custom: report.Custom}
	case report.Custom != nil:
		v = report.Custom
	default:
		v = report.Result
	}
	return json.MarshalIndent(v, "", "  ")
}
