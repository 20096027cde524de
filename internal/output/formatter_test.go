package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/rpgo/bucket-planner/internal/domain"
)

func point(age, years, value, monthly int64, penalty bool) domain.ProjectionPoint {
	p := domain.ProjectionPoint{
		Age:            decimal.NewFromInt(age),
		YearsFromNow:   decimal.NewFromInt(years),
		AccountValue:   decimal.NewFromInt(value),
		MonthlyPayment: decimal.NewFromInt(monthly),
		AnnualPayment:  decimal.NewFromInt(monthly * 12),
		PenaltyApplied: penalty,
		PenaltyRate:    decimal.Zero,
	}
	if penalty {
		p.PenaltyRate = decimal.NewFromInt(10)
	}
	return p
}

func buildTestReport() *Report {
	portfolio := &domain.Portfolio{
		Person1:         domain.Person{Name: "PersonA", Age: decimal.NewFromInt(60)},
		Person2:         domain.Person{Name: "PersonB", Age: decimal.NewFromInt(58)},
		MonthlyExpenses: decimal.NewFromInt(4000),
		Currency:        "USD",
	}
	result := domain.NewPortfolioResult(domain.ContributionSingle, 2)
	result.BucketCalculations = append(result.BucketCalculations,
		domain.BucketResult{
			Bucket:   domain.Bucket{ID: "a", Name: "401k", Owner: domain.OwnerPerson1, Category: domain.CategoryPrivate, CurrentValue: decimal.NewFromInt(300000), RealRate: decimal.NewFromInt(3)},
			OwnerAge: decimal.NewFromInt(60),
			Calculations: domain.Milestones{
				{Label: domain.LabelAccessAge, Point: point(62, 2, 320000, 1500, true)},
				{Label: domain.LabelAge70, Point: point(70, 10, 400000, 2000, false)},
			},
		},
		domain.BucketResult{
			Bucket:   domain.Bucket{ID: "b", Name: "Pension", Owner: domain.OwnerPerson2, Category: domain.CategoryPublic, CurrentValue: decimal.NewFromInt(100000), RealRate: decimal.NewFromInt(2)},
			OwnerAge: decimal.NewFromInt(58),
			Calculations: domain.Milestones{
				{Label: domain.LabelAge70, Point: point(70, 12, 130000, 1000, false)},
			},
		},
	)
	return &Report{Portfolio: portfolio, Result: result}
}

func buildCustomResults() *domain.CustomResults {
	return &domain.CustomResults{
		Params: domain.CustomParams{DisbursementAge: decimal.NewFromInt(65), WithdrawalPeriod: decimal.NewFromInt(25), InterestRate: decimal.NewFromInt(4)},
		Results: []domain.CustomResult{
			{Bucket: domain.Bucket{ID: "a", Name: "401k", Owner: domain.OwnerPerson1}, Projection: point(65, 5, 350000, 1800, false), DisbursementAge: decimal.NewFromInt(65), YearsToDisbursement: decimal.NewFromInt(5)},
			{Bucket: domain.Bucket{ID: "b", Name: "Pension", Owner: domain.OwnerPerson2}, Projection: point(65, 7, 115000, 600, true), DisbursementAge: decimal.NewFromInt(65), YearsToDisbursement: decimal.NewFromInt(7)},
		},
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"RETIREMENT BUCKET PROJECTION",
		"PersonA (age 60) and PersonB (age 58)",
		"access_age",
		"$1500.00",
		"10.00%",
		"EXPENSE COVERAGE",
		"age_70: $3000.00/month from 2 bucket(s), 75.00% of expenses",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in console output, got:\n%s", want, content)
		}
	}
}

func TestConsoleFormatterCustom(t *testing.T) {
	report := buildTestReport()
	report.Result = nil
	report.Custom = buildCustomResults()

	out, err := ConsoleFormatter{}.Format(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "CUSTOM DISBURSEMENT: age 65, 25 years at 4%") {
		t.Fatalf("missing custom heading:\n%s", content)
	}
	if !strings.Contains(content, "Total: $2400.00/month, 60.00% of expenses") {
		t.Fatalf("missing custom total:\n%s", content)
	}
	if strings.Contains(content, "EXPENSE COVERAGE") {
		t.Fatalf("milestone coverage should not render without a result")
	}
}

func TestConsoleFormatterNoMilestones(t *testing.T) {
	report := buildTestReport()
	report.Result.BucketCalculations[1].Calculations = domain.Milestones{}
	out, err := ConsoleFormatter{}.Format(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "no milestones remain") {
		t.Fatalf("expected empty-bucket notice, got:\n%s", out)
	}
}

func TestCSVFormatterRows(t *testing.T) {
	report := buildTestReport()
	report.Custom = buildCustomResults()

	out, err := CSVFormatter{}.Format(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	// header + 3 milestone rows + 2 custom rows
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Mode,BucketID,Bucket") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "milestone,a,401k,person1,access_age,62,2,320000.00,1500.00,18000.00,true,10") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	if !strings.HasPrefix(lines[4], "custom,a,401k") {
		t.Fatalf("unexpected custom row %q", lines[4])
	}
}

func TestJSONFormatterShapes(t *testing.T) {
	report := buildTestReport()
	out, err := JSONFormatter{}.Format(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	for _, key := range []string{"bucket_calculations", "scenarios", "breakeven_analysis", "recommendations"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing key %q in %s", key, out)
		}
	}
	if bytes.Index(out, []byte(`"access_age"`)) > bytes.Index(out, []byte(`"age_70"`)) {
		t.Fatalf("milestones out of order: %s", out)
	}

	report.Custom = buildCustomResults()
	out, err = JSONFormatter{}.Format(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded = nil
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := decoded["result"]; !ok {
		t.Fatalf("combined report should nest result: %s", out)
	}
	if _, ok := decoded["custom"]; !ok {
		t.Fatalf("combined report should nest custom: %s", out)
	}
}

func TestGetFormatterByNameAndAliases(t *testing.T) {
	cases := map[string]string{
		"console":     "console",
		" TEXT ":      "console",
		"table":       "console",
		"json-pretty": "json",
		"csv":         "csv",
	}
	for in, want := range cases {
		f := GetFormatterByName(in)
		if f == nil || f.Name() != want {
			t.Fatalf("GetFormatterByName(%q) = %v, want %s", in, f, want)
		}
	}
	if GetFormatterByName("pdf") != nil {
		t.Fatalf("expected nil for unknown format")
	}
	if got := strings.Join(AvailableFormatterNames(), ","); got != "console,csv,json" {
		t.Fatalf("AvailableFormatterNames = %s", got)
	}
	if Extension("text") != "txt" || Extension("json") != "json" {
		t.Fatalf("unexpected extensions")
	}
}

func TestGenerateReport(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateReport(&buf, buildTestReport(), "json"); err != nil {
		t.Fatalf("GenerateReport json error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected output")
	}

	err := GenerateReport(&buf, buildTestReport(), "pdf")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	if !strings.Contains(err.Error(), "console, csv, json") {
		t.Fatalf("error should list formats: %v", err)
	}
}

func TestWriteFormatted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	written, err := WriteFormatted(CSVFormatter{}, buildTestReport(), path, "csv")
	if err != nil {
		t.Fatalf("WriteFormatted error: %v", err)
	}
	if written != path {
		t.Fatalf("expected %s, got %s", path, written)
	}
	data, err := os.ReadFile(path)
	if err != nil || len(data) == 0 {
		t.Fatalf("expected file contents, err=%v", err)
	}
}
