package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/bucket-planner/internal/domain"
	"github.com/rpgo/bucket-planner/pkg/dateutil"
	dec "github.com/rpgo/bucket-planner/pkg/decimal"
)

// Supported portfolio file formats
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"
)

var (
	minPersonAge = decimal.NewFromInt(18)
	maxPersonAge = decimal.NewFromInt(100)
)

// InputParser turns portfolio files and loosely typed input into validated portfolios
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// FormatFromFilename picks a format from the file extension, defaulting to YAML
func FormatFromFilename(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// LoadFromFile loads, normalizes and validates a portfolio from a YAML, JSON or TOML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Portfolio, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	input, err := ip.Parse(data, FormatFromFilename(filename))
	if err != nil {
		return nil, err
	}

	return ip.Build(input)
}

// Parse decodes raw portfolio data without applying defaults
func (ip *InputParser) Parse(data []byte, format string) (*PortfolioInput, error) {
	var input PortfolioInput
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &input); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&input); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &input); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}
	return &input, nil
}

// Build normalizes input and validates the resulting portfolio
func (ip *InputParser) Build(input *PortfolioInput) (*domain.Portfolio, error) {
	portfolio, err := ip.Normalize(input)
	if err != nil {
		return nil, fmt.Errorf("input normalization failed: %w", err)
	}
	if err := ip.ValidatePortfolio(portfolio); err != nil {
		return nil, fmt.Errorf("portfolio validation failed: %w", err)
	}
	return portfolio, nil
}

// Normalize applies defaults and produces a strictly typed portfolio.
// Missing people are a structural error; everything else has a default.
func (ip *InputParser) Normalize(input *PortfolioInput) (*domain.Portfolio, error) {
	if input == nil {
		return nil, fmt.Errorf("no portfolio provided")
	}

	person1, err := ip.normalizePerson("person1", input.Person1)
	if err != nil {
		return nil, err
	}
	person2, err := ip.normalizePerson("person2", input.Person2)
	if err != nil {
		return nil, err
	}

	defaultRate := orDefault(input.DefaultRealRate, DefaultRealRate)
	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	portfolio := &domain.Portfolio{
		Person1:             person1,
		Person2:             person2,
		MonthlyExpenses:     orDefault(input.MonthlyExpenses, decimal.Zero),
		DefaultRealRate:     defaultRate,
		InflationAssumption: orDefault(input.InflationAssumption, decimal.Zero),
		Currency:            currency,
		Buckets:             make([]domain.Bucket, 0, len(input.Buckets)),
	}

	for _, bi := range input.Buckets {
		portfolio.Buckets = append(portfolio.Buckets, normalizeBucket(bi, defaultRate))
	}

	return portfolio, nil
}

func (ip *InputParser) normalizePerson(key string, in *PersonInput) (domain.Person, error) {
	if in == nil {
		return domain.Person{}, fmt.Errorf("%s details are required", key)
	}
	person := domain.Person{Name: strings.TrimSpace(in.Name)}
	switch {
	case in.Age != nil:
		person.Age = *in.Age
	case in.BirthDate != "":
		birth, err := time.Parse("2006-01-02", in.BirthDate)
		if err != nil {
			return domain.Person{}, fmt.Errorf("%s: invalid birth date %q: %w", key, in.BirthDate, err)
		}
		person.Age = dateutil.FractionalAge(birth, nowFunc())
	default:
		return domain.Person{}, fmt.Errorf("%s: age or birth_date is required", key)
	}
	return person, nil
}

func normalizeBucket(in BucketInput, defaultRate decimal.Decimal) domain.Bucket {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		id = uuid.NewString()
	}
	category := domain.Category(strings.ToLower(strings.TrimSpace(in.Category)))
	if category == "" {
		category = domain.CategoryPrivate
	}
	owner := domain.Owner(strings.ToLower(strings.TrimSpace(in.Owner)))
	if owner == "" {
		owner = domain.OwnerPerson1
	}

	return domain.Bucket{
		ID:                  id,
		Name:                strings.TrimSpace(in.Name),
		Category:            category,
		Location:            strings.TrimSpace(in.Location),
		Owner:               owner,
		CurrentValue:        orDefault(in.CurrentValue, decimal.Zero),
		RealRate:            orDefault(in.RealRate, defaultRate),
		AccessAge:           orDefault(in.AccessAge, DefaultAccessAge),
		FullBenefitAge:      orDefault(in.FullBenefitAge, DefaultFullBenefitAge),
		MonthlyContribution: orDefault(in.MonthlyContribution, decimal.Zero),
		ContributionEndAge:  orDefault(in.ContributionEndAge, DefaultContributionEndAge),
		EarlyPenalty:        orDefault(in.EarlyPenalty, decimal.Zero),
		Notes:               in.Notes,
	}
}

func orDefault(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v == nil {
		return def
	}
	return *v
}

// ValidatePortfolio validates a normalized portfolio before it reaches the engine
func (ip *InputParser) ValidatePortfolio(portfolio *domain.Portfolio) error {
	if err := ip.validatePerson(portfolio.Person1); err != nil {
		return fmt.Errorf("person1 validation failed: %w", err)
	}
	if err := ip.validatePerson(portfolio.Person2); err != nil {
		return fmt.Errorf("person2 validation failed: %w", err)
	}
	if portfolio.MonthlyExpenses.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly expenses cannot be negative")
	}
	if portfolio.DefaultRealRate.LessThanOrEqual(dec.Hundred.Neg()) {
		return fmt.Errorf("default real rate must be greater than -100%%")
	}

	seen := make(map[string]bool, len(portfolio.Buckets))
	for i, b := range portfolio.Buckets {
		if seen[b.ID] {
			return fmt.Errorf("bucket %d: duplicate id %q", i, b.ID)
		}
		seen[b.ID] = true
		if err := ip.validateBucket(&b); err != nil {
			return fmt.Errorf("bucket %d (%s) validation failed: %w", i, b.Name, err)
		}
	}

	return nil
}

// validatePerson validates a single person
func (ip *InputParser) validatePerson(p domain.Person) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Age.LessThan(minPersonAge) || p.Age.GreaterThan(maxPersonAge) {
		return fmt.Errorf("age must be between 18 and 100, got %s", p.Age)
	}
	return nil
}

// validateBucket validates a single bucket
func (ip *InputParser) validateBucket(b *domain.Bucket) error {
	if b.Name == "" {
		return fmt.Errorf("bucket name is required")
	}
	if !b.Category.Valid() {
		return fmt.Errorf("category must be 'private' or 'public'")
	}
	if !b.Owner.Valid() {
		return fmt.Errorf("owner must be 'person1', 'person2' or 'joint'")
	}
	if b.CurrentValue.LessThan(decimal.Zero) {
		return fmt.Errorf("current value cannot be negative")
	}
	if b.MonthlyContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	if b.RealRate.LessThanOrEqual(dec.Hundred.Neg()) {
		return fmt.Errorf("real rate must be greater than -100%%")
	}
	if b.EarlyPenalty.LessThan(decimal.Zero) || b.EarlyPenalty.GreaterThan(dec.Hundred) {
		return fmt.Errorf("early penalty must be between 0 and 100")
	}
	if b.AccessAge.LessThan(decimal.Zero) || b.FullBenefitAge.LessThan(decimal.Zero) || b.ContributionEndAge.LessThan(decimal.Zero) {
		return fmt.Errorf("ages cannot be negative")
	}
	return nil
}

// ValidateCustomParams checks custom projection overrides
func (ip *InputParser) ValidateCustomParams(params domain.CustomParams) error {
	if params.DisbursementAge.LessThan(decimal.Zero) || params.DisbursementAge.GreaterThan(maxPersonAge) {
		return fmt.Errorf("disbursement age must be between 0 and 100")
	}
	if params.WithdrawalPeriod.LessThan(decimal.Zero) {
		return fmt.Errorf("withdrawal period cannot be negative")
	}
	if params.InterestRate.LessThanOrEqual(dec.Hundred.Neg()) {
		return fmt.Errorf("interest rate must be greater than -100%%")
	}
	return nil
}
