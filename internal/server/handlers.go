package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/rpgo/bucket-planner/internal/calculation"
	"github.com/rpgo/bucket-planner/internal/config"
	"github.com/rpgo/bucket-planner/internal/domain"
)

// customRequest is the body of POST /api/custom.
type customRequest struct {
	Portfolio        json.RawMessage  `json:"portfolio"`
	DisbursementAge  *decimal.Decimal `json:"disbursement_age"`
	WithdrawalPeriod *decimal.Decimal `json:"withdrawal_period"`
	InterestRate     *decimal.Decimal `json:"interest_rate"`
	BucketID         string           `json:"bucket_id,omitempty"`
}

func (c customRequest) params() (domain.CustomParams, error) {
	if c.DisbursementAge == nil || c.WithdrawalPeriod == nil || c.InterestRate == nil {
		return domain.CustomParams{}, errors.New("disbursement_age, withdrawal_period and interest_rate are required")
	}
	return domain.CustomParams{
		DisbursementAge:  *c.DisbursementAge,
		WithdrawalPeriod: *c.WithdrawalPeriod,
		InterestRate:     *c.InterestRate,
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("request body is empty")
	}
	return data, nil
}

func (s *Server) portfolioFrom(data []byte) (*domain.Portfolio, error) {
	input, err := s.parser.Parse(data, config.FormatJSON)
	if err != nil {
		return nil, err
	}
	return s.parser.Build(input)
}

func (s *Server) engine(r *http.Request) (*calculation.CalculationEngine, error) {
	ce := calculation.NewCalculationEngine()
	ce.SetLogger(s.logger)
	if raw := r.URL.Query().Get("contribution_mode"); raw != "" {
		mode := domain.ContributionMode(raw)
		if !mode.Valid() {
			return nil, fmt.Errorf("invalid contribution_mode %q (use %s or %s)", raw, domain.ContributionSingle, domain.ContributionDoubled)
		}
		ce.ContributionMode = mode
	}
	return ce, nil
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	ce, err := s.engine(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	data, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	portfolio, err := s.portfolioFrom(data)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := ce.Calculate(portfolio)
	if err != nil {
		s.logger.Errorf("calculate: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCustom(w http.ResponseWriter, r *http.Request) {
	data, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var req customRequest
	if err := json.Unmarshal(data, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Portfolio) == 0 || string(req.Portfolio) == "null" {
		writeError(w, http.StatusBadRequest, "portfolio is required")
		return
	}
	params, err := req.params()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.parser.ValidateCustomParams(params); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	portfolio, err := s.portfolioFrom(req.Portfolio)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ce := calculation.NewCalculationEngine()
	ce.SetLogger(s.logger)
	results, err := ce.CalculateCustom(portfolio, params, req.BucketID)
	switch {
	case errors.Is(err, calculation.ErrBucketNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	case err != nil:
		s.logger.Errorf("custom: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, results)
}
