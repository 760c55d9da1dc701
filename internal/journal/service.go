package journal

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cleared-dev/shiwake/internal/classify"
	"github.com/cleared-dev/shiwake/internal/model"
)

// Batch failures.
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrNoOutput         = errors.New("no entries produced")
)

// Policy decides what a batch does with rows that fail validation.
type Policy string

const (
	PolicyAbort Policy = "abort" // fail the whole batch
	PolicySkip  Policy = "skip"  // drop the row and carry on
)

// ParsePolicy parses a policy name. Empty means PolicyAbort.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", PolicyAbort:
		return PolicyAbort, nil
	case PolicySkip:
		return PolicySkip, nil
	}
	return "", fmt.Errorf("unknown validation policy %q (want %q or %q)", s, PolicyAbort, PolicySkip)
}

// Result is the outcome of one Convert call.
type Result struct {
	Entries  []model.Entry
	Produced int
	Skipped  int // rows rejected by validation
	Excluded int // rows marked 対象外
	Errors   []*RowError
}

// Service runs a batch of records through validation and entry building.
type Service struct {
	validator *Validator
	builder   *Builder
	policy    Policy
	log       logrus.FieldLogger
}

// NewService creates a journal Service. A nil logger uses the logrus
// standard logger.
func NewService(v *Validator, b *Builder, policy Policy, log logrus.FieldLogger) *Service {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if policy == "" {
		policy = PolicyAbort
	}
	return &Service{validator: v, builder: b, policy: policy, log: log}
}

// Convert validates and builds every record, in input order. Under
// PolicyAbort a failed batch returns no entries.
func (s *Service) Convert(records []model.Record) (Result, error) {
	var res Result
	for _, rec := range records {
		tx, err := s.validator.Validate(rec)
		if err != nil {
			if errors.Is(err, ErrExcluded) {
				res.Excluded++
				s.log.WithField("row", rec.Row).Debug("excluded row")
				continue
			}
			var rowErr *RowError
			if !errors.As(err, &rowErr) {
				return Result{}, err
			}
			res.Skipped++
			res.Errors = append(res.Errors, rowErr)
			s.log.WithFields(logrus.Fields{
				"row":   rowErr.Row,
				"field": rowErr.Field,
				"value": rowErr.Value,
			}).Warn(rowErr.Err)
			continue
		}

		e := s.builder.Build(tx)
		if err := CheckBalance(e); err != nil {
			return Result{}, fmt.Errorf("row %d: %w", rec.Row, err)
		}
		res.Entries = append(res.Entries, e)
	}
	res.Produced = len(res.Entries)

	s.log.WithFields(logrus.Fields{
		"produced": res.Produced,
		"skipped":  res.Skipped,
		"excluded": res.Excluded,
	}).Info("converted records")

	if len(res.Errors) > 0 && s.policy == PolicyAbort {
		res.Entries = nil
		res.Produced = 0
		return res, fmt.Errorf("%w: %d invalid row(s)", ErrValidationFailed, len(res.Errors))
	}
	if res.Produced == 0 {
		return res, ErrNoOutput
	}
	return res, nil
}

// Generalize rewrites the 摘要 of each entry through c, using the debit
// account and both counterparty names. The input slice is not modified.
func Generalize(entries []model.Entry, c *classify.Classifier) []model.Entry {
	out := make([]model.Entry, len(entries))
	for i, e := range entries {
		e.Summary = c.Classify(classify.Input{
			Description: e.Summary,
			Account:     e.DebitAccount,
			Creditor:    e.CreditCounterparty,
			Debtor:      e.DebitCounterparty,
		})
		out[i] = e
	}
	return out
}
