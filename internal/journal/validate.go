package journal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallybook-dev/tallybook/internal/model"
)

// Rule identifies which validation rule a candidate entry violated.
type Rule string

const (
	MissingDescription Rule = "missing-description"
	InvalidAmount      Rule = "invalid-amount"
	UnknownAccount     Rule = "unknown-account"
	SameAccount        Rule = "same-account"
	InvalidDate        Rule = "invalid-date"
)

// ValidationError describes a single rule violation.
type ValidationError struct {
	Rule        Rule
	Description string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Rule, e.Description)
}

// AsValidationError unwraps err into a *ValidationError, or nil.
func AsValidationError(err error) *ValidationError {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}

// DateFormat is the accepted candidate date layout.
const DateFormat = "2006-01-02"

// Candidate is a proposed posting as submitted by a caller. Date arrives as
// an unparsed string so date validation is part of acceptance.
type Candidate struct {
	Date            string
	Description     string
	DebitAccountID  string
	CreditAccountID string
	Amount          decimal.Decimal
	Reference       string
}

// AccountResolver tests whether an account ID exists in the chart of accounts.
type AccountResolver interface {
	Exists(id string) bool
}

// Validate checks a candidate against the posting rules, in order, and
// reports the first violation. On success it returns the entry ready to
// append, with a zero ID; the posting gateway assigns IDs under its writer
// lock. Validate has no side effects.
//
// Rules, checked in this order:
//  1. description present and non-empty
//  2. amount positive and quantized to two decimal places
//  3. both account references exist
//  4. debit and credit accounts differ
//  5. date parses as a calendar date
func Validate(c Candidate, accounts AccountResolver) (model.Entry, error) {
	if strings.TrimSpace(c.Description) == "" {
		return model.Entry{}, &ValidationError{
			Rule:        MissingDescription,
			Description: "description is required",
		}
	}

	if !c.Amount.IsPositive() {
		return model.Entry{}, &ValidationError{
			Rule:        InvalidAmount,
			Description: fmt.Sprintf("amount must be positive, got %s", c.Amount),
		}
	}
	cents := c.Amount.Mul(decimal.NewFromInt(100))
	if !cents.Equal(cents.Floor()) {
		return model.Entry{}, &ValidationError{
			Rule:        InvalidAmount,
			Description: fmt.Sprintf("amount %s has more than 2 decimal places", c.Amount),
		}
	}

	if !accounts.Exists(c.DebitAccountID) {
		return model.Entry{}, &ValidationError{
			Rule:        UnknownAccount,
			Description: fmt.Sprintf("unknown debit account %q", c.DebitAccountID),
		}
	}
	if !accounts.Exists(c.CreditAccountID) {
		return model.Entry{}, &ValidationError{
			Rule:        UnknownAccount,
			Description: fmt.Sprintf("unknown credit account %q", c.CreditAccountID),
		}
	}

	if c.DebitAccountID == c.CreditAccountID {
		return model.Entry{}, &ValidationError{
			Rule:        SameAccount,
			Description: fmt.Sprintf("debit and credit account are both %q", c.DebitAccountID),
		}
	}

	date, err := time.Parse(DateFormat, c.Date)
	if err != nil {
		return model.Entry{}, &ValidationError{
			Rule:        InvalidDate,
			Description: fmt.Sprintf("date %q is not a valid YYYY-MM-DD date", c.Date),
		}
	}

	return model.Entry{
		Date:            date,
		Description:     c.Description,
		DebitAccountID:  c.DebitAccountID,
		CreditAccountID: c.CreditAccountID,
		Amount:          c.Amount,
		Reference:       c.Reference,
	}, nil
}
