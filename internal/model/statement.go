package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementLine represents a parsed bank statement row.
type StatementLine struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = money out, positive = money in
	Reference   string
}
