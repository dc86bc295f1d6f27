package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook-dev/tallybook/internal/config"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

const sampleStatement = `date,description,amount,reference
2025-01-03,GITHUB INC,-4.00,
2025-01-05,ACME LLC PAYMENT,1500.00,wire-991
2025-01-06,ADJUSTMENT,0.00,
`

func TestGenericParserParse(t *testing.T) {
	p := &GenericParser{}
	lines, err := p.Parse(strings.NewReader(sampleStatement))
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "GITHUB INC", lines[0].Description)
	assert.True(t, lines[0].Amount.Equal(dec("-4.00")))
	assert.Equal(t, "stmt_20250103_GITHUBINC", lines[0].Reference, "reference derived when column empty")

	assert.Equal(t, "wire-991", lines[1].Reference)
}

func TestGenericParserEmpty(t *testing.T) {
	p := &GenericParser{}
	lines, err := p.Parse(strings.NewReader("date,description,amount,reference\n"))
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestGenericParserBadRow(t *testing.T) {
	p := &GenericParser{}
	_, err := p.Parse(strings.NewReader("date,description,amount,reference\nnope,X,1.00,\n"))
	assert.Error(t, err)
}

func TestCandidates(t *testing.T) {
	p := &GenericParser{}
	lines, err := p.Parse(strings.NewReader(sampleStatement))
	require.NoError(t, err)

	mapping := config.ImportConfig{
		BankAccountID:    "1010",
		IncomeAccountID:  "4000",
		ExpenseAccountID: "5020",
	}
	cands := Candidates(lines, mapping)
	require.Len(t, cands, 2, "zero-amount lines are skipped")

	// Money out: expense debit, bank credit, positive amount.
	assert.Equal(t, "5020", cands[0].DebitAccountID)
	assert.Equal(t, "1010", cands[0].CreditAccountID)
	assert.True(t, cands[0].Amount.Equal(dec("4.00")))
	assert.Equal(t, "2025-01-03", cands[0].Date)

	// Money in: bank debit, income credit.
	assert.Equal(t, "1010", cands[1].DebitAccountID)
	assert.Equal(t, "4000", cands[1].CreditAccountID)
	assert.True(t, cands[1].Amount.Equal(dec("1500.00")))
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("generic"))
	assert.NotNil(t, r.Get("GENERIC"))
	assert.Nil(t, r.Get("unknown"))
}

func TestRegistryDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&GenericParser{})
	assert.Panics(t, func() { r.Register(&GenericParser{}) })
}

func TestScanAndMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	importDir := filepath.Join(dir, "import")
	require.NoError(t, os.MkdirAll(importDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "jan.csv"), []byte(sampleStatement), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(importDir, "notes.txt"), []byte("skip me"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "jan.csv", files[0].Name)

	require.NoError(t, MarkProcessed(dir, "jan.csv"))

	files, err = Scan(dir)
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = os.Stat(filepath.Join(dir, "import", "processed", "jan.csv"))
	assert.NoError(t, err)
}

func TestScanMissingDir(t *testing.T) {
	files, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

var _ Parser = (*GenericParser)(nil)
