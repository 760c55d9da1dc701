package importer

import (
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/shiwake/internal/model"
)

// Bank passbook export columns.
const (
	bankColDate     = "年月日"
	bankColDetail   = "お取り扱い内容"
	bankColWithdraw = "お引出し"
	bankColDeposit  = "お預入れ"
	bankColLabel    = "ラベル"
)

// BankParser parses bank passbook CSV exports with a ラベル column naming
// the account of each row.
type BankParser struct{}

// Format returns the parser name.
func (p *BankParser) Format() string { return string(model.SourceBank) }

// Parse reads a passbook CSV and returns one record per transaction row.
// Blank rows and repeated header rows are skipped.
func (p *BankParser) Parse(r io.Reader) ([]model.Record, error) {
	t, err := readTable(r, bankColDate, bankColDetail, bankColWithdraw, bankColDeposit, bankColLabel)
	if err != nil {
		return nil, fmt.Errorf("reading bank CSV: %w", err)
	}

	var recs []model.Record
	for i, row := range t.rows {
		d := t.get(row, bankColDate)
		if d == "" || d == bankColDate {
			continue
		}

		detail := t.get(row, bankColDetail)
		rec := model.Record{
			Row:          i + 2,
			Source:       model.SourceBank,
			Date:         d,
			Account:      t.get(row, bankColLabel),
			Counterparty: detail,
			Description:  detail,
		}

		withdrawal := stripCommas(t.get(row, bankColWithdraw))
		if withdrawal != "" && withdrawal != "0" {
			rec.Flow = model.FlowOut
			rec.Amount = withdrawal
		} else {
			rec.Flow = model.FlowIn
			rec.Amount = stripCommas(t.get(row, bankColDeposit))
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func stripCommas(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
