package importer

import (
	"fmt"
	"io"

	"github.com/cleared-dev/shiwake/internal/model"
)

// Receipt CSV columns, as written by the receipt recognition step.
const (
	receiptColExcluded = "対象外"
	receiptColDate     = "発生日"
	receiptColParty    = "取引先"
	receiptColAccount  = "勘定科目"
	receiptColGross    = "税込金額"
	receiptColTax      = "消費税額"
	receiptColMemo     = "摘要"
	receiptColInvoice  = "インボイス登録番号"
)

// ReceiptParser parses receipt CSVs (one receipt per row, cash settled).
type ReceiptParser struct{}

// Format returns the parser name.
func (p *ReceiptParser) Format() string { return string(model.SourceReceipt) }

// Parse reads a receipt CSV. Rows with anything in 対象外 are returned with
// Excluded set so the caller can count them.
func (p *ReceiptParser) Parse(r io.Reader) ([]model.Record, error) {
	t, err := readTable(r, receiptColDate, receiptColAccount, receiptColGross)
	if err != nil {
		return nil, fmt.Errorf("reading receipt CSV: %w", err)
	}

	var recs []model.Record
	for i, row := range t.rows {
		if isBlank(row) {
			continue
		}
		recs = append(recs, model.Record{
			Row:           i + 2,
			Source:        model.SourceReceipt,
			Date:          t.get(row, receiptColDate),
			Account:       t.get(row, receiptColAccount),
			Counterparty:  t.get(row, receiptColParty),
			Description:   t.get(row, receiptColMemo),
			Amount:        stripCommas(t.get(row, receiptColGross)),
			Flow:          model.FlowAuto,
			Tax:           stripCommas(t.get(row, receiptColTax)),
			InvoiceNumber: t.get(row, receiptColInvoice),
			Excluded:      t.get(row, receiptColExcluded) != "",
		})
	}
	return recs, nil
}

func isBlank(row []string) bool {
	for _, f := range row {
		if f != "" {
			return false
		}
	}
	return true
}
