package journal

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/shiwake/internal/model"
)

// Columns is the Yayoi import header, in output order.
var Columns = []string{
	"識別フラグ", "伝票No", "決算", "取引日付", "借方勘定科目", "借方補助科目", "借方部門",
	"借方税区分", "借方金額", "借方税金額", "貸方勘定科目", "貸方補助科目", "貸方部門",
	"貸方税区分", "貸方金額", "貸方税金額", "摘要", "番号", "期日", "タイプ", "生成元",
	"仕訳メモ", "付箋1", "付箋2", "調整", "借方取引先名", "貸方取引先名",
}

const (
	numFields = 27

	// DateLayout is the canonical output form of 取引日付.
	DateLayout = "2006/01/02"
	// inputDateLayout also accepts single-digit months and days.
	inputDateLayout = "2006/1/2"

	colFlag         = 0
	colVoucher      = 1
	colSettlement   = 2
	colDate         = 3
	colDebitAcct    = 4
	colDebitSub     = 5
	colDebitDept    = 6
	colDebitTaxCat  = 7
	colDebitAmount  = 8
	colDebitTax     = 9
	colCreditAcct   = 10
	colCreditSub    = 11
	colCreditDept   = 12
	colCreditTaxCat = 13
	colCreditAmount = 14
	colCreditTax    = 15
	colSummary      = 16
	colNumber       = 17
	colDueDate      = 18
	colType         = 19
	colOrigin       = 20
	colMemo         = 21
	colSticky1      = 22
	colSticky2      = 23
	colAdjustment   = 24
	colDebitCparty  = 25
	colCreditCparty = 26
)

// ReadEntries reads all entries from a Yayoi CSV reader.
func ReadEntries(r io.Reader) ([]model.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var entries []model.Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteEntries writes entries to w, header first.
func WriteEntries(w io.Writer, entries []model.Entry) error {
	bw := bufio.NewWriter(w)
	if err := writeQuoted(bw, Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range entries {
		if err := writeQuoted(bw, MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return bw.Flush()
}

// AppendEntries writes entries to w without a header.
func AppendEntries(w io.Writer, entries []model.Entry) error {
	bw := bufio.NewWriter(w)
	for i, e := range entries {
		if err := writeQuoted(bw, MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return bw.Flush()
}

// writeQuoted writes one CRLF-terminated record with every field quoted.
// encoding/csv only quotes when it has to, and Yayoi expects all fields quoted.
func writeQuoted(w *bufio.Writer, fields []string) error {
	for i, f := range fields {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(f, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\r\n")
	return err
}

// MarshalEntry converts an Entry to a CSV row ([]string).
func MarshalEntry(e model.Entry) []string {
	row := make([]string, numFields)
	row[colFlag] = e.Flag
	row[colVoucher] = e.VoucherNo
	row[colSettlement] = e.Settlement
	if !e.Date.IsZero() {
		row[colDate] = e.Date.Format(DateLayout)
	}
	row[colDebitAcct] = e.DebitAccount
	row[colDebitSub] = e.DebitSubAccount
	row[colDebitDept] = e.DebitDepartment
	row[colDebitTaxCat] = e.DebitTaxCategory
	row[colDebitAmount] = e.DebitAmount.String()
	row[colDebitTax] = e.DebitTax
	row[colCreditAcct] = e.CreditAccount
	row[colCreditSub] = e.CreditSubAccount
	row[colCreditDept] = e.CreditDepartment
	row[colCreditTaxCat] = e.CreditTaxCategory
	row[colCreditAmount] = e.CreditAmount.String()
	row[colCreditTax] = e.CreditTax
	row[colSummary] = e.Summary
	row[colNumber] = e.Number
	row[colDueDate] = e.DueDate
	row[colType] = e.Type
	row[colOrigin] = e.Origin
	row[colMemo] = e.Memo
	row[colSticky1] = e.Sticky1
	row[colSticky2] = e.Sticky2
	row[colAdjustment] = e.Adjustment
	row[colDebitCparty] = e.DebitCounterparty
	row[colCreditCparty] = e.CreditCounterparty
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (model.Entry, error) {
	if len(record) != numFields {
		return model.Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	var date time.Time
	if record[colDate] != "" {
		var err error
		date, err = time.Parse(inputDateLayout, record[colDate])
		if err != nil {
			return model.Entry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
		}
	}

	debit, err := parseAmountField(record[colDebitAmount])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing debit %q: %w", record[colDebitAmount], err)
	}
	credit, err := parseAmountField(record[colCreditAmount])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing credit %q: %w", record[colCreditAmount], err)
	}

	return model.Entry{
		Flag:               record[colFlag],
		VoucherNo:          record[colVoucher],
		Settlement:         record[colSettlement],
		Date:               date,
		DebitAccount:       record[colDebitAcct],
		DebitSubAccount:    record[colDebitSub],
		DebitDepartment:    record[colDebitDept],
		DebitTaxCategory:   record[colDebitTaxCat],
		DebitAmount:        debit,
		DebitTax:           record[colDebitTax],
		CreditAccount:      record[colCreditAcct],
		CreditSubAccount:   record[colCreditSub],
		CreditDepartment:   record[colCreditDept],
		CreditTaxCategory:  record[colCreditTaxCat],
		CreditAmount:       credit,
		CreditTax:          record[colCreditTax],
		Summary:            record[colSummary],
		Number:             record[colNumber],
		DueDate:            record[colDueDate],
		Type:               record[colType],
		Origin:             record[colOrigin],
		Memo:               record[colMemo],
		Sticky1:            record[colSticky1],
		Sticky2:            record[colSticky2],
		Adjustment:         record[colAdjustment],
		DebitCounterparty:  record[colDebitCparty],
		CreditCounterparty: record[colCreditCparty],
	}, nil
}

func parseAmountField(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
