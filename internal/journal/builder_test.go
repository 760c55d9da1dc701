package journal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/shiwake/internal/model"
)

var (
	acctComms      = model.Account{Name: "通信費", Type: model.AccountTypeExpense}
	acctEntertain  = model.Account{Name: "接待交際費", Type: model.AccountTypeExpense}
	acctReceivable = model.Account{Name: "売掛金", Type: model.AccountTypeAsset}
	acctSales      = model.Account{Name: "売上高", Type: model.AccountTypeRevenue}
)

func newTestBuilder() *Builder {
	return NewBuilder(DefaultOptions(), nil, nil)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuild_BankWithdrawal(t *testing.T) {
	e := newTestBuilder().Build(model.Transaction{
		Source:       model.SourceBank,
		Date:         date(2024, 1, 5),
		Account:      acctComms,
		Amount:       decimal.NewFromInt(5000),
		Flow:         model.FlowOut,
		Counterparty: "ｿﾌﾄﾊﾞﾝｸ",
		Description:  "ｿﾌﾄﾊﾞﾝｸ",
	})

	assert.Equal(t, model.DefaultFlag, e.Flag)
	assert.Equal(t, model.DefaultSticky1, e.Sticky1)
	assert.Equal(t, "通信費", e.DebitAccount)
	assert.Equal(t, "普通預金", e.CreditAccount)
	assert.True(t, e.DebitAmount.Equal(decimal.NewFromInt(5000)))
	assert.True(t, e.Balanced())
	assert.Equal(t, "ソフトバンク", e.DebitCounterparty)
	assert.Equal(t, "ソフトバンク", e.CreditCounterparty)
	assert.Equal(t, "ソフトバンク", e.Summary)
	assert.Empty(t, e.DebitSubAccount)
	assert.Empty(t, e.CreditSubAccount)
}

func TestBuild_BankDepositInvertsSides(t *testing.T) {
	e := newTestBuilder().Build(model.Transaction{
		Source:      model.SourceBank,
		Date:        date(2024, 1, 5),
		Account:     acctSales,
		Amount:      decimal.NewFromInt(100000),
		Flow:        model.FlowIn,
		Description: "振込 ABC",
	})

	assert.Equal(t, "普通預金", e.DebitAccount)
	assert.Equal(t, "売上高", e.CreditAccount)
	assert.True(t, e.Balanced())
}

func TestBuild_ReceivableUsesShortName(t *testing.T) {
	e := newTestBuilder().Build(model.Transaction{
		Source:       model.SourceBank,
		Date:         date(2024, 2, 29),
		Account:      acctReceivable,
		Amount:       decimal.NewFromInt(330000),
		Flow:         model.FlowIn,
		Counterparty: "ｶ)ﾐﾕｰﾌﾟ",
		Description:  "ｶ)ﾐﾕｰﾌﾟ",
	})

	assert.Equal(t, "普通預金", e.DebitAccount)
	assert.Equal(t, "売掛金", e.CreditAccount)
	assert.Equal(t, "株式会社miup", e.DebitCounterparty)
	assert.Equal(t, "株式会社miup", e.DebitSubAccount)
	assert.Empty(t, e.CreditCounterparty)
	assert.Empty(t, e.CreditSubAccount)
	assert.Equal(t, "株式会社 miup", e.Summary)
}

func TestBuild_ReceivableWithoutShortNameUsesLabel(t *testing.T) {
	e := newTestBuilder().Build(model.Transaction{
		Source:       model.SourceBank,
		Date:         date(2024, 3, 1),
		Account:      acctReceivable,
		Amount:       decimal.NewFromInt(1000),
		Flow:         model.FlowIn,
		Counterparty: "ﾔﾏﾀﾞｼｮｳｼﾞ",
	})

	assert.Equal(t, "ヤマダショウジ", e.DebitCounterparty)
	assert.Equal(t, "ヤマダショウジ", e.DebitSubAccount)
	assert.Empty(t, e.CreditCounterparty)
}

func TestBuild_ReceiptExpenseWithTaxAndInvoice(t *testing.T) {
	e := newTestBuilder().Build(model.Transaction{
		Source:        model.SourceReceipt,
		Date:          date(2024, 4, 10),
		Account:       acctEntertain,
		Amount:        decimal.NewFromInt(5500),
		Flow:          model.FlowAuto,
		Tax:           "500",
		Counterparty:  "カラオケ館",
		Description:   "接待でカラオケと飲食",
		InvoiceNumber: "T1234567890123",
	})

	assert.Equal(t, "接待交際費", e.DebitAccount)
	assert.Equal(t, "500", e.DebitTax)
	assert.Equal(t, "現金", e.CreditAccount)
	assert.Empty(t, e.CreditTax)
	assert.Equal(t, "接待飲食費 [インボイス:T1234567890123]", e.Summary)
	assert.Equal(t, "カラオケ館", e.DebitCounterparty)
}

func TestBuild_ReceiptRevenueGoesOnCredit(t *testing.T) {
	e := newTestBuilder().Build(model.Transaction{
		Source:      model.SourceReceipt,
		Date:        date(2024, 4, 10),
		Account:     acctSales,
		Amount:      decimal.NewFromInt(20000),
		Flow:        model.FlowAuto,
		Tax:         "1818",
		Description: "講演謝礼",
	})

	assert.Equal(t, "現金", e.DebitAccount)
	assert.Empty(t, e.DebitTax)
	assert.Equal(t, "売上高", e.CreditAccount)
	assert.Equal(t, "1818", e.CreditTax)
}

func TestBuild_TruncatesCounterparty(t *testing.T) {
	e := newTestBuilder().Build(model.Transaction{
		Source:       model.SourceBank,
		Date:         date(2024, 1, 5),
		Account:      acctComms,
		Amount:       decimal.NewFromInt(1),
		Flow:         model.FlowOut,
		Counterparty: "とてもながいとりひきさきのなまえです",
	})

	assert.Equal(t, "とてもながいとりひきさきのなま", e.DebitCounterparty)
	assert.Equal(t, 15, len([]rune(e.CreditCounterparty)))
}

func TestBuild_GeneralizeSummaryOff(t *testing.T) {
	opts := DefaultOptions()
	opts.GeneralizeSummary = false
	b := NewBuilder(opts, nil, nil)

	e := b.Build(model.Transaction{
		Source:      model.SourceReceipt,
		Date:        date(2024, 4, 10),
		Account:     acctEntertain,
		Amount:      decimal.NewFromInt(3000),
		Flow:        model.FlowAuto,
		Description: "「高級ショコラ」の詰め合わせ",
	})

	assert.Equal(t, "「高級ショコラ」の詰め合わせ", e.Summary)
}

func TestBuild_AlwaysBalanced(t *testing.T) {
	b := newTestBuilder()
	for _, flow := range []model.Flow{model.FlowOut, model.FlowIn, model.FlowAuto} {
		for _, acct := range []model.Account{acctComms, acctReceivable, acctSales} {
			e := b.Build(model.Transaction{
				Source:  model.SourceBank,
				Date:    date(2024, 1, 1),
				Account: acct,
				Amount:  decimal.NewFromInt(1234),
				Flow:    flow,
			})
			require.NoError(t, CheckBalance(e), "%s/%s", flow, acct.Name)
		}
	}
}
