package journal

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/shiwake/internal/classify"
	"github.com/cleared-dev/shiwake/internal/model"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestService(policy Policy) *Service {
	return NewService(NewValidator(testChart()), newTestBuilder(), policy, quietLogger())
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyAbort, p)

	p, err = ParsePolicy("skip")
	require.NoError(t, err)
	assert.Equal(t, PolicySkip, p)

	_, err = ParsePolicy("ignore")
	assert.Error(t, err)
}

func TestConvert_KeepsInputOrder(t *testing.T) {
	first := validRecord()
	second := validRecord()
	second.Row = 3
	second.Date = "2024/01/04"
	second.Amount = "700"

	res, err := newTestService(PolicyAbort).Convert([]model.Record{first, second})
	require.NoError(t, err)

	require.Len(t, res.Entries, 2)
	assert.Equal(t, 2, res.Produced)
	assert.Equal(t, "5000", res.Entries[0].DebitAmount.String())
	assert.Equal(t, "700", res.Entries[1].DebitAmount.String())
}

func TestConvert_AbortReturnsNoEntries(t *testing.T) {
	bad := validRecord()
	bad.Row = 3
	bad.Amount = "-1"

	res, err := newTestService(PolicyAbort).Convert([]model.Record{validRecord(), bad})
	require.ErrorIs(t, err, ErrValidationFailed)

	assert.Empty(t, res.Entries)
	assert.Equal(t, 0, res.Produced)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, 3, res.Errors[0].Row)
	assert.ErrorIs(t, res.Errors[0], ErrInvalidAmount)
}

func TestConvert_SkipDropsInvalidRows(t *testing.T) {
	bad := validRecord()
	bad.Row = 3
	bad.Account = "雑費"

	res, err := newTestService(PolicySkip).Convert([]model.Record{validRecord(), bad})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Produced)
	assert.Equal(t, 1, res.Skipped)
	require.Len(t, res.Errors, 1)
	assert.ErrorIs(t, res.Errors[0], ErrUnknownAccount)
}

func TestConvert_ExcludedIsNotAnError(t *testing.T) {
	excluded := validRecord()
	excluded.Row = 3
	excluded.Excluded = true

	res, err := newTestService(PolicyAbort).Convert([]model.Record{validRecord(), excluded})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Produced)
	assert.Equal(t, 1, res.Excluded)
	assert.Empty(t, res.Errors)
}

func TestConvert_NoOutput(t *testing.T) {
	excluded := validRecord()
	excluded.Excluded = true

	_, err := newTestService(PolicySkip).Convert([]model.Record{excluded})
	assert.ErrorIs(t, err, ErrNoOutput)

	_, err = newTestService(PolicySkip).Convert(nil)
	assert.ErrorIs(t, err, ErrNoOutput)
}

func TestConvert_SkipWithOnlyBadRows(t *testing.T) {
	bad := validRecord()
	bad.Date = "2024/13/01"

	res, err := newTestService(PolicySkip).Convert([]model.Record{bad})
	assert.ErrorIs(t, err, ErrNoOutput)
	assert.Equal(t, 1, res.Skipped)
}

func TestGeneralize(t *testing.T) {
	e := model.NewEntry()
	e.DebitAccount = "旅費交通費"
	e.Summary = "東京駅 [インボイス:T1234567890123]"
	in := []model.Entry{e}

	out := Generalize(in, classify.Default())

	require.Len(t, out, 1)
	assert.Equal(t, "電車代・特急券代", out[0].Summary)
	assert.Equal(t, "東京駅 [インボイス:T1234567890123]", in[0].Summary)
}

func TestGeneralize_UsesCounterparties(t *testing.T) {
	e := model.NewEntry()
	e.DebitAccount = "消耗品費"
	e.CreditCounterparty = "ヨドバシカメラ"
	e.Summary = "USBケーブル"

	out := Generalize([]model.Entry{e}, classify.Default())
	assert.Equal(t, "書籍代", out[0].Summary)
}
