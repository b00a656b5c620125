package goldledger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DasilvaKareem/wog-mmorpg-sub004/internal/goldledger"
)

func TestAvailableGold(t *testing.T) {
	l := goldledger.New(zerolog.Nop())

	assert.Equal(t, int64(1000), l.AvailableGold("0xabc", 1000))

	l.RecordSpend("0xabc", 400)
	assert.Equal(t, int64(600), l.AvailableGold("0xabc", 1000))

	l.RecordSpend("0xabc", 700)
	assert.Equal(t, int64(0), l.AvailableGold("0xabc", 1000), "available never goes negative")
}

func TestRecordRefundFloorsAtZero(t *testing.T) {
	l := goldledger.New(zerolog.Nop())
	l.RecordSpend("0xabc", 100)
	l.RecordRefund("0xabc", 500)
	assert.Equal(t, int64(0), l.Reserved("0xabc"))
}

func TestReconcileResetsDrift(t *testing.T) {
	l := goldledger.New(zerolog.Nop())
	l.RecordSpend("0xabc", 5000)
	require.Equal(t, int64(5000), l.Reserved("0xabc"))

	l.Reconcile("0xabc", 10000)
	assert.Equal(t, int64(5000), l.Reserved("0xabc"), "no drift, reserved untouched")

	l.Reconcile("0xabc", 1000)
	assert.Equal(t, int64(0), l.Reserved("0xabc"), "reserved exceeded on-chain, reset")
}

func TestFormatCopper(t *testing.T) {
	cases := map[int64]string{
		0:       "0c",
		56:      "56c",
		3456:    "34s 56c",
		123456:  "12g 34s 56c",
		100000:  "10g",
		100:     "1s",
	}
	for copper, want := range cases {
		assert.Equal(t, want, goldledger.FormatCopper(copper), "copper=%d", copper)
	}
}

func TestParseCopperRoundTrip(t *testing.T) {
	for _, copper := range []int64{0, 1, 99, 100, 3456, 123456, 9999999} {
		s := goldledger.FormatCopper(copper)
		got, err := goldledger.ParseCopper(s)
		require.NoError(t, err)
		assert.Equal(t, copper, got, "round trip for %q", s)
	}
}

func TestParseCopperRejectsMalformed(t *testing.T) {
	_, err := goldledger.ParseCopper("12x")
	assert.Error(t, err)
}

func TestFormatGoldStringScenario3(t *testing.T) {
	assert.Equal(t, "10g 5s 25c", goldledger.FormatGoldString(10.0525))
	assert.Equal(t, "25c", goldledger.FormatGoldString(0.0025))
	assert.Equal(t, "0c", goldledger.FormatGoldString(0))

	gold, err := goldledger.ParseGoldString("10g 25c")
	require.NoError(t, err)
	assert.InDelta(t, 10.0025, gold, 0.00001)
}
