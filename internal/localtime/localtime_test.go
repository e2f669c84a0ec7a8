package localtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineLocal(t *testing.T) {
	cases := []struct {
		name  string
		date  string
		clock string
		want  string
		fails bool
	}{
		{name: "date and time", date: "2026-03-14", clock: "09:30", want: "2026-03-14T09:30:00"},
		{name: "time defaults to midnight", date: "2026-03-14", clock: "", want: "2026-03-14T00:00:00"},
		{name: "invalid date", date: "2026-13-40", fails: true},
		{name: "garbage date", date: "next tuesday", fails: true},
		{name: "invalid clock", date: "2026-03-14", clock: "25:99", fails: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CombineLocal(tc.date, tc.clock)
			if tc.fails {
				require.ErrorIs(t, err, ErrInvalidDate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSplitLocalRoundTrip(t *testing.T) {
	cases := []struct {
		date  string
		clock string
	}{
		{"2026-01-01", "00:00"},
		{"2026-03-14", "09:30"},
		{"2025-12-31", "23:59"},
	}

	for _, tc := range cases {
		instant, err := CombineLocal(tc.date, tc.clock)
		require.NoError(t, err)
		d, c := SplitLocal(instant)
		assert.Equal(t, tc.date, d)
		assert.Equal(t, tc.clock, c)
	}
}

func TestSplitLocalShortInput(t *testing.T) {
	d, c := SplitLocal("2026-03-14")
	assert.Equal(t, "2026-03-14", d)
	assert.Equal(t, "", c)

	d, c = SplitLocal("bad")
	assert.Equal(t, "", d)
	assert.Equal(t, "", c)
}

func TestParseLocalAcceptsMinutePrecision(t *testing.T) {
	full, err := ParseLocal("2026-03-14T09:30:00")
	require.NoError(t, err)
	short, err := ParseLocal("2026-03-14T09:30")
	require.NoError(t, err)
	assert.True(t, full.Equal(short))

	_, err = ParseLocal("not an instant")
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestDisplayFailsSoft(t *testing.T) {
	assert.Equal(t, "not a date", DisplayDate("not a date"))
	assert.Equal(t, "broken", DisplayDateTime("broken"))
	assert.Equal(t, "14 Mar 2026", DisplayDate("2026-03-14"))
	assert.Equal(t, "14 Mar 2026 09:30", DisplayDateTime("2026-03-14T09:30:00"))
}
