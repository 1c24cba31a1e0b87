package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mbox/record"
)

func TestParseDateRFC822WithComma(t *testing.T) {
	d, err := record.ParseDate("Mon, 27 Feb 2023 07:30:00 +0000", "%a, %d %b %Y %H:%M:%S %z")
	require.NoError(t, err)
	ts, err := d.ToUnix()
	require.NoError(t, err)
	assert.EqualValues(t, 1677483000000/1000, ts)
}

func TestParseDateWeekdayMonthFirst(t *testing.T) {
	d, err := record.ParseDate("Fri Feb 24 15:13:20 +0000 2023", "%a %b %d %H:%M:%S %z %Y")
	require.NoError(t, err)
	ts, err := d.ToUnix()
	require.NoError(t, err)
	assert.EqualValues(t, 1677251600, ts)
}

func TestParseDateAppliesNegativeZoneByAdding(t *testing.T) {
	utc, err := record.ParseDate("24 Feb 2023 15:13:20 +0000", "%d %b %Y %H:%M:%S %z")
	require.NoError(t, err)
	utcTs, err := utc.ToUnix()
	require.NoError(t, err)

	behind, err := record.ParseDate("24 Feb 2023 15:13:20 -0500", "%d %b %Y %H:%M:%S %z")
	require.NoError(t, err)
	behindTs, err := behind.ToUnix()
	require.NoError(t, err)

	assert.EqualValues(t, utcTs+5*3600, behindTs)
}

func TestParseDateMismatchReturnsError(t *testing.T) {
	_, err := record.ParseDate("not a date", "%a, %d %b %Y %H:%M:%S %z")
	assert.ErrorIs(t, err, record.ErrDateMismatch)
}

func TestParseDateIncompleteHasNoUnixConversion(t *testing.T) {
	d, err := record.ParseDate("15:13:20", "%H:%M:%S")
	require.NoError(t, err)
	_, err = d.ToUnix()
	assert.ErrorIs(t, err, record.ErrDateIncomplete)
}

func TestParseDateAnyFallsBackToDateparse(t *testing.T) {
	ts, ok := record.ParseDateAny("2023-02-24T15:13:20Z")
	require.True(t, ok)
	assert.Greater(t, ts, int64(0))
}
