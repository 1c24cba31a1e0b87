package record_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mbox/header"
	"github.com/zostay/go-mbox/record"
)

func TestAssembleFillsOptionalFields(t *testing.T) {
	raw := "From a@b.com Mon Jan 1\n" +
		"Subject: hi\n" +
		"Message-ID: <abc@x>\n" +
		"Date: 24 Feb 2023 15:13:20 +0000\n" +
		"\n" +
		"body text"
	h, bodyOff := header.Parse([]byte(raw))
	body := []byte(raw)[bodyOff:]

	r := record.Assemble(h, body, 0, int64(len(raw)))

	require.NotNil(t, r.Subject)
	assert.Equal(t, "hi", *r.Subject)
	require.NotNil(t, r.MsgID)
	assert.Equal(t, "<abc@x>", *r.MsgID)
	require.NotNil(t, r.FromLine)
	assert.Equal(t, "From a@b.com Mon Jan 1", *r.FromLine)
	assert.Greater(t, r.UnixTimestamp, int64(0))
	assert.True(t, strings.HasPrefix(string(r.Preview[:]), "body text"))
}

func TestAssembleZeroTimestampWhenDateMissing(t *testing.T) {
	raw := []byte("Subject: no date\n\nx")
	h, bodyOff := header.Parse(raw)
	r := record.Assemble(h, raw[bodyOff:], 0, 1)
	assert.EqualValues(t, 0, r.UnixTimestamp)
}

func TestAssemblePreviewIsZeroPaddedWhenShort(t *testing.T) {
	h, _ := header.Parse([]byte("Subject: s\n\n"))
	r := record.Assemble(h, []byte("hi"), 0, 1)
	assert.Equal(t, byte('h'), r.Preview[0])
	assert.Equal(t, byte('i'), r.Preview[1])
	assert.Equal(t, byte(0), r.Preview[2])
	assert.Equal(t, byte(0), r.Preview[record.PreviewLen-1])
}

func TestFromAddressFallsBackToRawWhenUnparseable(t *testing.T) {
	h, _ := header.Parse([]byte("From: not an address at all !!\n\n"))
	r := record.Assemble(h, nil, 0, 0)
	require.NotNil(t, r.From)
	assert.NotEmpty(t, r.FromAddress())
}
