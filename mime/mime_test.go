package mime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mbox/mime"
)

func TestBoundaryQuoted(t *testing.T) {
	b, err := mime.Boundary(`multipart/alternative; boundary="abc123"`)
	require.NoError(t, err)
	assert.Equal(t, "abc123", b)
}

func TestBoundaryBareStripsCR(t *testing.T) {
	b, err := mime.Boundary("multipart/alternative; boundary=abc123\r")
	require.NoError(t, err)
	assert.Equal(t, "abc123", b)
}

func TestBoundaryMissing(t *testing.T) {
	_, err := mime.Boundary("text/plain")
	assert.ErrorIs(t, err, mime.ErrNoBoundary)
}

func TestWalkFindsSectionsAndTerminator(t *testing.T) {
	body := "preamble\n" +
		"--B\n" +
		"Content-Type: text/plain\n" +
		"\n" +
		"part one\n" +
		"--B\n" +
		"Content-Type: text/html\n" +
		"\n" +
		"<p>part two</p>\n" +
		"--B--\n" +
		"epilogue"

	sections, status := mime.Walk([]byte(body), "B")
	require.Equal(t, mime.StatusEOM, status)
	require.Len(t, sections, 2)

	ct1, ok := sections[0].Headers.Get("Content-Type")
	require.True(t, ok)
	assert.Equal(t, "text/plain", ct1)

	ct2, ok := sections[1].Headers.Get("Content-Type")
	require.True(t, ok)
	assert.Equal(t, "text/html", ct2)
}

func TestWalkIncompleteWithoutTerminator(t *testing.T) {
	body := "--B\nContent-Type: text/plain\n\npart one with no end"
	_, status := mime.Walk([]byte(body), "B")
	assert.Equal(t, mime.StatusIncomplete, status)
}
