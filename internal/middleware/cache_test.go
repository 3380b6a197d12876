package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A response built from several writes where an early write lands
// exactly on the limit must still be counted in full, so the
// cacheability check sees the true size and skips it.
func TestCaptureWriterCountsWritesPastLimit(t *testing.T) {
	cw := &captureWriter{ResponseWriter: httptest.NewRecorder(), limit: 4}

	_, err := cw.Write([]byte("abcd"))
	assert.NoError(t, err)
	_, err = cw.Write([]byte("ef"))
	assert.NoError(t, err)

	assert.Equal(t, int64(6), cw.size)
	assert.True(t, cw.size > cw.limit)
	assert.Equal(t, "abcd", cw.buf.String(), "buffer stops at the limit")
}

func TestCaptureWriterSingleOversizedWrite(t *testing.T) {
	cw := &captureWriter{ResponseWriter: httptest.NewRecorder(), limit: 4}

	_, err := cw.Write([]byte("abcdef"))
	assert.NoError(t, err)

	assert.Equal(t, int64(6), cw.size)
	assert.Equal(t, "abcd", cw.buf.String())
}

// limit <= 0 disables the cap: everything is buffered and counted.
func TestCaptureWriterUnlimited(t *testing.T) {
	cw := &captureWriter{ResponseWriter: httptest.NewRecorder()}

	_, err := cw.Write([]byte("abc"))
	assert.NoError(t, err)
	_, err = cw.Write([]byte("def"))
	assert.NoError(t, err)

	assert.Equal(t, int64(6), cw.size)
	assert.Equal(t, "abcdef", cw.buf.String())
}
