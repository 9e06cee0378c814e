package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "0 B", FormatFileSize(0))
	assert.Equal(t, "1.0 kB", FormatFileSize(1000))
	assert.Equal(t, "1.0 MB", FormatFileSize(1_000_000))
	assert.Equal(t, "0 B", FormatFileSize(-5))
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "/short", TruncatePath("/short", 20))
	assert.Equal(t, "...e/user/deep/dir", TruncatePath("/home/user/deep/dir", 18))
	assert.Equal(t, "...", TruncatePath("/home/user", 3))
}
