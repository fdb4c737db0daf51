package greeter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBannerPlain(t *testing.T) {
	SetPlain(true)
	defer SetPlain(false)

	var buf bytes.Buffer
	require.NoError(t, Banner(&buf, "Hello"))
	assert.Equal(t, "Hello\n", buf.String())
	assert.Contains(t, Welcome(), "To the CRO generator.")
}

func TestBannerDecorated(t *testing.T) {
	SetPlain(false)

	out := BannerString("Hi")
	assert.NotEmpty(t, out)
	assert.NotEqual(t, "Hi\n", out)
}
