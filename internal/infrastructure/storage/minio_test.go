package storage

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteHost(t *testing.T) {
	u, err := url.Parse("http://minio:9000/candidate-audio/abc/question1-1.webm?X-Amz-Signature=sig")
	require.NoError(t, err)

	assert.Equal(t, u.String(), rewriteHost(u, ""))
	assert.Equal(t,
		"https://media.example.com/candidate-audio/abc/question1-1.webm?X-Amz-Signature=sig",
		rewriteHost(u, "https://media.example.com"))
}
