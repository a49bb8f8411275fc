package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiErrorFromEnvelope(t *testing.T) {
	body := []byte(`{"status":404,"message":"Product not found","code":"NOT_FOUND"}`)

	err := apiError(404, body)
	assert.EqualError(t, err, "api: Product not found (NOT_FOUND)")
}

func TestApiErrorFallsBackToStatus(t *testing.T) {
	err := apiError(502, []byte("<html>bad gateway</html>"))
	assert.EqualError(t, err, "api: unexpected status 502")
}
