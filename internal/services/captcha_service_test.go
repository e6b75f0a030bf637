package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptchaVerifierOpenWhenUnconfigured(t *testing.T) {
	verifier := &CaptchaVerifier{client: &http.Client{Timeout: captchaTimeout}}
	assert.True(t, verifier.Verify(context.Background(), ""))
	assert.True(t, verifier.Verify(context.Background(), "anything"))
}

func TestCaptchaVerifierProviderDecides(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "secret-key", r.PostForm.Get("secret"))

		if r.PostForm.Get("response") == "good-token" {
			w.Write([]byte(`{"success": true}`))
			return
		}
		w.Write([]byte(`{"success": false}`))
	}))
	defer server.Close()

	verifier := &CaptchaVerifier{
		client:          server.Client(),
		recaptchaSecret: "secret-key",
		recaptchaURL:    server.URL,
	}

	assert.True(t, verifier.Verify(context.Background(), "good-token"))
	assert.False(t, verifier.Verify(context.Background(), "bad-token"))
}

func TestCaptchaVerifierTreatsTransportFailureAsRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	}))
	server.Close() // connection refused from here on

	verifier := &CaptchaVerifier{
		client:          &http.Client{Timeout: time.Second},
		recaptchaSecret: "secret-key",
		recaptchaURL:    server.URL,
	}

	assert.False(t, verifier.Verify(context.Background(), "good-token"))
}

func TestCaptchaVerifierMalformedProviderResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	verifier := &CaptchaVerifier{
		client:         server.Client(),
		hcaptchaSecret: "secret-key",
		hcaptchaURL:    server.URL,
	}

	assert.False(t, verifier.Verify(context.Background(), "token"))
}
