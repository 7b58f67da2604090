package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	client, err := New()
	require.NoError(t, err)

	assert.Equal(t, DefaultTimeout, client.Timeout)
	assert.Equal(t, UserAgent, client.UserAgent)
	assert.Equal(t, DefaultTimeout, client.HTTPClient.Timeout)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := New(WithTimeout(-1 * time.Second))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = New(WithUserAgent(""))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDo_SetsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
	}))
	defer srv.Close()

	client, err := New(WithUserAgent("test-agent/1.0"))
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)

	_ = resp.Body.Close()

	assert.Equal(t, "test-agent/1.0", gotUA)
}
