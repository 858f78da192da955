package client

import (
	"context"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobotools/kobotab/internal/pkg/utils"
)

func TestNewClient(t *testing.T) {
	t.Parallel()
	logger, _, _ := utils.NewDebugLogger()
	c := NewClient(context.Background(), logger, false)
	assert.NotNil(t, c)
}

func TestWithHostUrl(t *testing.T) {
	t.Parallel()
	logger, _, _ := utils.NewDebugLogger()
	c := NewClient(context.Background(), logger, false).WithHostUrl("https://example.com/api/")
	assert.Equal(t, "https://example.com/api/", c.HostUrl())
}

func TestSimpleRequest(t *testing.T) {
	logger, out, buffer := utils.NewDebugLogger()
	c := NewClient(context.Background(), logger, false)

	httpmock.ActivateNonDefault(c.Resty().GetClient())
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder("GET", "https://example.com", httpmock.NewStringResponder(200, `test`))

	res, err := c.R().Get("https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "test", res.String())

	require.NoError(t, out.Flush())
	assert.Contains(t, buffer.String(), "GET https://example.com | 200")
}

func TestErrorRequestLogged(t *testing.T) {
	logger, out, buffer := utils.NewDebugLogger()
	c := NewClient(context.Background(), logger, false)

	httpmock.ActivateNonDefault(c.Resty().GetClient())
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder("GET", "https://example.com", httpmock.NewErrorResponder(assert.AnError))

	_, err := c.R().Get("https://example.com")
	require.Error(t, err)

	require.NoError(t, out.Flush())
	assert.Contains(t, buffer.String(), "HTTP-ERROR")
}

func TestLoggerHidesToken(t *testing.T) {
	t.Parallel()
	logger, out, buffer := utils.NewDebugLogger()
	l := &Logger{logger}
	l.Debugf("Authorization: Token my-secret-value")

	require.NoError(t, out.Flush())
	assert.Contains(t, buffer.String(), "Token *****")
	assert.NotContains(t, buffer.String(), "my-secret-value")
}
