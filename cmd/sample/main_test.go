package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folkv3/internal/mockregistry"
	"folkv3/internal/platform/certconfig"
	"folkv3/internal/platform/config"
	"folkv3/internal/platform/logger"
	"folkv3/internal/sample"
)

func startRegistry(t *testing.T) {
	t.Helper()
	srv := httptest.NewServer(mockregistry.NewHandler(mockregistry.Seed(time.Now), logger.Discard()).Router())
	t.Cleanup(srv.Close)

	for _, k := range certconfig.Keys {
		t.Setenv(k.Env, "")
	}
	t.Setenv("FOLKV3_HOST", strings.TrimPrefix(srv.URL, "http://"))
	t.Setenv("FOLKV3_SECURE", "false")
	t.Setenv("FOLKV3_CLIENT", "FO-TST/COM/123456/my-system")
	t.Setenv("FOLKV3_USERID", "my-system-id")
	t.Setenv("FOLKV3_REDIS_URL", "")
	t.Setenv("FOLKV3_LOG_LEVEL", "error")
}

func TestRun_AllScenarios(t *testing.T) {
	startRegistry(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-insecure", "-group", "all"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	out := stdout.String()
	assert.Equal(t, 17, strings.Count(out, "\n# ")+1)
	assert.Contains(t, out, "# testGetPersonMediumByPtal\n1 | 1157442 | 300408-559 | Karius Davidsen | ")
	assert.Contains(t, out, "# testRemovePersonsFromCommunity\nRemoved ids: [2]\n\n")
	assert.NotContains(t, out, "Error: ")
}

func TestRun_DebugLogsCallSummary(t *testing.T) {
	startRegistry(t)
	t.Setenv("FOLKV3_LOG_LEVEL", "debug")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-insecure", "-group", "medium"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	logs := stderr.String()
	assert.Contains(t, logs, `"msg":"registry calls"`)
	assert.Contains(t, logs, `"outcome":"ok"`)
	assert.Contains(t, logs, `"msg":"person cache lookups"`)
	assert.Contains(t, logs, `"miss":`)
}

func TestRun_DefaultScenarioOnly(t *testing.T) {
	startRegistry(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-insecure"}, &stdout, &stderr)

	require.Equal(t, 0, code, stderr.String())
	assert.True(t, strings.HasPrefix(stdout.String(), "# testGetPersonMediumByPtal\n"))
	assert.Equal(t, 1, strings.Count(stdout.String(), "# "))
}

func TestRun_RequiresCertificateOrInsecure(t *testing.T) {
	startRegistry(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), nil, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "pass -insecure")
}

func TestRun_CertificatePropertiesAreValidated(t *testing.T) {
	startRegistry(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"-Dfolkv3.tlsProtocol=SSLv3"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "SSLv3")
}

func TestRun_UsageErrors(t *testing.T) {
	startRegistry(t)

	for _, args := range [][]string{
		{"-group", "everything"},
		{"-insecure", "-scenario", "testDoesNotExist"},
		{"-Dbroken"},
	} {
		var stdout, stderr bytes.Buffer
		assert.Equal(t, 2, run(context.Background(), args, &stdout, &stderr), args)
	}
}

func TestSelectScenarios(t *testing.T) {
	all := sample.New(config.Heldin{}, nil).Scenarios()

	assert.Len(t, selectScenarios(all, "", ""), 1)
	assert.Len(t, selectScenarios(all, groupAll, ""), len(all))
	assert.Len(t, selectScenarios(all, groupAll, "testGetPublicChanges"), 1)
	assert.Len(t, selectScenarios(all, string(sample.GroupMedium), ""), 5)
}
