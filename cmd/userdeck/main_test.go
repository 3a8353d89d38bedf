package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"userdeck/internal/config"
	"userdeck/internal/randomuser"
)

const profileJSON = `{"name":{"title":"Dr","first":"Grace","last":"Hopper"},"location":{"street":{"number":1,"name":"Navy Way"},"city":"Arlington","state":"VA","country":"United States"},"dob":{"age":85},"email":"grace@example.com","cell":"555-0100","login":{"uuid":"%s"}}`

// profileServer answers every request with one profile whose uuid counts
// requests.
func profileServer(t *testing.T) *httptest.Server {
	t.Helper()
	var mu sync.Mutex
	n := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		n++
		id := fmt.Sprintf("p-%d", n)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"results":[`+profileJSON+`]}`, id)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setup(t *testing.T, baseURL string) {
	t.Helper()
	logger = zap.NewNop()
	cfg = config.DefaultConfig()
	cfg.Endpoint.BaseURL = baseURL
	cfg.UI.Theme = "light"

	fetchCount, fetchBatches, fetchFormat = 10, 1, "table"
	t.Cleanup(func() {
		fetchCount, fetchBatches, fetchFormat = 10, 1, "table"
		configPath, endpoint, logFile, configForce = "", "", "", false
	})
}

func outputOf(t *testing.T, run func(*cobra.Command, []string) error) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	err := run(cmd, nil)
	return buf.String(), err
}

func TestRunFetch_Table(t *testing.T) {
	srv := profileServer(t)
	setup(t, srv.URL)
	fetchBatches = 3

	out, err := outputOf(t, runFetch)
	require.NoError(t, err)
	assert.Contains(t, out, "Results: 3")
	assert.Contains(t, out, "Dr Grace Hopper")
	assert.Contains(t, out, "Arlington, United States")
}

func TestRunFetch_JSON(t *testing.T) {
	srv := profileServer(t)
	setup(t, srv.URL)
	fetchBatches = 2
	fetchFormat = "json"

	out, err := outputOf(t, runFetch)
	require.NoError(t, err)

	var got []randomuser.Profile
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.ElementsMatch(t, []string{"p-1", "p-2"}, []string{got[0].ID(), got[1].ID()})
	assert.Equal(t, "grace@example.com", got[0].Email)
}

func TestRunFetch_Markdown(t *testing.T) {
	srv := profileServer(t)
	setup(t, srv.URL)
	cfg.UI.Theme = "auto"
	fetchFormat = "markdown"

	out, err := outputOf(t, runFetch)
	require.NoError(t, err)
	assert.Contains(t, out, "Results: 1")
	assert.Contains(t, out, "Grace")
}

func TestRunFetch_InvalidFlags(t *testing.T) {
	setup(t, "http://127.0.0.1:1")

	fetchFormat = "xml"
	_, err := outputOf(t, runFetch)
	assert.ErrorContains(t, err, "unknown format")

	fetchFormat = "table"
	fetchBatches = 0
	_, err = outputOf(t, runFetch)
	assert.ErrorContains(t, err, "--batches")
}

func TestRunFetch_AllBatchesFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	setup(t, srv.URL)
	fetchBatches = 2

	out, err := outputOf(t, runFetch)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 batches failed")
	assert.True(t, randomuser.IsFetchFailure(err))
	assert.Empty(t, out)
}

type scriptedFetcher struct {
	mu     sync.Mutex
	calls  int
	counts []int
	fail   map[int]bool
}

func (s *scriptedFetcher) FetchProfiles(ctx context.Context, count int) ([]randomuser.Profile, error) {
	s.mu.Lock()
	s.calls++
	s.counts = append(s.counts, count)
	call := s.calls
	s.mu.Unlock()
	if s.fail[call] {
		return nil, &randomuser.FetchError{Kind: randomuser.FailureStatus, RequestID: fmt.Sprint("r", call), StatusCode: 500, Err: errors.New("500")}
	}
	out := make([]randomuser.Profile, count)
	for i := range out {
		out[i].Login.UUID = fmt.Sprintf("c%d-%d", call, i)
	}
	return out, nil
}

func TestCollectBatches_PartialFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	f := &scriptedFetcher{fail: map[int]bool{2: true}}

	d, err := collectBatches(context.Background(), f, 2, 3, zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, []int{2, 2, 2}, f.counts, "every batch asks for the flag count")
	assert.Equal(t, 10, d.RequestedCount())

	failures := logs.FilterMessage("fetch failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, "r2", failures[0].ContextMap()["request_id"])
	assert.Equal(t, "status", failures[0].ContextMap()["kind"])
}

func TestCollectBatches_KeepsBatchesContiguous(t *testing.T) {
	f := &scriptedFetcher{}
	d, err := collectBatches(context.Background(), f, 3, 4, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 12, d.Len())

	// Every batch lands as one run, whatever order batches arrive in.
	ps := d.Profiles()
	for start := 0; start < len(ps); start += 3 {
		prefix := ps[start].ID()[:2]
		for i := start; i < start+3; i++ {
			assert.Equal(t, prefix, ps[i].ID()[:2], "position %d", i)
		}
	}
}

func TestCollectBatches_ZeroCountSucceedsEmpty(t *testing.T) {
	d, err := collectBatches(context.Background(), &scriptedFetcher{}, 0, 1, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 10, d.RequestedCount())
}

func TestWriteProfiles_EmptyTable(t *testing.T) {
	setup(t, "http://127.0.0.1:1")
	var buf bytes.Buffer
	require.NoError(t, writeProfiles(&buf, nil, "table"))
	assert.Equal(t, "Results: 0\n", buf.String())

	buf.Reset()
	require.NoError(t, writeProfiles(&buf, []randomuser.Profile{}, "json"))
	assert.JSONEq(t, "[]", buf.String())
}

func TestMarkdownStyle(t *testing.T) {
	assert.Equal(t, "dark", markdownStyle("dark"))
	assert.Equal(t, "light", markdownStyle("light"))
	assert.Equal(t, "auto", markdownStyle("auto"))
	assert.Equal(t, "auto", markdownStyle(""))
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	setup(t, "")
	dir := t.TempDir()
	configPath = filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("endpoint:\n  base_url: https://file.example/api\nlogging:\n  level: debug\n"), 0644))

	c, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://file.example/api", c.Endpoint.BaseURL)
	assert.Equal(t, "debug", c.Logging.Level)

	endpoint = "http://flag.example/api"
	logFile = filepath.Join(dir, "flag.log")
	c, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://flag.example/api", c.Endpoint.BaseURL)
	assert.Equal(t, logFile, c.Logging.File)
}

func TestLoadConfig_Invalid(t *testing.T) {
	setup(t, "")
	configPath = filepath.Join(t.TempDir(), "missing.yaml")
	endpoint = "ftp://example.com"

	_, err := loadConfig()
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestConfigInitAndShow(t *testing.T) {
	setup(t, "")
	configPath = filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := outputOf(t, runConfigInit)
	require.NoError(t, err)
	assert.Contains(t, out, configPath)

	_, err = outputOf(t, runConfigInit)
	assert.ErrorContains(t, err, "already exists")

	configForce = true
	_, err = outputOf(t, runConfigInit)
	require.NoError(t, err)

	cfg, err = loadConfig()
	require.NoError(t, err)
	out, err = outputOf(t, runConfigShow)
	require.NoError(t, err)
	assert.Contains(t, out, "base_url: https://randomuser.me/api")
	assert.Contains(t, out, "theme: auto")
}

func TestDefaultConfigPath(t *testing.T) {
	p := defaultConfigPath()
	assert.True(t, filepath.Base(p) == "config.yaml" || p == "userdeck.yaml", p)
}

func TestConfigInitForce_ReplacesBrokenFile(t *testing.T) {
	setup(t, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: [unterminated"), 0644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "init", "--force", "--config", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig().Endpoint, loaded.Endpoint)
}

func TestConfigShow_RejectsBrokenFile(t *testing.T) {
	setup(t, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("endpoint: [unterminated"), 0644))

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"config", "show", "--config", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "failed to parse config")
}
