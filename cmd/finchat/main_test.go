package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/findosh/finchat/internal/client"
	"github.com/findosh/finchat/internal/models"
	"github.com/findosh/finchat/internal/services/assistant"
	"github.com/findosh/finchat/internal/services/suggest"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writePrices(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Close Price\n03-Jan-22,1710.50\n14-Jan-22,1780.25\n31-Jan-22,1950.00\n"), 0o644))
	return path
}

func TestAskLocalRaw(t *testing.T) {
	out, err := runCLI(t, "ask", "--local", "--raw", "What was the revenue growth in Q2 FY25?")
	require.NoError(t, err)
	assert.Contains(t, out, "30%")
}

func TestAskRequiresQuestion(t *testing.T) {
	_, err := runCLI(t, "ask")
	assert.Error(t, err)
}

func TestPricesStatsJSON(t *testing.T) {
	out, err := runCLI(t, "--prices", writePrices(t), "prices", "stats", "--json", "Jan-22", "Jan-22")
	require.NoError(t, err)
	assert.Contains(t, out, `"average": "1813.58"`)
	assert.Contains(t, out, `"period": "2022-01-01 to 2022-01-31"`)
}

func TestPricesImportNeedsDatabase(t *testing.T) {
	_, err := runCLI(t, "--database", "", "prices", "import", writePrices(t))
	assert.Error(t, err)
}

func TestToken(t *testing.T) {
	t.Setenv("FINCHAT_API_SECRET", "cli-test-secret")
	out, err := runCLI(t, "token", "--subject", "tester")
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(strings.Fields(out)[0], ".")), "a JWT has three segments")
}

func TestParseBound(t *testing.T) {
	start, end, err := parseBound("Feb-24")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", start.Format("2006-01-02"))
	assert.Equal(t, "2024-02-29", end.Format("2006-01-02"))

	start, end, err = parseBound("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, start, end)

	_, _, err = parseBound("soon")
	assert.Error(t, err)
}

func TestChatSession(t *testing.T) {
	svc, err := assistant.NewService(assistant.DefaultConfig(),
		assistant.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	catalog, err := suggest.Default()
	require.NoError(t, err)

	var out bytes.Buffer
	s := &chatSession{
		client:  client.New("", svc),
		catalog: catalog,
		local:   true,
		raw:     true,
		out:     &out,
	}

	in := strings.NewReader("/history\n/suggest bagic\nWhat was the revenue growth in Q2 FY25?\n\n/history\n/quit\nnever read\n")
	require.NoError(t, s.run(t.Context(), in))

	assert.Contains(t, out.String(), "No messages yet.")
	assert.Contains(t, out.String(), "BAGIC")
	assert.Contains(t, out.String(), "30%")

	turns := s.transcript.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, models.TurnUser, turns[0].Type)
	assert.Equal(t, models.TurnBot, turns[1].Type)
}

func TestFormatEnvelope(t *testing.T) {
	env := &models.ResponseEnvelope{
		Response:   "Revenue grew 30%.",
		Confidence: 0.95,
		Source:     assistant.DefaultSource,
		Mode:       assistant.ModeLexicon,
		Analysis:   &models.Analysis{Intent: "analyze"},
	}

	assert.Equal(t, "Revenue grew 30%.", formatEnvelope(env, true))

	styled := formatEnvelope(env, false)
	assert.Contains(t, styled, "confidence 95%")
	assert.Contains(t, styled, "intent analyze")
}
