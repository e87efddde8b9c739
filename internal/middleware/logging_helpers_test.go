package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/guttosm/pricing-service/internal/logger"
	"github.com/stretchr/testify/require"
)

// captureLogs routes the global logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.InitWithWriter(&buf, "debug", false)
	t.Cleanup(func() { logger.Init("info", false) })
	return &buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		lines = append(lines, m)
	}
	return lines
}
