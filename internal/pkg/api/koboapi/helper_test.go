package koboapi

import (
	"bufio"
	"bytes"
	"testing"

	"go.uber.org/zap"

	"github.com/kobotools/kobotab/internal/pkg/utils"
)

func newTestLogger(t *testing.T) (*zap.SugaredLogger, *bufio.Writer, *bytes.Buffer) {
	t.Helper()
	return utils.NewDebugLogger()
}
