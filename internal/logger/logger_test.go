package logger_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/HicaroD/razen/internal/logger"
)

func TestConfig_New(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{format: "logfmt", want: `msg=pass cycle=1`},
		{format: "json", want: `"msg":"pass","cycle":1`},
		{format: "console", want: "pass\t{\"cycle\": 1}"},
		// A bytes.Buffer is never a terminal.
		{format: "auto", want: `msg=pass cycle=1`},
	}

	for _, test := range tests {
		t.Run(test.format, func(t *testing.T) {
			var buf bytes.Buffer
			c := logger.NewConfig()
			c.Format = test.format
			c.Level = zapcore.InfoLevel

			log, err := c.New(&buf)
			require.NoError(t, err)
			log.Info("pass", zap.Int("cycle", 1))
			log.Debug("filtered")

			require.Contains(t, buf.String(), test.want)
			require.NotContains(t, buf.String(), "filtered")
		})
	}
}

func TestConfig_NewUnknownFormat(t *testing.T) {
	c := logger.NewConfig()
	c.Format = "xml"
	_, err := c.New(&bytes.Buffer{})
	require.Error(t, err)
}

func TestFromContext(t *testing.T) {
	require.NotNil(t, logger.FromContext(context.Background()))

	log := zap.NewExample()
	ctx := logger.NewContextWithLogger(context.Background(), log)
	require.Same(t, log, logger.FromContext(ctx))
}
