package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFieldsFiltersInDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "dev")

	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	New(base).WithFields(Fields{"year": 2024, "user_agent": "curl"}).Info("dashboard")

	assert.Contains(t, buf.String(), "year=2024")
	assert.NotContains(t, buf.String(), "user_agent")
}

func TestWithFieldsKeepsAllInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})

	ctx, id := WithCorrelationID(context.Background())
	New(base).WithContext(ctx).WithField("user_agent", "curl").Info("dashboard")

	assert.Contains(t, buf.String(), "user_agent=curl")
	assert.Contains(t, buf.String(), id)
}
