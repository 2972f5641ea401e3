package automation

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greenbook/internal/model"
	"greenbook/internal/pkg/git/api"
	pkgErrors "greenbook/pkg/errors"
)

func newTestProvisioner(host *fakeHost, metrics *Metrics) (*RepositoryProvisioner, *[]time.Duration) {
	p := NewRepositoryProvisioner(host, RepositoryOptions{
		Prefix:        "greenbook",
		TemplateOwner: "tpl",
		TemplateRepo:  "nextjs-boilerplate",
		MaxAttempts:   5,
		SettleDelay:   time.Second,
	}, metrics)
	var waits []time.Duration
	p.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}
	return p, &waits
}

func TestRepositoryName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Acme Site", want: "greenbook-acme-site"},
		{name: "whitespace run", in: "Big   Launch\tPage", want: "greenbook-big-launch-page"},
		{name: "trimmed", in: "  Landing ", want: "greenbook-landing"},
		{name: "single word", in: "Shop", want: "greenbook-shop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RepositoryName("greenbook", tt.in))
		})
	}
}

func TestCreateRepositoryRetriesOnNameCollision(t *testing.T) {
	host := newFakeHost()
	host.taken["greenbook-acme-site"] = true
	host.taken["greenbook-acme-site-1"] = true
	p, waits := newTestProvisioner(host, nil)

	res, err := p.CreateRepository(context.Background(), "Acme Site")
	require.NoError(t, err)

	assert.Equal(t, []string{"greenbook-acme-site", "greenbook-acme-site-1", "greenbook-acme-site-2"}, host.attempts)
	assert.Equal(t, "https://github.com/acme/greenbook-acme-site-2", res.URL)
	assert.Equal(t, []time.Duration{time.Second}, *waits)
}

func TestCreateRepositoryExhaustsNamingAttempts(t *testing.T) {
	host := newFakeHost()
	for _, n := range []string{"greenbook-x", "greenbook-x-1", "greenbook-x-2", "greenbook-x-3", "greenbook-x-4", "greenbook-x-5"} {
		host.taken[n] = true
	}
	p, waits := newTestProvisioner(host, nil)

	_, err := p.CreateRepository(context.Background(), "x")
	require.Error(t, err)

	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeProvisioningError))
	assert.ErrorIs(t, err, ErrNamingExhausted)
	assert.Len(t, host.attempts, 5)
	assert.Empty(t, *waits)
}

func TestCreateRepositoryOtherErrorAbortsImmediately(t *testing.T) {
	host := newFakeHost()
	host.createErr = errBoom
	p, _ := newTestProvisioner(host, nil)

	_, err := p.CreateRepository(context.Background(), "Acme Site")
	require.Error(t, err)

	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeProvisioningError))
	assert.ErrorIs(t, err, errBoom)
	assert.Len(t, host.attempts, 1)
}

func TestSeedContinuesPastFailedFiles(t *testing.T) {
	host := newFakeHost()
	host.addTemplateFile("tpl", "nextjs-boilerplate", "package.json", `{"name":"site"}`)
	host.addTemplateFile("tpl", "nextjs-boilerplate", "broken.ts", "x")
	host.addTemplateFile("tpl", "nextjs-boilerplate", "README.md", "# template")
	host.template = append(host.template, api.ContentEntry{Name: "app", Path: "app", Type: api.EntryDir})
	host.addTemplateFile("tpl", "nextjs-boilerplate", "next.config.js", "module.exports = {}")
	host.getErr[fileKey("tpl", "nextjs-boilerplate", "broken.ts")] = errBoom
	// auto_init 已生成 README
	host.files[fileKey("acme", "greenbook-acme-site", "README.md")] = &api.FileContent{Path: "README.md", SHA: "init-sha"}

	metrics := NewMetrics(prometheus.NewRegistry())
	p, _ := newTestProvisioner(host, metrics)

	res, err := p.CreateRepository(context.Background(), "Acme Site")
	require.NoError(t, err)

	outcomes := map[string]model.SeedOutcome{}
	for _, r := range res.Seed {
		outcomes[r.Path] = r.Outcome
	}
	assert.Equal(t, map[string]model.SeedOutcome{
		"package.json":   model.SeedCopied,
		"broken.ts":      model.SeedSkipped,
		"README.md":      model.SeedCopied,
		"app":            model.SeedSkipped,
		"next.config.js": model.SeedCopied,
	}, outcomes)
	assert.Equal(t, 3, res.Seed.Count(model.SeedCopied))

	require.Len(t, host.puts, 3)
	for _, put := range host.puts {
		if put.Path == "README.md" {
			assert.Equal(t, "init-sha", put.SHA)
			assert.Equal(t, "# template", string(put.Content))
		} else {
			assert.Empty(t, put.SHA)
		}
		assert.Equal(t, "Initial commit from boilerplate", put.Message)
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.seedFiles.WithLabelValues("copied")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.seedFiles.WithLabelValues("skipped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.steps.WithLabelValues(StepRepository, ResultSuccess)))
}

func TestSeedWriteFailureIsSkipped(t *testing.T) {
	host := newFakeHost()
	host.addTemplateFile("tpl", "nextjs-boilerplate", "a.txt", "a")
	host.addTemplateFile("tpl", "nextjs-boilerplate", "b.txt", "b")
	host.putErr["a.txt"] = errBoom
	p, _ := newTestProvisioner(host, nil)

	res, err := p.CreateRepository(context.Background(), "site")
	require.NoError(t, err)

	require.Len(t, res.Seed, 2)
	assert.Equal(t, model.SeedSkipped, res.Seed[0].Outcome)
	assert.Contains(t, res.Seed[0].Reason, "boom")
	assert.Equal(t, model.SeedCopied, res.Seed[1].Outcome)
}

func TestSeedTemplateListingFailureFailsStep(t *testing.T) {
	host := newFakeHost()
	host.listErr = errBoom
	p, _ := newTestProvisioner(host, nil)

	res, err := p.CreateRepository(context.Background(), "site")
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeProvisioningError))
	assert.ErrorIs(t, err, errBoom)
}

func TestSeedEmptyTemplateSucceeds(t *testing.T) {
	p, _ := newTestProvisioner(newFakeHost(), nil)

	res, err := p.CreateRepository(context.Background(), "site")
	require.NoError(t, err)
	assert.Empty(t, res.Seed)
}

func TestCreateRepositorySettleInterrupted(t *testing.T) {
	host := newFakeHost()
	p := NewRepositoryProvisioner(host, RepositoryOptions{SettleDelay: time.Hour}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.CreateRepository(ctx, "site")
	require.Error(t, err)
	assert.True(t, pkgErrors.IsCode(err, pkgErrors.CodeProvisioningError))
	assert.ErrorIs(t, err, context.Canceled)
}
