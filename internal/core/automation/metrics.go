package automation

import "github.com/prometheus/client_golang/prometheus"

// 步骤名
const (
	StepRepository = "repository"
	StepSeed       = "seed"
	StepSpace      = "space"
	StepSpaceKey   = "space_key"
	StepPersist    = "persist"
	StepConfig     = "config"
)

// 步骤结果
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultFallback = "fallback"
)

// Metrics 自动化流程计数器, nil 时所有方法为空操作
type Metrics struct {
	steps     *prometheus.CounterVec
	seedFiles *prometheus.CounterVec
}

// NewMetrics 创建并注册计数器
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "greenbook_provision_steps_total",
				Help: "Provisioning workflow steps by outcome",
			},
			[]string{"step", "result"},
		),
		seedFiles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "greenbook_seed_files_total",
				Help: "Template entries processed while seeding new repositories",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.steps, m.seedFiles)
	return m
}

func (m *Metrics) step(step, result string) {
	if m == nil {
		return
	}
	m.steps.WithLabelValues(step, result).Inc()
}

func (m *Metrics) seed(outcome string) {
	if m == nil {
		return
	}
	m.seedFiles.WithLabelValues(outcome).Inc()
}
