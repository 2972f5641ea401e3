package model

// SeedOutcome 模板文件的复制结果
type SeedOutcome string

const (
	SeedCopied  SeedOutcome = "copied"
	SeedSkipped SeedOutcome = "skipped"
)

// SeedResult 单个模板条目的复制结果
type SeedResult struct {
	Path    string      `json:"path"`
	Outcome SeedOutcome `json:"outcome"`
	Reason  string      `json:"reason,omitempty"`
}

// SeedReport 一次仓库初始化的全部结果
type SeedReport []SeedResult

// Count 统计指定结果的条目数
func (r SeedReport) Count(outcome SeedOutcome) int {
	n := 0
	for _, res := range r {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}
