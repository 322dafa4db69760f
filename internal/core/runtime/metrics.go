// Package runtime 提供程序调用相关的监控指标
package runtime

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ============================================================================
//                          Prometheus 监控指标
// ============================================================================

var (
	// invocationTotal 程序调用总次数（按程序和结果分类）
	invocationTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bankrun",
			Subsystem: "runtime",
			Name:      "invocation_total",
			Help:      "Total number of program invocations by program and result",
		},
		[]string{"program", "result"}, // result: success, failed, not_found
	)

	// invocationDuration 程序调用耗时（直方图）
	invocationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "bankrun",
		Subsystem: "runtime",
		Name:      "invocation_duration_seconds",
		Help:      "Duration of program invocations in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10), // 1µs ~ 262ms
	})

	// programLogLines 捕获的程序日志行数
	programLogLines = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "bankrun",
		Subsystem: "runtime",
		Name:      "program_log_lines_total",
		Help:      "Total number of captured program log lines",
	})
)

func init() {
	// 注册所有运行时指标
	prometheus.MustRegister(
		invocationTotal,
		invocationDuration,
		programLogLines,
	)
}
