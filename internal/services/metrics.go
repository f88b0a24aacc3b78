package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// workflowOps counts workflow executions by outcome, exposed on /metrics.
var workflowOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "clinic_workflow_operations_total",
	Help: "Domain workflow executions by workflow and outcome.",
}, []string{"workflow", "outcome"})

func countOutcome(workflow string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	workflowOps.WithLabelValues(workflow, outcome).Inc()
}
