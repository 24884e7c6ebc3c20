package aggregation

import (
	"context"

	"github.com/finsight/orchestrator/pkg/models"
)

// Compliance aggregates AML alerts, KYC coverage and critical audit
// events. Summary-level counts are preferred over counts derived from the
// alert list when the source provides them.
func (s *service) Compliance(_ context.Context) models.ComplianceSnapshot {
	defer observe(domainCompliance)()

	amlDoc := s.store.Document(domainCompliance, fileAMLAlerts)
	kycDoc := s.store.Document(domainCompliance, fileKYCStatus)
	audit := s.store.Table(domainCompliance, fileAuditLogs)

	entries := amlDoc.List("alerts")
	alerts := make([]models.AMLAlert, 0, len(entries))
	sanctionsMatches := 0
	for _, a := range entries {
		alert := models.AMLAlert{
			AlertID:    a.Str("alert_id", ""),
			Type:       a.Str("type", ""),
			RiskScore:  a.Int("risk_score", 0),
			Priority:   a.Str("priority", "LOW"),
			Status:     a.Str("status", "PENDING"),
			EntityName: a.Str("entity_name", ""),
			Amount:     a.Float("amount", 0),
			Currency:   a.Str("currency", "USD"),
		}
		alerts = append(alerts, alert)
		if alert.Type == models.AlertTypeSanctionsMatch {
			sanctionsMatches++
		}
	}

	amlSummary := amlDoc.Section("summary")
	kycSummary := kycDoc.Section("summary")

	// Guard the divisor: a source with zero clients reports 0%, not NaN
	totalClients := kycSummary.Int("total_clients", 1)
	if totalClients < 1 {
		totalClients = 1
	}
	complianceRate := float64(kycSummary.Int("fully_compliant", 0)) / float64(totalClients) * 100

	return models.ComplianceSnapshot{
		Date:                 today(),
		AMLAlerts:            alerts,
		TotalAlerts:          amlSummary.Int("total_alerts", len(alerts)),
		HighPriorityCount:    amlSummary.Int("high_priority", 0),
		SanctionsMatches:     sanctionsMatches,
		KYCComplianceRate:    complianceRate,
		ClientsPendingReview: kycSummary.Int("pending_review", 0),
		CriticalAuditEvents:  audit.CountEq("risk_level", "CRITICAL"),
	}
}
