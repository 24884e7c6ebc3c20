// Package risk derives composite risk scores and status classifications
// from the per-domain snapshots. The engine is a pure function of its
// inputs: no IO, no error states.
package risk

import (
	"time"

	"github.com/finsight/orchestrator/pkg/models"
)

const (
	treasuryBase        = 50
	breachPenalty       = 30
	warningPenalty      = 15
	complianceBase      = 40
	sanctionsPenalty    = 40
	highPriorityPenalty = 10

	criticalThreshold = 80
	warningThreshold  = 60
)

// StatusFor classifies a score into a severity band. The same thresholds
// apply to every domain score and to the overall score.
func StatusFor(score int) models.StatusLevel {
	switch {
	case score >= criticalThreshold:
		return models.StatusCritical
	case score >= warningThreshold:
		return models.StatusWarning
	default:
		return models.StatusOK
	}
}

// TreasuryScore scores treasury risk from covenant state. Breach and
// warning penalties stack.
func TreasuryScore(t models.TreasurySnapshot) int {
	score := treasuryBase
	if t.CovenantBreaches > 0 {
		score += breachPenalty
	}
	if t.CovenantWarnings > 0 {
		score += warningPenalty
	}
	return clamp(score)
}

// PortfolioScore passes through the externally supplied portfolio risk score
func PortfolioScore(p models.PortfolioSnapshot) int {
	return clamp(p.RiskScore)
}

// ComplianceScore scores compliance risk from sanctions exposure and
// high-priority alert volume.
func ComplianceScore(c models.ComplianceSnapshot) int {
	score := complianceBase
	if c.SanctionsMatches > 0 {
		score += sanctionsPenalty
	}
	score += c.HighPriorityCount * highPriorityPenalty
	return clamp(score)
}

// BuildSummary combines the four domain snapshots into the dashboard view.
// The market snapshot carries no score of its own but is part of the
// snapshot set the engine consumes.
func BuildSummary(
	t models.TreasurySnapshot,
	p models.PortfolioSnapshot,
	c models.ComplianceSnapshot,
	_ models.MarketSnapshot,
) models.DashboardSummary {
	treasuryScore := TreasuryScore(t)
	portfolioScore := PortfolioScore(p)
	complianceScore := ComplianceScore(c)

	// Equal-weighted integer mean. Whether compliance should weigh higher
	// is an open modelling question; the formula is part of the contract.
	overallScore := (treasuryScore + portfolioScore + complianceScore) / 3

	actionsPending := c.HighPriorityCount
	if t.CovenantBreaches > 0 {
		actionsPending++
	}

	return models.DashboardSummary{
		Timestamp:           time.Now().UTC(),
		OverallStatus:       StatusFor(overallScore),
		OverallRiskScore:    overallScore,
		TreasuryStatus:      StatusFor(treasuryScore),
		TreasuryRiskScore:   treasuryScore,
		PortfolioStatus:     StatusFor(portfolioScore),
		PortfolioRiskScore:  portfolioScore,
		ComplianceStatus:    StatusFor(complianceScore),
		ComplianceRiskScore: complianceScore,
		CriticalItems:       t.CovenantBreaches + c.SanctionsMatches,
		ActiveAlerts:        c.TotalAlerts,
		ActionsPending:      actionsPending,
	}
}

func clamp(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
