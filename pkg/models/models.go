package models

import "time"

// StatusLevel classifies a risk score into a severity band
type StatusLevel string

const (
	StatusOK       StatusLevel = "OK"
	StatusWarning  StatusLevel = "WARNING"
	StatusCritical StatusLevel = "CRITICAL"
)

// ExecutionState is the closed lifecycle vocabulary for workflow executions
type ExecutionState string

const (
	ExecutionCreated ExecutionState = "CREATED"
	ExecutionRunning ExecutionState = "RUNNING"
	ExecutionSuccess ExecutionState = "SUCCESS"
	ExecutionFailed  ExecutionState = "FAILED"
	ExecutionKilled  ExecutionState = "KILLED"
)

// RunMode selects which analysis agents a workflow run executes
type RunMode string

const (
	RunModeFull           RunMode = "full"
	RunModeTreasuryOnly   RunMode = "treasury_only"
	RunModePortfolioOnly  RunMode = "portfolio_only"
	RunModeComplianceOnly RunMode = "compliance_only"
)

// Covenant status values carried by debt instruments
const (
	CovenantCompliant = "COMPLIANT"
	CovenantWarning   = "WARNING"
	CovenantBreach    = "BREACH"
)

// AlertTypeSanctionsMatch is the AML alert type counted as a sanctions hit
const AlertTypeSanctionsMatch = "SANCTIONS_MATCH"

// CashPosition is a single account balance in its native currency
type CashPosition struct {
	AccountName      string  `json:"account_name"`
	Currency         string  `json:"currency"`
	Balance          float64 `json:"balance"`
	AvailableBalance float64 `json:"available_balance"`
	Bank             string  `json:"bank"`
	Region           string  `json:"region"`
}

// DebtInstrument is one outstanding debt facility with its covenant state
type DebtInstrument struct {
	DebtID         string  `json:"debt_id"`
	InstrumentType string  `json:"instrument_type"`
	Principal      float64 `json:"principal"`
	Currency       string  `json:"currency"`
	InterestRate   float64 `json:"interest_rate"`
	MaturityDate   string  `json:"maturity_date"`
	CovenantStatus string  `json:"covenant_status"`
}

// TreasurySnapshot aggregates cash, debt and FX exposure for the latest date
type TreasurySnapshot struct {
	Date             string           `json:"date"`
	CashPositions    []CashPosition   `json:"cash_positions"`
	TotalCashUSD     float64          `json:"total_cash_usd"`
	DebtInstruments  []DebtInstrument `json:"debt_instruments"`
	TotalDebt        float64          `json:"total_debt"`
	NetPosition      float64          `json:"net_position"`
	FXExposures      map[string]any   `json:"fx_exposures"`
	CovenantBreaches int              `json:"covenant_breaches"`
	CovenantWarnings int              `json:"covenant_warnings"`
}

// Holding is one portfolio position at current market prices
type Holding struct {
	Ticker        string  `json:"ticker"`
	Name          string  `json:"name"`
	AssetClass    string  `json:"asset_class"`
	Quantity      float64 `json:"quantity"`
	CurrentPrice  float64 `json:"current_price"`
	MarketValue   float64 `json:"market_value"`
	WeightPct     float64 `json:"weight_pct"`
	UnrealizedPnL float64 `json:"unrealized_pnl"`
}

// PortfolioSnapshot carries holdings plus the latest risk and performance metrics
type PortfolioSnapshot struct {
	Date            string    `json:"date"`
	Holdings        []Holding `json:"holdings"`
	TotalAUM        float64   `json:"total_aum"`
	VaR95OneDay     float64   `json:"var_95_1d"`
	VaR99OneDay     float64   `json:"var_99_1d"`
	SharpeRatio     float64   `json:"sharpe_ratio"`
	MaxDrawdown     float64   `json:"max_drawdown"`
	RiskScore       int       `json:"risk_score"`
	YTDReturn       float64   `json:"ytd_return"`
	BenchmarkReturn float64   `json:"benchmark_return"`
	Alpha           float64   `json:"alpha"`
}

// AMLAlert is one anti-money-laundering alert
type AMLAlert struct {
	AlertID    string  `json:"alert_id"`
	Type       string  `json:"type"`
	RiskScore  int     `json:"risk_score"`
	Priority   string  `json:"priority"`
	Status     string  `json:"status"`
	EntityName string  `json:"entity_name"`
	Amount     float64 `json:"amount"`
	Currency   string  `json:"currency"`
}

// ComplianceSnapshot aggregates AML alerting, KYC coverage and audit severity
type ComplianceSnapshot struct {
	Date                 string     `json:"date"`
	AMLAlerts            []AMLAlert `json:"aml_alerts"`
	TotalAlerts          int        `json:"total_alerts"`
	HighPriorityCount    int        `json:"high_priority_count"`
	SanctionsMatches     int        `json:"sanctions_matches"`
	KYCComplianceRate    float64    `json:"kyc_compliance_rate"`
	ClientsPendingReview int        `json:"clients_pending_review"`
	CriticalAuditEvents  int        `json:"critical_audit_events"`
}

// NewsItem is one scored market headline
type NewsItem struct {
	Headline       string  `json:"headline"`
	Source         string  `json:"source"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentiment_score"`
	Impact         string  `json:"impact"`
}

// MarketSnapshot aggregates the news feed and headline economic indicators
type MarketSnapshot struct {
	Date             string     `json:"date"`
	NewsItems        []NewsItem `json:"news_items"`
	OverallSentiment string     `json:"overall_sentiment"`
	SP500Level       float64    `json:"sp500_level"`
	SP500ChangePct   float64    `json:"sp500_change_pct"`
	VIX              float64    `json:"vix"`
	FedFundsRate     float64    `json:"fed_funds_rate"`
	Treasury10Y      float64    `json:"treasury_10y"`
}

// DashboardSummary is the composite risk view across all domains
type DashboardSummary struct {
	Timestamp           time.Time   `json:"timestamp"`
	OverallStatus       StatusLevel `json:"overall_status"`
	OverallRiskScore    int         `json:"overall_risk_score"`
	TreasuryStatus      StatusLevel `json:"treasury_status"`
	TreasuryRiskScore   int         `json:"treasury_risk_score"`
	PortfolioStatus     StatusLevel `json:"portfolio_status"`
	PortfolioRiskScore  int         `json:"portfolio_risk_score"`
	ComplianceStatus    StatusLevel `json:"compliance_status"`
	ComplianceRiskScore int         `json:"compliance_risk_score"`
	CriticalItems       int         `json:"critical_items"`
	ActiveAlerts        int         `json:"active_alerts"`
	ActionsPending      int         `json:"actions_pending"`
	LastExecutionID     string      `json:"last_execution_id,omitempty"`
	NextScheduledRun    *time.Time  `json:"next_scheduled_run,omitempty"`
}

// TriggerResult is the errors-as-data outcome of a workflow trigger call
type TriggerResult struct {
	ExecutionID string    `json:"execution_id"`
	Status      string    `json:"status"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
}

// Trigger result statuses
const (
	TriggerStatusTriggered = "TRIGGERED"
	TriggerStatusFailed    = "FAILED"
	TriggerStatusError     = "ERROR"
)

// ExecutionRecord is the stable view of one engine-owned execution
type ExecutionRecord struct {
	ExecutionID string         `json:"execution_id"`
	FlowID      string         `json:"flow_id"`
	Namespace   string         `json:"namespace"`
	State       ExecutionState `json:"state"`
	StartDate   *time.Time     `json:"start_date,omitempty"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
	DurationMS  *int64         `json:"duration_ms,omitempty"`
	Outputs     map[string]any `json:"outputs,omitempty"`
}

// ServiceHealth reports reachability of one external collaborator
type ServiceHealth struct {
	Status string `json:"status"`
	Code   int    `json:"code,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Service health statuses
const (
	HealthHealthy     = "healthy"
	HealthUnhealthy   = "unhealthy"
	HealthUnreachable = "unreachable"
	HealthDegraded    = "degraded"
)

// HealthReport is the composite health endpoint payload
type HealthReport struct {
	Status          string    `json:"status"`
	APIVersion      string    `json:"api_version"`
	EngineStatus    string    `json:"engine_status"`
	InferenceStatus string    `json:"inference_status"`
	Timestamp       time.Time `json:"timestamp"`
}
