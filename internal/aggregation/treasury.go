package aggregation

import (
	"context"

	"github.com/finsight/orchestrator/internal/currency"
	"github.com/finsight/orchestrator/pkg/models"
)

// Treasury aggregates cash positions, the debt schedule and FX exposures.
// Cash rows are filtered to the latest date present; debt rows are taken
// in full. All totals are in the reporting currency.
func (s *service) Treasury(_ context.Context) models.TreasurySnapshot {
	defer observe(domainTreasury)()

	cash := s.store.Table(domainTreasury, fileCashPositions)
	debt := s.store.Table(domainTreasury, fileDebtSchedule)
	fx := s.store.Document(domainTreasury, fileFXRates)

	latestDate := cash.MaxStr("date")
	if latestDate == "" {
		latestDate = today()
	}
	latestCash := cash.WhereEq("date", latestDate)

	positions := make([]models.CashPosition, 0, len(latestCash))
	var totalCash float64
	for _, row := range latestCash {
		pos := models.CashPosition{
			AccountName:      row.Str("account_name", ""),
			Currency:         row.Str("currency", "USD"),
			Balance:          row.Float("balance", 0),
			AvailableBalance: row.Float("available_balance", 0),
			Bank:             row.Str("bank", ""),
			Region:           row.Str("region", ""),
		}
		positions = append(positions, pos)
		totalCash += currency.ToReporting(pos.Balance, pos.Currency)
	}

	instruments := make([]models.DebtInstrument, 0, len(debt))
	var totalDebt float64
	breaches, warnings := 0, 0
	for _, row := range debt {
		inst := models.DebtInstrument{
			DebtID:         row.Str("debt_id", ""),
			InstrumentType: row.Str("instrument_type", ""),
			Principal:      row.Float("principal", 0),
			Currency:       row.Str("currency", "USD"),
			InterestRate:   row.Float("interest_rate", 0),
			MaturityDate:   row.Str("maturity_date", ""),
			CovenantStatus: row.Str("covenant_status", models.CovenantCompliant),
		}
		instruments = append(instruments, inst)
		totalDebt += currency.ToReporting(inst.Principal, inst.Currency)

		switch inst.CovenantStatus {
		case models.CovenantBreach:
			breaches++
		case models.CovenantWarning:
			warnings++
		}
	}

	return models.TreasurySnapshot{
		Date:             latestDate,
		CashPositions:    positions,
		TotalCashUSD:     totalCash,
		DebtInstruments:  instruments,
		TotalDebt:        totalDebt,
		NetPosition:      totalCash - totalDebt,
		FXExposures:      fx.Section("exposures"),
		CovenantBreaches: breaches,
		CovenantWarnings: warnings,
	}
}
