package mapping

import (
	"github.com/finbook/bookkeeping_app/internal/core/domain"
	"github.com/finbook/bookkeeping_app/internal/models"
)

// ToModelReconciliation converts a domain Reconciliation to a model Reconciliation
func ToModelReconciliation(d domain.Reconciliation) models.Reconciliation {
	return models.Reconciliation{
		ReconciliationID:        d.ReconciliationID,
		AccountID:               d.AccountID,
		ReconciledDate:          d.ReconciledDate,
		ExpectedBalance:         d.ExpectedBalance,
		ActualBalance:           d.ActualBalance,
		AdjustmentAmount:        d.AdjustmentAmount,
		AdjustmentTransactionID: d.AdjustmentTransactionID,
		Notes:                   d.Notes,
		CreatedAt:               d.CreatedAt,
		CreatedBy:               d.CreatedBy,
	}
}

// ToDomainReconciliation converts a model Reconciliation to a domain Reconciliation
func ToDomainReconciliation(m models.Reconciliation) domain.Reconciliation {
	return domain.Reconciliation{
		ReconciliationID:        m.ReconciliationID,
		AccountID:               m.AccountID,
		ReconciledDate:          m.ReconciledDate,
		ExpectedBalance:         m.ExpectedBalance,
		ActualBalance:           m.ActualBalance,
		AdjustmentAmount:        m.AdjustmentAmount,
		AdjustmentTransactionID: m.AdjustmentTransactionID,
		Notes:                   m.Notes,
		CreatedAt:               m.CreatedAt,
		CreatedBy:               m.CreatedBy,
	}
}

// ToDomainReconciliationSlice converts a slice of model Reconciliations to domain Reconciliations
func ToDomainReconciliationSlice(ms []models.Reconciliation) []domain.Reconciliation {
	ds := make([]domain.Reconciliation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReconciliation(m)
	}
	return ds
}
