package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/finbook/bookkeeping_app/internal/apperrors"
	"github.com/finbook/bookkeeping_app/internal/core/domain"
	portsrepo "github.com/finbook/bookkeeping_app/internal/core/ports/repositories"
	portssvc "github.com/finbook/bookkeeping_app/internal/core/ports/services"
	"github.com/finbook/bookkeeping_app/internal/dto"
	"github.com/finbook/bookkeeping_app/internal/utils/fiscal"
	"github.com/finbook/bookkeeping_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txRepo      portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(txRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{txRepo: txRepo, accountRepo: accountRepo}
}

// Ensure transactionService implements the service facade
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// ImportBatch ingests a parsed statement. The account snapshot is upserted by
// identity hash, then each statement line is deduped by FITID and stored
// uncategorized for the mapping rules to pick up.
func (s *transactionService) ImportBatch(ctx context.Context, req dto.ImportBatchRequest, importerUserID string) (*dto.ImportBatchResponse, error) {
	account, err := s.upsertAccount(ctx, req, importerUserID)
	if err != nil {
		return nil, err
	}

	batchID := uuid.NewString()
	now := time.Now()

	var newTxs []domain.Transaction
	var fitIDs []string
	skipped := 0
	for _, line := range req.Transactions {
		existing, err := s.txRepo.FindByImportKey(ctx, account.AccountID, line.FitID)
		if err == nil && existing != nil {
			skipped++
			continue
		}

		newTxs = append(newTxs, domain.Transaction{
			TransactionID: uuid.NewString(),
			AccountID:     account.AccountID,
			Date:          line.DatePosted,
			Amount:        line.Amount,
			Name:          line.Name,
			Memo:          line.Memo,
			Category:      domain.CategoryUncategorized,
			ImportBatchID: batchID,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     importerUserID,
				LastUpdatedAt: now,
				LastUpdatedBy: importerUserID,
			},
		})
		fitIDs = append(fitIDs, line.FitID)
	}

	if len(newTxs) > 0 {
		if err := s.txRepo.SaveTransactions(ctx, newTxs, fitIDs); err != nil {
			s.LogError(ctx, err, "Failed to save imported transactions",
				slog.String("account_id", account.AccountID),
				slog.String("import_batch_id", batchID))
			return nil, fmt.Errorf("failed to save imported transactions: %w", err)
		}
	}

	s.LogInfo(ctx, "Statement batch imported",
		slog.String("account_id", account.AccountID),
		slog.String("import_batch_id", batchID),
		slog.Int("imported", len(newTxs)),
		slog.Int("skipped", skipped))

	return &dto.ImportBatchResponse{
		ImportBatchID: batchID,
		AccountID:     account.AccountID,
		Imported:      len(newTxs),
		Skipped:       skipped,
	}, nil
}

// upsertAccount finds the statement's account by identity hash, creating it
// on first import and advancing the snapshot anchor on subsequent ones.
func (s *transactionService) upsertAccount(ctx context.Context, req dto.ImportBatchRequest, importerUserID string) (*domain.BankAccount, error) {
	now := time.Now()

	account, err := s.accountRepo.FindAccountByHash(ctx, req.ContextID, req.Account.AccountIDHash)
	if err == nil && account != nil {
		// Known account: the statement carries a fresher snapshot.
		if req.Account.BalanceDate.After(account.BalanceDate) {
			account.Balance = req.Account.Balance
			account.BalanceDate = req.Account.BalanceDate
			account.LastUpdatedAt = now
			account.LastUpdatedBy = importerUserID
			if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
				return nil, fmt.Errorf("failed to advance account snapshot: %w", err)
			}
		}
		return account, nil
	}

	created := domain.BankAccount{
		AccountID:     uuid.NewString(),
		ContextID:     req.ContextID,
		Name:          req.Account.Name,
		AccountType:   domain.AccountType(req.Account.AccountType),
		CurrencyCode:  req.Account.CurrencyCode,
		Balance:       req.Account.Balance,
		BalanceDate:   req.Account.BalanceDate,
		AccountIDHash: req.Account.AccountIDHash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     importerUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: importerUserID,
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create account from import: %w", err)
	}
	return &created, nil
}

// GetTransactionByID retrieves a single transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	tx, err := s.txRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction in service: %w", err)
	}
	return tx, nil
}

// ListTransactions retrieves a filtered page of a context's transactions.
// Fiscal-year and date-range filters honor override semantics, so filtering
// happens here rather than in SQL.
func (s *transactionService) ListTransactions(ctx context.Context, contextID string, req dto.ListTransactionsRequest) (*dto.ListTransactionsResponse, error) {
	var txs []domain.Transaction
	var err error
	if req.AccountID != "" {
		txs, err = s.txRepo.ListTransactionsByAccount(ctx, req.AccountID)
	} else {
		txs, err = s.txRepo.ListTransactionsByContext(ctx, contextID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}

	txs, err = s.applyFilters(txs, req)
	if err != nil {
		return nil, err
	}

	// Newest first, creation time breaking date ties.
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Date.Equal(txs[j].Date) {
			return txs[i].Date.After(txs[j].Date)
		}
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})

	page, nextToken, err := paginate(txs, req.NextToken, req.Limit)
	if err != nil {
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToListTransactionResponse(page),
		NextToken:    nextToken,
	}, nil
}

// applyFilters narrows the list by fiscal year, date range and category.
func (s *transactionService) applyFilters(txs []domain.Transaction, req dto.ListTransactionsRequest) ([]domain.Transaction, error) {
	if req.FiscalYear != 0 {
		txs = fiscal.FilterByYear(txs, req.FiscalYear)
	}

	if req.From != "" || req.To != "" {
		if req.From == "" || req.To == "" {
			return nil, fmt.Errorf("%w: 'from' and 'to' must be supplied together", apperrors.ErrValidation)
		}
		start, err := time.Parse(time.DateOnly, req.From)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid 'from' date '%s'", apperrors.ErrValidation, req.From)
		}
		end, err := time.Parse(time.DateOnly, req.To)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid 'to' date '%s'", apperrors.ErrValidation, req.To)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("%w: 'to' precedes 'from'", apperrors.ErrValidation)
		}
		txs = fiscal.FilterByDateRange(txs, domain.DateRange{Start: start, End: end})
	}

	if req.Category != "" {
		filtered := txs[:0:0]
		for _, tx := range txs {
			if tx.Category == domain.Category(req.Category) {
				filtered = append(filtered, tx)
			}
		}
		txs = filtered
	}
	return txs, nil
}

// paginate slices one page out of the sorted list. The cursor encodes the
// last returned transaction's date and id; the next page resumes after it.
func paginate(txs []domain.Transaction, nextToken string, limit int) ([]domain.Transaction, string, error) {
	if limit <= 0 {
		limit = 100
	}

	start := 0
	if nextToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(nextToken)
		if err != nil || len(fields) != 2 {
			return nil, "", fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		lastID := fields[1]
		for i, tx := range txs {
			if tx.TransactionID == lastID {
				start = i + 1
				break
			}
		}
	}

	if start >= len(txs) {
		return []domain.Transaction{}, "", nil
	}

	end := start + limit
	if end > len(txs) {
		end = len(txs)
	}
	page := txs[start:end]

	token := ""
	if end < len(txs) {
		last := page[len(page)-1]
		token = pagination.EncodeMultiFieldToken(last.Date.Format(time.RFC3339Nano), last.TransactionID)
	}
	return page, token, nil
}

// UpdateCategory applies a manual categorization edit.
func (s *transactionService) UpdateCategory(ctx context.Context, transactionID string, req dto.UpdateTransactionCategoryRequest, updaterUserID string) (*domain.Transaction, error) {
	tx, err := s.txRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction for categorization: %w", err)
	}

	category := domain.Category(req.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category '%s'", apperrors.ErrValidation, req.Category)
	}

	tx.Category = category
	tx.Subcategory = req.Subcategory
	tx.IncomeType = domain.IncomeType(req.IncomeType)
	tx.LastUpdatedAt = time.Now()
	tx.LastUpdatedBy = updaterUserID

	if err := s.txRepo.UpdateTransaction(ctx, *tx); err != nil {
		s.LogError(ctx, err, "Failed to update transaction category",
			slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction in service: %w", err)
	}
	return tx, nil
}

// SetFiscalYear assigns or clears the fiscal year override. The bank-posted
// date is never touched.
func (s *transactionService) SetFiscalYear(ctx context.Context, transactionID string, req dto.SetFiscalYearRequest, updaterUserID string) (*domain.Transaction, error) {
	tx, err := s.txRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction for fiscal year edit: %w", err)
	}

	tx.FiscalYear = req.FiscalYear
	tx.LastUpdatedAt = time.Now()
	tx.LastUpdatedBy = updaterUserID

	if err := s.txRepo.UpdateTransaction(ctx, *tx); err != nil {
		s.LogError(ctx, err, "Failed to set fiscal year override",
			slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction in service: %w", err)
	}
	return tx, nil
}

// DeleteTransaction removes a transaction permanently. Only explicit user
// action reaches this path.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.txRepo.DeleteTransaction(ctx, transactionID); err != nil {
		return fmt.Errorf("failed to delete transaction in service: %w", err)
	}
	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}
