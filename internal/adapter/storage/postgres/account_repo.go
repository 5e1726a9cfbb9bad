package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bank-payment-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	debitEntry  = "DEBIT"
	creditEntry = "CREDIT"
)

// AccountRepo implements ports.AccountRepository on top of an
// append-only account_transactions ledger. Balances are never stored;
// FindAccount replays the ledger to rebuild them.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// CreateAccount inserts the account row and, when the opening balance is
// positive, a credit leg that replay will reproduce.
func (r *AccountRepo) CreateAccount(ctx context.Context, account *domain.Account) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create account: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO accounts (id, currency, created_at) VALUES ($1, $2, NOW())`,
		account.ID().UUID(), account.Currency().String(),
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}

	if account.Balance().Amount() > 0 {
		_, err = tx.Exec(ctx, insertEntryQuery,
			uuid.New(), account.ID().UUID(), creditEntry,
			account.Balance().Amount(), account.Currency().String(),
			dayOf(time.Now()), uuid.New(), account.ID().UUID(),
		)
		if err != nil {
			return fmt.Errorf("insert opening balance: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create account: %w", err)
	}
	return nil
}

// FindAccount rehydrates an account by replaying its ledger. Returns
// (nil, nil) when no account row exists.
func (r *AccountRepo) FindAccount(ctx context.Context, id domain.AccountID) (*domain.Account, error) {
	var currencyCode string
	err := r.pool.QueryRow(ctx,
		`SELECT currency FROM accounts WHERE id = $1`, id.UUID(),
	).Scan(&currencyCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account by id: %w", err)
	}

	currency, err := domain.ParseCurrency(currencyCode)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", id, err)
	}

	balance, err := domain.NewMoney(0, currency)
	if err != nil {
		return nil, err
	}
	account, err := domain.NewAccount(id, currency, balance)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT entry_type, amount, currency
		FROM account_transactions WHERE account_id = $1
		ORDER BY created_at, id`, id.UUID(),
	)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entryType    string
			amount       int64
			currencyCode string
		)
		if err := rows.Scan(&entryType, &amount, &currencyCode); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}

		entryCurrency, err := domain.ParseCurrency(currencyCode)
		if err != nil {
			return nil, fmt.Errorf("replay ledger for %s: %w", id, err)
		}
		money, err := domain.NewMoney(amount, entryCurrency)
		if err != nil {
			return nil, fmt.Errorf("replay ledger for %s: %w", id, err)
		}

		switch entryType {
		case creditEntry:
			err = account.Credit(money)
		case debitEntry:
			err = account.Debit(money)
		default:
			err = fmt.Errorf("unsupported transaction type %q", entryType)
		}
		if err != nil {
			return nil, fmt.Errorf("replay ledger for %s: %w", id, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger: %w", err)
	}
	return account, nil
}

const insertEntryQuery = `INSERT INTO account_transactions
	(id, account_id, entry_type, amount, currency, booked_on, payment_id, related_account_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`

// SavePayment writes the debit and credit legs in one transaction, so a
// payment is either fully recorded or not at all.
func (r *AccountRepo) SavePayment(ctx context.Context, payment *domain.Payment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save payment: %w", err)
	}
	defer tx.Rollback(ctx)

	fromID := payment.FromAccount().ID()
	toID := payment.ToAccount().ID()
	day := dayOf(payment.Date())

	_, err = tx.Exec(ctx, insertEntryQuery,
		uuid.New(), fromID.UUID(), debitEntry,
		payment.DebitMoney().Amount(), payment.DebitMoney().Currency().String(),
		day, payment.ID().UUID(), toID.UUID(),
	)
	if err != nil {
		return fmt.Errorf("insert debit leg: %w", err)
	}

	_, err = tx.Exec(ctx, insertEntryQuery,
		uuid.New(), toID.UUID(), creditEntry,
		payment.CreditMoney().Amount(), payment.CreditMoney().Currency().String(),
		day, payment.ID().UUID(), fromID.UUID(),
	)
	if err != nil {
		return fmt.Errorf("insert credit leg: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save payment: %w", err)
	}
	return nil
}

// CountPaymentsByDate counts the account's debit legs booked on the
// given UTC calendar day.
func (r *AccountRepo) CountPaymentsByDate(ctx context.Context, id domain.AccountID, date time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM account_transactions
		WHERE account_id = $1 AND entry_type = $2 AND booked_on = $3`,
		id.UUID(), debitEntry, dayOf(date),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count payments by date: %w", err)
	}
	return count, nil
}

func dayOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
