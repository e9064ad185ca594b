package entity

// Balance is a user's coin account. The row appears on first credit or debit
// and is never deleted; Amount stays non-negative as long as callers validate
// debits first.
type Balance struct {
	UserID int64
	Amount int64
}
