package entity

// Balance represents the processor account balance split into available and
// pending funds, each broken down per currency in minor units.
type Balance struct {
	Available []BalanceAmount `json:"available"`
	Pending   []BalanceAmount `json:"pending"`
}

// BalanceAmount is a single-currency balance figure.
type BalanceAmount struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Charge represents a processor payment. Amounts are minor units, Created is
// a unix timestamp in seconds, both preserved as the processor reports them.
type Charge struct {
	ID            string `json:"id"`
	Amount        int64  `json:"amount"`
	AmountRefunded int64 `json:"amount_refunded"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	Created       int64  `json:"created"`
	Description   string `json:"description"`
	CustomerEmail string `json:"customer_email,omitempty"`
	FeeMinor      int64  `json:"fee"`
	NetMinor      int64  `json:"net"`
}

// ChargeStatusSucceeded is the settled status charges must carry to count
// toward revenue.
const ChargeStatusSucceeded = "succeeded"

// Payout represents a transfer from the processor to the bank account.
type Payout struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
	Created     int64  `json:"created"`
	ArrivalDate int64  `json:"arrival_date"`
	Description string `json:"description"`
}

// BalanceTransaction represents a single movement on the processor balance.
type BalanceTransaction struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Fee         int64  `json:"fee"`
	Net         int64  `json:"net"`
	Currency    string `json:"currency"`
	Type        string `json:"type"`
	Created     int64  `json:"created"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// DashboardSummary bundles the four processor fetches the dashboard needs.
type DashboardSummary struct {
	Balance             *Balance             `json:"balance"`
	Charges             []Charge             `json:"charges"`
	Payouts             []Payout             `json:"payouts"`
	BalanceTransactions []BalanceTransaction `json:"balance_transactions"`
}
