package models

// Transaction types
const (
	TransactionTypeDeposit    = "Deposit"
	TransactionTypeWithdrawal = "Withdrawal"
)

// Categories assigned by the keyword categorizer.
const (
	CategorySalary       = "Salary"
	CategoryTransfer     = "Transfer"
	CategorySubscription = "Subscription"
	CategoryPayment      = "Payment"
	CategoryCarRental    = "Car Rental"
	CategoryCreditCard   = "Credit Card"
	CategoryOther        = "Other"
)

// Reconciliation statuses. ValidationFailed is a terminal status, not an error:
// it means the reconciliation computation itself could not be carried out.
const (
	StatusReconciled       = "Reconciled"
	StatusUnreconciled     = "Unreconciled"
	StatusValidationFailed = "Validation Failed"
)

// ParsedBy identifies the parser version stamped into statement metadata.
const ParsedBy = "BankStatementParser v1.0"

// DefaultUserID is stamped into session metadata until the service grows
// real user accounts.
const DefaultUserID = "user_12345"
