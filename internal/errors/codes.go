package errors

// ErrorCode represents a standardized error code used throughout the ledger
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthUnauthorized ErrorCode = "AUTH_001"
)

// Account construction error codes (ACCOUNT_*)
const (
	AccountInvalidNumber         ErrorCode = "ACCOUNT_001"
	AccountInvalidInitialBalance ErrorCode = "ACCOUNT_002"
	AccountInvalidHolderName     ErrorCode = "ACCOUNT_003"
	AccountInvalidDateOpened     ErrorCode = "ACCOUNT_004"
	AccountInvalidPin            ErrorCode = "ACCOUNT_005"
	AccountInvalidType           ErrorCode = "ACCOUNT_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidCreditAmount ErrorCode = "TRANSACTION_001"
	TransactionInvalidDebitAmount  ErrorCode = "TRANSACTION_002"
	TransactionInsufficientFunds   ErrorCode = "TRANSACTION_003"
	TransactionInvalidInterestRate ErrorCode = "TRANSACTION_004"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferInvalidAmount ErrorCode = "TRANSFER_001"
	TransferLimitExceeded ErrorCode = "TRANSFER_002"
	TransferSameAccount   ErrorCode = "TRANSFER_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthUnauthorized: "Unauthorized",

	// Account construction errors
	AccountInvalidNumber:         "Account number must be exactly 10 characters",
	AccountInvalidInitialBalance: "Initial balance cannot be negative",
	AccountInvalidHolderName:     "Account holder name must be at least 2 characters",
	AccountInvalidDateOpened:     "Date opened cannot be in the future",
	AccountInvalidPin:            "PIN must be at least 4 characters",
	AccountInvalidType:           "Invalid account type",

	// Transaction errors
	TransactionInvalidCreditAmount: "Credit amount cannot be negative",
	TransactionInvalidDebitAmount:  "Debit amount cannot be negative",
	TransactionInsufficientFunds:   "Insufficient balance for debit",
	TransactionInvalidInterestRate: "Interest rate cannot be negative",

	// Transfer errors
	TransferInvalidAmount: "Transfer amount cannot be negative",
	TransferLimitExceeded: "Transfer amount exceeds maximum limit for different account owners",
	TransferSameAccount:   "Cannot transfer to the same account",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
