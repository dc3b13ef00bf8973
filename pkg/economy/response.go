package economy

import "github.com/shopspring/decimal"

// ResponseType discriminates the outcome of an economy operation.
type ResponseType string

const (
	Success        ResponseType = "SUCCESS"
	Failure        ResponseType = "FAILURE"
	NotImplemented ResponseType = "NOT_IMPLEMENTED"
)

// Response is the result of every mutating or bank query operation.
// It is a snapshot: it never changes after it is returned, even if the
// underlying balance does.
type Response struct {
	// Amount is the amount requested by the caller. For BankBalance it holds
	// the queried balance.
	Amount decimal.Decimal `json:"amount"`
	// Balance is the account balance after the operation, or the balance at
	// the time of failure.
	Balance      decimal.Decimal `json:"balance"`
	Type         ResponseType    `json:"type"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

// TransactionSuccess reports whether the requested operation was applied.
func (r Response) TransactionSuccess() bool {
	return r.Type == Success
}

// NewSuccess builds a SUCCESS response.
func NewSuccess(amount, balance decimal.Decimal) Response {
	return Response{Amount: amount, Balance: balance, Type: Success}
}

// NewFailure builds a FAILURE response. An empty message is replaced so that
// failures are always explained.
func NewFailure(amount, balance decimal.Decimal, message string) Response {
	if message == "" {
		message = "operation failed"
	}
	return Response{Amount: amount, Balance: balance, Type: Failure, ErrorMessage: message}
}

// NewNotImplemented builds a NOT_IMPLEMENTED response. Callers treat it as a
// no-op.
func NewNotImplemented(message string) Response {
	if message == "" {
		message = "not implemented"
	}
	return Response{
		Amount:       decimal.Zero,
		Balance:      decimal.Zero,
		Type:         NotImplemented,
		ErrorMessage: message,
	}
}

// Failure messages shared by every backend.
const (
	MsgInsufficientFunds     = "insufficient funds"
	MsgNegativeWithdraw      = "cannot withdraw negative funds"
	MsgNegativeDeposit       = "cannot deposit negative funds"
	MsgNegativeAmount        = "amount must not be negative"
	MsgBankNotFound          = "bank does not exist"
	MsgBankExists            = "bank already exists"
	MsgInvalidBankName       = "invalid bank name"
	MsgBanksNotSupported     = "bank accounts are not supported"
	MsgAccountNotFound       = "account does not exist"
	MsgUnknownCurrency       = "unknown currency"
	MsgNotBankOwner          = "player is not the bank owner"
	MsgStorageFault          = "economy storage unavailable"
	MsgBackendNotInitialized = "economy backend is not enabled"
)
