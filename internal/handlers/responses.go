package handlers

import "familia/internal/models"

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse carries a plain confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// TransactionResponse wraps a single transaction.
type TransactionResponse struct {
	Transaction models.Transaction `json:"transaction"`
}

// TransactionsResponse wraps the installments created from one request.
type TransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
}
