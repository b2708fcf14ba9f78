package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/FDCTax/fdctax-core-api-sub002/internal/workpaper"
)

type transactionResponse struct {
	ID         uuid.UUID          `json:"id"`
	ClientID   string             `json:"client_id"`
	JobID      *uuid.UUID         `json:"job_id,omitempty"`
	ModuleID   *uuid.UUID         `json:"module_id,omitempty"`
	Source     workpaper.Source   `json:"source"`
	Date       time.Time          `json:"date"`
	Amount     decimal.Decimal    `json:"amount"`
	GSTAmount  *decimal.Decimal   `json:"gst_amount,omitempty"`
	Category   workpaper.Category `json:"category"`
	Vendor     string             `json:"vendor,omitempty"`
	ReceiptURL string             `json:"receipt_url,omitempty"`
	Reference  string             `json:"reference,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

func toResponse(tx *workpaper.Transaction) transactionResponse {
	return transactionResponse{
		ID:         tx.ID,
		ClientID:   tx.ClientID,
		JobID:      tx.JobID,
		ModuleID:   tx.ModuleID,
		Source:     tx.Source,
		Date:       tx.Date,
		Amount:     tx.Amount,
		GSTAmount:  tx.GSTAmount,
		Category:   tx.Category,
		Vendor:     tx.Vendor,
		ReceiptURL: tx.ReceiptURL,
		Reference:  tx.Reference,
		CreatedAt:  tx.CreatedAt,
	}
}

func toResponseList(txs []*workpaper.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(tx)
	}

	return resp
}

type overrideResponse struct {
	ID            uuid.UUID           `json:"id"`
	TransactionID uuid.UUID           `json:"transaction_id"`
	JobID         uuid.UUID           `json:"job_id"`
	Amount        *decimal.Decimal    `json:"overridden_amount,omitempty"`
	GSTAmount     *decimal.Decimal    `json:"overridden_gst_amount,omitempty"`
	Category      *workpaper.Category `json:"overridden_category,omitempty"`
	BusinessPct   *decimal.Decimal    `json:"overridden_business_pct,omitempty"`
	Reason        string              `json:"reason"`
	Actor         workpaper.Actor     `json:"actor"`
	CreatedAt     time.Time           `json:"created_at"`
}

func toOverrideResponse(ov *workpaper.TransactionOverride) overrideResponse {
	return overrideResponse{
		ID:            ov.ID,
		TransactionID: ov.TransactionID,
		JobID:         ov.JobID,
		Amount:        ov.Amount,
		GSTAmount:     ov.GSTAmount,
		Category:      ov.Category,
		BusinessPct:   ov.BusinessPct,
		Reason:        ov.Reason,
		Actor:         ov.Actor,
		CreatedAt:     ov.CreatedAt,
	}
}
