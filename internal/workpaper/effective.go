package workpaper

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EffectiveTransaction is the computed view of a transaction with its
// job-scoped override applied. It is never persisted; calculations consume
// this projection only.
type EffectiveTransaction struct {
	TransactionID uuid.UUID  `json:"transaction_id"`
	ClientID      string     `json:"client_id"`
	JobID         *uuid.UUID `json:"job_id,omitempty"`
	ModuleID      *uuid.UUID `json:"module_id,omitempty"`
	Source        Source     `json:"source"`
	Date          time.Time  `json:"date"`
	Vendor        string     `json:"vendor,omitempty"`
	ReceiptURL    string     `json:"receipt_url,omitempty"`

	OriginalAmount    decimal.Decimal  `json:"original_amount"`
	OriginalGSTAmount *decimal.Decimal `json:"original_gst_amount,omitempty"`
	OriginalCategory  Category         `json:"original_category"`

	EffectiveAmount      decimal.Decimal  `json:"effective_amount"`
	EffectiveGSTAmount   *decimal.Decimal `json:"effective_gst_amount,omitempty"`
	EffectiveCategory    Category         `json:"effective_category"`
	EffectiveBusinessPct decimal.Decimal  `json:"effective_business_pct"`

	HasOverride    bool       `json:"has_override"`
	OverrideID     *uuid.UUID `json:"override_id,omitempty"`
	OverrideReason string     `json:"override_reason,omitempty"`

	BusinessAmount    decimal.Decimal  `json:"business_amount"`
	BusinessGSTAmount *decimal.Decimal `json:"business_gst_amount,omitempty"`
}

// BuildEffective merges a transaction with its job-scoped override, if any.
// Per overridable field: an explicitly-set override value wins, otherwise
// the transaction's original value; business percentage defaults to 100.
// Pure and deterministic: identical inputs always yield identical output.
func BuildEffective(tx *Transaction, ov *TransactionOverride) EffectiveTransaction {
	eff := EffectiveTransaction{
		TransactionID: tx.ID,
		ClientID:      tx.ClientID,
		JobID:         tx.JobID,
		ModuleID:      tx.ModuleID,
		Source:        tx.Source,
		Date:          tx.Date,
		Vendor:        tx.Vendor,
		ReceiptURL:    tx.ReceiptURL,

		OriginalAmount:    tx.Amount,
		OriginalGSTAmount: tx.GSTAmount,
		OriginalCategory:  tx.Category,

		EffectiveAmount:      tx.Amount,
		EffectiveGSTAmount:   tx.GSTAmount,
		EffectiveCategory:    tx.Category,
		EffectiveBusinessPct: hundred,
	}

	if ov != nil {
		eff.HasOverride = true
		ovID := ov.ID
		eff.OverrideID = &ovID
		eff.OverrideReason = ov.Reason
		eff.JobID = &ov.JobID

		if ov.Amount != nil {
			eff.EffectiveAmount = *ov.Amount
		}

		if ov.GSTAmount != nil {
			eff.EffectiveGSTAmount = ov.GSTAmount
		}

		if ov.Category != nil {
			eff.EffectiveCategory = *ov.Category
		}

		if ov.BusinessPct != nil {
			eff.EffectiveBusinessPct = *ov.BusinessPct
		}
	}

	pct := eff.EffectiveBusinessPct.Div(hundred)
	eff.BusinessAmount = eff.EffectiveAmount.Mul(pct)

	if eff.EffectiveGSTAmount != nil {
		gst := eff.EffectiveGSTAmount.Mul(pct)
		eff.BusinessGSTAmount = &gst
	}

	return eff
}
