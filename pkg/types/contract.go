// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// EntitySpan is a single entity mention produced by the recognition model.
// The extraction engine treats spans as read-only input; only ORG and PARTY
// labels participate in party extraction.
type EntitySpan struct {
	// Text is the mention exactly as it appears in the document.
	Text string `json:"text" yaml:"text"`

	// Label is the model's entity label (e.g. "ORG", "PARTY", "DATE").
	Label string `json:"label" yaml:"label"`
}

// Entity labels consumed by the extraction engine.
const (
	LabelOrg   = "ORG"
	LabelParty = "PARTY"
)

// DateContext labels the semantic role of a date within the contract.
type DateContext string

const (
	ContextEffective      DateContext = "Agreement effective date"
	ContextTermination    DateContext = "Termination date"
	ContextAdvancePayment DateContext = "Advance payment due"
	ContextFinalPayment   DateContext = "Final payment due"
	ContextPayment        DateContext = "Payment due"
	ContextValidityEnd    DateContext = "Contract validity end date"
	ContextImportant      DateContext = "Important contract date"
)

// PartyRole labels the contractual role of a party.
type PartyRole string

const (
	RoleServiceProvider  PartyRole = "Service Provider"
	RoleClient           PartyRole = "Client"
	RoleSupplier         PartyRole = "Supplier"
	RoleContractor       PartyRole = "Contractor"
	RoleFirstParty       PartyRole = "First Party"
	RoleSecondParty      PartyRole = "Second Party"
	RoleContractingParty PartyRole = "Contracting Party"
)

// DateRecord is a normalized contract date with its sentence-level context.
type DateRecord struct {
	// Date is an ISO calendar date, always "YYYY-MM-DD". Candidates that do
	// not normalize to a valid calendar date are dropped, never stored empty.
	Date string `json:"date" yaml:"date"`

	// Context is the classification of the sentence the date appeared in.
	Context DateContext `json:"context" yaml:"context"`
}

// AmountRecord is a normalized monetary amount with the currency token as it
// was matched in the text.
type AmountRecord struct {
	// Currency is the matched currency token: INR, USD, Rs, Rs., ₹, or $.
	Currency string `json:"currency" yaml:"currency"`

	// Amount is the numeric value with thousands separators removed.
	Amount float64 `json:"amount" yaml:"amount"`
}

// PartyRecord is one canonical contracting party after reconciliation.
type PartyRecord struct {
	// Name is the canonical name: the longest raw mention in the merged group.
	Name string `json:"name" yaml:"name"`

	// Role is the classified contractual role.
	Role PartyRole `json:"role" yaml:"role"`

	// Confidence is a fixed two-tier score: 0.92 when a specific role was
	// inferred from context, 0.85 for the Contracting Party fallback.
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// ExtractionResponse is the engine's complete output for one document.
// It is constructed fresh per document and never mutated after return.
type ExtractionResponse struct {
	// Dates lists every normalized date in document order.
	Dates []DateRecord `json:"dates" yaml:"dates"`

	// ContractValue is the single total contract value, or null when no
	// sentence mentions one. The last matching sentence wins.
	ContractValue *AmountRecord `json:"contract_value" yaml:"contract_value"`

	// AdvancePayment lists amounts from sentences mentioning an advance payment.
	AdvancePayment []AmountRecord `json:"advance_payment" yaml:"advance_payment"`

	// OtherAmounts lists all remaining currency-tagged amounts.
	OtherAmounts []AmountRecord `json:"other_amounts" yaml:"other_amounts"`

	// Parties lists the reconciled contracting parties in discovery order.
	Parties []PartyRecord `json:"parties" yaml:"parties"`
}

// NewExtractionResponse returns an empty response with all list fields
// allocated, so they serialize as [] rather than null.
func NewExtractionResponse() *ExtractionResponse {
	return &ExtractionResponse{
		Dates:          []DateRecord{},
		AdvancePayment: []AmountRecord{},
		OtherAmounts:   []AmountRecord{},
		Parties:        []PartyRecord{},
	}
}

// DocumentRecord is the archive entry for one processed document. The engine
// itself holds no state across documents; records exist only in the store.
type DocumentRecord struct {
	// ID is a generated UUID for the processed document.
	ID string `json:"id" yaml:"id"`

	// Filename is the base name of the source file, when known.
	Filename string `json:"filename" yaml:"filename"`

	// SHA256 is the hex digest of the extracted full text.
	SHA256 string `json:"sha256" yaml:"sha256"`

	// TextLength is the length of the extracted full text in bytes.
	TextLength int `json:"text_length" yaml:"text_length"`

	// CreatedAt is the extraction timestamp.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// Response is the full extraction output for the document.
	Response *ExtractionResponse `json:"response" yaml:"response"`
}
