package model

const (
	TableName  = "transactions"
	EntityName = "transaction"

	FieldID          = "id"
	FieldReferenceID = "reference_id"
	FieldDate        = "date"
)

type Type string

const (
	TypeReceipt    Type = "RECEIPT"
	TypePayment    Type = "PAYMENT"
	TypeJournal    Type = "JOURNAL"
	TypeDebitNote  Type = "DEBIT_NOTE"
	TypeCreditNote Type = "CREDIT_NOTE"
	TypeRefund     Type = "REFUND"
)

const AccountGroupDirectIncome = "Direct Income"

// Transaction is an append-only ledger entry. Amount is in minor currency units.
type Transaction struct {
	ID           string `json:"id"                    db:"id"`
	Date         string `json:"date"                  db:"date"`
	Type         Type   `json:"type"                  db:"type"`
	AccountGroup string `json:"accountGroup"          db:"account_group"`
	Ledger       string `json:"ledger"                db:"ledger"`
	Amount       int64  `json:"amount"                db:"amount"`
	Description  string `json:"description"           db:"description"`
	ReferenceID  string `json:"referenceId,omitempty" db:"reference_id"`
	EntityName   string `json:"entityName,omitempty"  db:"entity_name"`
}

func (t Transaction) RecordID() string {
	return t.ID
}
