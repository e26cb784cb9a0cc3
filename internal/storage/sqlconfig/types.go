package sqlconfig

type AccountType int8

const (
	AccountTypeCash AccountType = iota
	AccountTypeBank
	AccountTypeCard
	AccountTypeOther
)

type TransactionType int8

const (
	TransactionTypeCredit TransactionType = iota
	TransactionTypeDebit
)

type PaymentMethod int8

const (
	PaymentMethodCash PaymentMethod = iota
	PaymentMethodCard
	PaymentMethodUPI
	PaymentMethodOther
)
