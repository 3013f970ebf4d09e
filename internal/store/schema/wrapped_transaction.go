package schema

// WrappedTransaction represents the wrapped_transaction table.
// Rows form a tree per transaction: ParentID is nil for calls made directly by the
// top-level transaction and references another wrapped transaction otherwise.
type WrappedTransaction struct {
	ID              int     `gorm:"column:id;primaryKey;autoIncrement"`
	TransactionHash *string `gorm:"column:transactionHash;type:char(66)"`
	ParentID        *int    `gorm:"column:parentId"`
	BlockNumber     int     `gorm:"column:blockNumber;not null"`
	From            string  `gorm:"column:from;not null;type:char(42)"`
	To              *string `gorm:"column:to;type:char(42)"`
	Value           string  `gorm:"column:value;not null;type:varchar(24)"`
	MethodID        string  `gorm:"column:methodId;not null;type:char(10)"`
	MethodName      *string `gorm:"column:methodName;type:varchar(40)"`
}

func (WrappedTransaction) TableName() string {
	return "wrapped_transaction"
}

// WrappedTransactionInput represents the wrapped_transaction_input table
type WrappedTransactionInput struct {
	WrappedTransactionID int    `gorm:"column:wrappedTransactionId;primaryKey;autoIncrement:false"`
	Input                string `gorm:"column:input;not null;type:varchar(65535)"`
}

func (WrappedTransactionInput) TableName() string {
	return "wrapped_transaction_input"
}

// WrappedTransactionParameter represents the wrapped_transaction_parameter table,
// unique on (wrappedTransactionId, position)
type WrappedTransactionParameter struct {
	WrappedTransactionID int    `gorm:"column:wrappedTransactionId;not null"`
	Value                string `gorm:"column:value;not null;type:varchar(65535)"`
	Name                 string `gorm:"column:name;not null;type:varchar(40)"`
	Type                 string `gorm:"column:type;not null;type:varchar(20)"`
	Position             int    `gorm:"column:position;not null;type:smallint"`
}

func (WrappedTransactionParameter) TableName() string {
	return "wrapped_transaction_parameter"
}
