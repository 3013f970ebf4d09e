package schema

import "time"

// Transaction represents the transaction table
type Transaction struct {
	Hash             string    `gorm:"column:hash;primaryKey;type:char(66)"`
	Nonce            int       `gorm:"column:nonce;not null"`
	BlockHash        string    `gorm:"column:blockHash;not null;type:char(66)"`
	BlockNumber      int       `gorm:"column:blockNumber;not null"`
	Date             time.Time `gorm:"column:date;not null;type:timestamptz"`
	TransactionIndex int       `gorm:"column:transactionIndex;not null"`
	MethodID         string    `gorm:"column:methodId;not null;type:char(10)"`
	MethodName       *string   `gorm:"column:methodName;type:varchar(40)"`
	From             string    `gorm:"column:from;not null;type:char(42)"`
	To               string    `gorm:"column:to;not null;type:char(42)"`
	// Value is the transferred amount in wei as a decimal string
	Value    string `gorm:"column:value;not null;type:varchar(24)"`
	GasPrice string `gorm:"column:gasPrice;not null;type:varchar(14)"`
	Gas      int    `gorm:"column:gas;not null"`
}

func (Transaction) TableName() string {
	return "transaction"
}

// TransactionInput represents the transaction_input table - the raw calldata of a transaction
type TransactionInput struct {
	TransactionHash string `gorm:"column:transactionHash;primaryKey;type:char(66)"`
	Input           string `gorm:"column:input;not null;type:varchar(65535)"`
}

func (TransactionInput) TableName() string {
	return "transaction_input"
}

// TransactionParameter represents the transaction_parameter table - one decoded argument of
// the transaction call, unique on (transactionHash, position)
type TransactionParameter struct {
	TransactionHash string `gorm:"column:transactionHash;not null;type:char(66)"`
	Value           string `gorm:"column:value;not null;type:varchar(65535)"`
	Name            string `gorm:"column:name;not null;type:varchar(40)"`
	Type            string `gorm:"column:type;not null;type:varchar(20)"`
	Position        int    `gorm:"column:position;not null;type:smallint"`
}

func (TransactionParameter) TableName() string {
	return "transaction_parameter"
}
