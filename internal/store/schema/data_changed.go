package schema

// DataChanged represents the erc725y_data_changed table.
// It is an append-only log of ERC725Y storage writes, unique on (address, key, blockNumber).
type DataChanged struct {
	Address      string  `gorm:"column:address;not null;type:char(42)"`
	Key          string  `gorm:"column:key;not null;type:char(66)"`
	Value        string  `gorm:"column:value;not null;type:varchar(2048)"`
	DecodedValue *string `gorm:"column:decodedValue;type:varchar(2048)"`
	BlockNumber  int     `gorm:"column:blockNumber;not null"`
}

func (DataChanged) TableName() string {
	return "erc725y_data_changed"
}
