package schema

// ERC725YSchema represents the erc725y_schema table - reference data describing a data key
type ERC725YSchema struct {
	Key          string `gorm:"column:key;primaryKey;type:varchar(66)"`
	Name         string `gorm:"column:name;not null;type:varchar(66)"`
	KeyType      string `gorm:"column:keyType;not null;type:varchar(20)"`
	ValueType    string `gorm:"column:valueType;not null;type:varchar(20)"`
	ValueContent string `gorm:"column:valueContent;not null;type:varchar(20)"`
}

func (ERC725YSchema) TableName() string {
	return "erc725y_schema"
}
