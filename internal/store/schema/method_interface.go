package schema

import "github.com/lukso-network/lukso-indexer-api/internal/domain"

// MethodInterface represents the method_interface table - a known function or event signature
type MethodInterface struct {
	// ID is the 4 byte selector
	ID string `gorm:"column:id;primaryKey;type:char(10)"`
	// Hash is the full keccak256 of the signature
	Hash string            `gorm:"column:hash;not null;type:char(66)"`
	Name string            `gorm:"column:name;not null;type:varchar(40)"`
	Type domain.MethodType `gorm:"column:type;not null;type:method_type"`
}

func (MethodInterface) TableName() string {
	return "method_interface"
}

// MethodParameter represents the method_parameter table - one ordered argument of a method
type MethodParameter struct {
	MethodID string `gorm:"column:methodId;not null;type:char(10)"`
	Name     string `gorm:"column:name;not null;type:varchar(40)"`
	Type     string `gorm:"column:type;not null;type:varchar(40)"`
	Indexed  bool   `gorm:"column:indexed;not null"`
	Position int    `gorm:"column:position;not null"`
}

func (MethodParameter) TableName() string {
	return "method_parameter"
}
