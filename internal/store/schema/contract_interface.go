package schema

import "github.com/lukso-network/lukso-indexer-api/internal/domain"

// ContractInterface represents the contract_interface table.
// ID is the ERC165 interface id, e.g. 0x9a3bfe88 for LSP0 v0.6.
type ContractInterface struct {
	ID      string               `gorm:"column:id;primaryKey;type:char(10)"`
	Code    string               `gorm:"column:code;not null;type:varchar(20)"`
	Name    string               `gorm:"column:name;not null;type:varchar(40)"`
	Version *string              `gorm:"column:version;type:varchar(10)"`
	Type    *domain.ContractType `gorm:"column:type;type:contract_type"`
}

func (ContractInterface) TableName() string {
	return "contract_interface"
}
