package schema

import "github.com/lukso-network/lukso-indexer-api/internal/domain"

// Contract represents the contract table - one row per indexed contract address
type Contract struct {
	// Address is the checksummed contract address (primary key)
	Address string `gorm:"column:address;primaryKey;type:char(42)"`
	// InterfaceCode is the detected standard (e.g. LSP0, LSP7), nil until the contract is decoded
	InterfaceCode *string `gorm:"column:interfaceCode;type:varchar(20)"`
	// InterfaceVersion is the detected standard version
	InterfaceVersion *string `gorm:"column:interfaceVersion;type:varchar(20)"`
	// Type is the contract category derived from the interface
	Type *domain.ContractType `gorm:"column:type;type:contract_type"`
}

func (Contract) TableName() string {
	return "contract"
}

// ContractToken represents the contract_token table - a token issued by a contract
type ContractToken struct {
	// ID is keccak256(address, tokenId), see domain.ContractTokenID
	ID string `gorm:"column:id;primaryKey;type:char(66)"`
	// Address references the issuing contract
	Address string `gorm:"column:address;not null;type:char(42)"`
	// Index is the per-contract position assigned by the contract_token_before_insert trigger.
	// It is never written by the application.
	Index int `gorm:"column:index;->"`
	// DecodedTokenID is the human readable token id, nil until decoded
	DecodedTokenID *string `gorm:"column:decodedTokenId;type:varchar(66)"`
	// TokenID is the raw bytes32 token id
	TokenID string `gorm:"column:tokenId;not null;type:char(66)"`
	// InterfaceCode is the standard of the issuing contract
	InterfaceCode string `gorm:"column:interfaceCode;not null;type:varchar(20)"`
	// LatestKnownOwner is the last owner seen by the indexer
	LatestKnownOwner *string `gorm:"column:latestKnownOwner;type:char(42)"`
}

func (ContractToken) TableName() string {
	return "contract_token"
}
