package schema

// TokenHolder represents the token_holder table.
// A nil TokenID is a fungible balance, a non-nil TokenID is ownership of one NFT.
// The two cases are separate uniqueness domains (partial unique indexes).
type TokenHolder struct {
	HolderAddress   string  `gorm:"column:holderAddress;not null;type:char(42)"`
	ContractAddress string  `gorm:"column:contractAddress;not null;type:char(42)"`
	TokenID         *string `gorm:"column:tokenId;type:char(66)"`
	// BalanceInWei is the raw balance as a decimal string
	BalanceInWei string `gorm:"column:balanceInWei;not null;type:varchar(78)"`
	// BalanceInEth is the balance in the token's display unit
	BalanceInEth     int `gorm:"column:balanceInEth;not null"`
	HolderSinceBlock int `gorm:"column:holderSinceBlock;not null"`
}

func (TokenHolder) TableName() string {
	return "token_holder"
}
