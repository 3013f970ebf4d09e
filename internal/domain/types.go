package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ContractType classifies an indexed contract
type ContractType string

const (
	ContractTypeProfile    ContractType = "profile"
	ContractTypeAsset      ContractType = "asset"
	ContractTypeCollection ContractType = "collection"
)

// Valid checks if the contract type is one of the enum values
func (t ContractType) Valid() bool {
	return t == ContractTypeProfile ||
		t == ContractTypeAsset ||
		t == ContractTypeCollection
}

// Value implements driver.Valuer for the contract_type enum column
func (t ContractType) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner for the contract_type enum column
func (t *ContractType) Scan(src any) error {
	s, err := scanEnum(src)
	if err != nil {
		return err
	}
	*t = ContractType(s)
	return nil
}

// MethodType classifies a method interface
type MethodType string

const (
	MethodTypeEvent    MethodType = "event"
	MethodTypeFunction MethodType = "function"
)

// Valid checks if the method type is one of the enum values
func (t MethodType) Valid() bool {
	return t == MethodTypeEvent || t == MethodTypeFunction
}

// Value implements driver.Valuer for the method_type enum column
func (t MethodType) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner for the method_type enum column
func (t *MethodType) Scan(src any) error {
	s, err := scanEnum(src)
	if err != nil {
		return err
	}
	*t = MethodType(s)
	return nil
}

func scanEnum(src any) (string, error) {
	switch v := src.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("cannot scan %T into enum", src)
	}
}

// IsEthereumAddress reports whether input has the shape of a full 0x-prefixed address.
// Only prefix and length are verified.
func IsEthereumAddress(input string) bool {
	return strings.HasPrefix(input, "0x") && len(input) == ADDRESS_LENGTH
}

// IsPartialEthereumAddress reports whether input is a 0x-prefixed fragment shorter than an address
func IsPartialEthereumAddress(input string) bool {
	return strings.HasPrefix(input, "0x") && len(input) < ADDRESS_LENGTH
}

// IsValidAddress checks if the address is a well-formed hex address
func IsValidAddress(address string) bool {
	return IsEthereumAddress(address) && common.IsHexAddress(address)
}

// PermissionsDataKey builds the ERC725Y data key holding the permissions of a controller address
func PermissionsDataKey(address string) string {
	return PERMISSIONS_KEY_PREFIX + strings.TrimPrefix(address, "0x")
}

// ContractTokenID derives the contract_token primary key from a contract address and a token id.
// It is keccak256 over the packed 20 byte address followed by the 32 byte token id.
func ContractTokenID(address, tokenID string) string {
	packed := append(common.HexToAddress(address).Bytes(), common.HexToHash(tokenID).Bytes()...)
	return crypto.Keccak256Hash(packed).Hex()
}
