package dto

import (
	"fmt"

	"github.com/lukso-network/lukso-indexer-api/internal/api/shared/constants"
	apierrors "github.com/lukso-network/lukso-indexer-api/internal/api/shared/errors"
	"github.com/lukso-network/lukso-indexer-api/internal/domain"
	"github.com/lukso-network/lukso-indexer-api/internal/store"
)

// AddressQuery holds the arguments of the address search
type AddressQuery struct {
	// Input is a full address, a partial address or a name fragment
	Input            string
	Type             domain.ContractType
	InterfaceCode    string
	InterfaceVersion string
	Tag              string
	HavePermissions  string
	Page             int
}

// Validate validates the query
func (q *AddressQuery) Validate() error {
	if q.Type != "" && !q.Type.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid type: %s", q.Type))
	}
	if q.HavePermissions != "" && !domain.IsValidAddress(q.HavePermissions) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid havePermissions address: %s", q.HavePermissions))
	}
	return nil
}

// Filter converts the query to a store filter
func (q *AddressQuery) Filter() store.ContractSearchFilter {
	return store.ContractSearchFilter{
		Input:            q.Input,
		Type:             q.Type,
		InterfaceVersion: q.InterfaceVersion,
		InterfaceCode:    q.InterfaceCode,
		Tag:              q.Tag,
		HavePermissions:  q.HavePermissions,
	}
}

// TokenQuery holds the arguments of the token search
type TokenQuery struct {
	// Address restricts the search to one contract
	Address          string
	Input            string
	ContractName     string
	ContractSymbol   string
	InterfaceCode    string
	InterfaceVersion string
	Owner            string
	Page             int
}

// Validate validates the query
func (q *TokenQuery) Validate() error {
	// address is a substring filter, a 0x-prefixed fragment is enough
	if q.Address != "" && !domain.IsPartialEthereumAddress(q.Address) && !domain.IsEthereumAddress(q.Address) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid address: %s", q.Address))
	}
	if q.Owner != "" && !domain.IsValidAddress(q.Owner) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid owner address: %s", q.Owner))
	}
	return nil
}

// Filter converts the query to a store filter
func (q *TokenQuery) Filter() store.TokenSearchFilter {
	return store.TokenSearchFilter{
		Address:          q.Address,
		Input:            q.Input,
		ContractName:     q.ContractName,
		ContractSymbol:   q.ContractSymbol,
		InterfaceCode:    q.InterfaceCode,
		InterfaceVersion: q.InterfaceVersion,
		Owner:            q.Owner,
	}
}

// TokenHolderQuery holds the arguments of the token holder search
type TokenHolderQuery struct {
	HolderAddress     string
	ContractAddress   string
	TokenID           store.NullFilter
	MinBalance        *int
	MaxBalance        *int
	HolderAfterBlock  *int
	HolderBeforeBlock *int
	Page              int
}

// Validate validates the query
func (q *TokenHolderQuery) Validate() error {
	if q.HolderAddress != "" && !domain.IsValidAddress(q.HolderAddress) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid holderAddress: %s", q.HolderAddress))
	}
	if q.ContractAddress != "" && !domain.IsValidAddress(q.ContractAddress) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid contractAddress: %s", q.ContractAddress))
	}
	if q.MinBalance != nil && q.MaxBalance != nil && *q.MinBalance > *q.MaxBalance {
		return apierrors.NewValidationError("minBalance must not exceed maxBalance")
	}
	return nil
}

// Filter converts the query to a store filter
func (q *TokenHolderQuery) Filter() store.TokenHolderSearchFilter {
	return store.TokenHolderSearchFilter{
		HolderAddress:     q.HolderAddress,
		ContractAddress:   q.ContractAddress,
		TokenID:           q.TokenID,
		MinBalance:        q.MinBalance,
		MaxBalance:        q.MaxBalance,
		HolderAfterBlock:  q.HolderAfterBlock,
		HolderBeforeBlock: q.HolderBeforeBlock,
	}
}

// NormalizePage returns page, or the first page when it is lower
func NormalizePage(page int) int {
	if page < constants.FIRST_PAGE {
		return constants.FIRST_PAGE
	}
	return page
}
