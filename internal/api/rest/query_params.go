package rest

import (
	"fmt"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"

	"github.com/lukso-network/lukso-indexer-api/internal/api/shared/dto"
	"github.com/lukso-network/lukso-indexer-api/internal/domain"
	"github.com/lukso-network/lukso-indexer-api/internal/store"
)

// NULL_VALUE is the query value selecting rows where a nullable column is NULL
const NULL_VALUE = "null"

const (
	hashLength     = 32
	selectorLength = 4
)

// FindAddressesQueryParams holds query parameters for GET /addresses
type FindAddressesQueryParams struct {
	Input            string `form:"input"`
	Type             string `form:"type"`
	InterfaceCode    string `form:"interfaceCode"`
	InterfaceVersion string `form:"interfaceVersion"`
	Tag              string `form:"tag"`
	HavePermissions  string `form:"havePermissions"`
	Page             int    `form:"page,default=1"`
}

// FindTokensQueryParams holds query parameters for GET /tokens
type FindTokensQueryParams struct {
	Address          string `form:"address"`
	Input            string `form:"input"`
	ContractName     string `form:"contractName"`
	ContractSymbol   string `form:"contractSymbol"`
	InterfaceCode    string `form:"interfaceCode"`
	InterfaceVersion string `form:"interfaceVersion"`
	Owner            string `form:"owner"`
	Page             int    `form:"page,default=1"`
}

// FindTokenHoldersQueryParams holds query parameters for GET /token-holders
type FindTokenHoldersQueryParams struct {
	HolderAddress   string `form:"holderAddress"`
	ContractAddress string `form:"contractAddress"`
	// TokenID "null" selects fungible balances
	TokenID           *string `form:"tokenId"`
	MinBalance        *int    `form:"minBalance"`
	MaxBalance        *int    `form:"maxBalance"`
	HolderAfterBlock  *int    `form:"holderAfterBlock"`
	HolderBeforeBlock *int    `form:"holderBeforeBlock"`
	Page              int     `form:"page,default=1"`
}

// ParseFindAddressesQuery parses query parameters for GET /addresses
func ParseFindAddressesQuery(c *gin.Context) (*dto.AddressQuery, error) {
	var params FindAddressesQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	query := &dto.AddressQuery{
		Input:            params.Input,
		Type:             domain.ContractType(params.Type),
		InterfaceCode:    params.InterfaceCode,
		InterfaceVersion: params.InterfaceVersion,
		Tag:              params.Tag,
		HavePermissions:  params.HavePermissions,
		Page:             params.Page,
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return query, nil
}

// ParseFindTokensQuery parses query parameters for GET /tokens
func ParseFindTokensQuery(c *gin.Context) (*dto.TokenQuery, error) {
	var params FindTokensQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	query := &dto.TokenQuery{
		Address:          params.Address,
		Input:            params.Input,
		ContractName:     params.ContractName,
		ContractSymbol:   params.ContractSymbol,
		InterfaceCode:    params.InterfaceCode,
		InterfaceVersion: params.InterfaceVersion,
		Owner:            params.Owner,
		Page:             params.Page,
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return query, nil
}

// ParseFindTokenHoldersQuery parses query parameters for GET /token-holders
func ParseFindTokenHoldersQuery(c *gin.Context) (*dto.TokenHolderQuery, error) {
	var params FindTokenHoldersQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	query := &dto.TokenHolderQuery{
		HolderAddress:     params.HolderAddress,
		ContractAddress:   params.ContractAddress,
		TokenID:           parseNullFilter(params.TokenID),
		MinBalance:        params.MinBalance,
		MaxBalance:        params.MaxBalance,
		HolderAfterBlock:  params.HolderAfterBlock,
		HolderBeforeBlock: params.HolderBeforeBlock,
		Page:              params.Page,
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return query, nil
}

// parseNullFilter maps an absent value to any, "null" to NULL and anything else to equality
func parseNullFilter(value *string) store.NullFilter {
	switch {
	case value == nil:
		return store.AnyValue()
	case *value == NULL_VALUE:
		return store.IsNull()
	default:
		return store.Equals(*value)
	}
}

// optionalQuery returns a pointer to the query value, nil when the key is absent
func optionalQuery(c *gin.Context, key string) *string {
	value, ok := c.GetQuery(key)
	if !ok {
		return nil
	}
	return &value
}

// parseIDParam parses a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s: %s", name, c.Param(name))
	}
	return id, nil
}

// isHexOfLength reports whether s is 0x-prefixed hex encoding exactly n bytes
func isHexOfLength(s string, n int) bool {
	b, err := hexutil.Decode(s)
	return err == nil && len(b) == n
}
