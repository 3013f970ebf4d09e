package dto

import (
	"github.com/lukso-network/lukso-indexer-api/internal/domain"
	"github.com/lukso-network/lukso-indexer-api/internal/store"
	"github.com/lukso-network/lukso-indexer-api/internal/store/schema"
)

// AddressResponse is a contract with its contract level metadata.
// ID is the metadata id used to look up images, links, tags and assets.
type AddressResponse struct {
	ID               int                  `json:"id"`
	Address          string               `json:"address"`
	InterfaceCode    *string              `json:"interfaceCode"`
	InterfaceVersion *string              `json:"interfaceVersion"`
	Type             *domain.ContractType `json:"type"`
	Name             *string              `json:"name"`
	Symbol           *string              `json:"symbol"`
	Description      *string              `json:"description"`
	IsNFT            *bool                `json:"isNFT"`
}

// MapAddressToDTO maps a contract with metadata to an address response
func MapAddressToDTO(c store.ContractWithMetadata) AddressResponse {
	return AddressResponse{
		ID:               c.MetadataID,
		Address:          c.Address,
		InterfaceCode:    c.InterfaceCode,
		InterfaceVersion: c.InterfaceVersion,
		Type:             c.Type,
		Name:             c.Name,
		Symbol:           c.Symbol,
		Description:      c.Description,
		IsNFT:            c.IsNFT,
	}
}

// TokenResponse is a contract token with its metadata and the metadata of its collection
type TokenResponse struct {
	ID                    int     `json:"id"`
	Address               string  `json:"address"`
	TokenID               string  `json:"tokenId"`
	Index                 int     `json:"index"`
	DecodedTokenID        *string `json:"decodedTokenId"`
	Balance               int     `json:"balance"`
	InterfaceCode         string  `json:"interfaceCode"`
	InterfaceVersion      *string `json:"interfaceVersion"`
	Name                  *string `json:"name"`
	Symbol                *string `json:"symbol"`
	Description           *string `json:"description"`
	CollectionName        *string `json:"collectionName"`
	CollectionSymbol      *string `json:"collectionSymbol"`
	CollectionDescription *string `json:"collectionDescription"`
	IsNFT                 bool    `json:"isNFT"`
	LatestKnownOwner      *string `json:"latestKnownOwner"`
}

// MapTokenToDTO maps a token search row. Every searched token is reported as an NFT with a zero balance.
func MapTokenToDTO(t store.TokenWithMetadata) TokenResponse {
	return TokenResponse{
		ID:                    t.MetadataID,
		Address:               t.Address,
		TokenID:               t.TokenID,
		Index:                 t.Index,
		DecodedTokenID:        t.DecodedTokenID,
		Balance:               0,
		InterfaceCode:         t.InterfaceCode,
		InterfaceVersion:      t.InterfaceVersion,
		Name:                  t.Name,
		Symbol:                t.Symbol,
		Description:           t.Description,
		CollectionName:        t.ContractName,
		CollectionSymbol:      t.ContractSymbol,
		CollectionDescription: t.ContractDescription,
		IsNFT:                 true,
		LatestKnownOwner:      t.LatestKnownOwner,
	}
}

// TokenHolderResponse is a fungible balance (nil TokenID) or the ownership of one token
type TokenHolderResponse struct {
	ContractAddress  string  `json:"contractAddress"`
	HolderAddress    string  `json:"holderAddress"`
	TokenID          *string `json:"tokenId"`
	BalanceInEth     int     `json:"balanceInEth"`
	BalanceInWei     string  `json:"balanceInWei"`
	HolderSinceBlock int     `json:"holderSinceBlock"`
}

// MapTokenHolderToDTO maps a token holder row
func MapTokenHolderToDTO(h schema.TokenHolder) TokenHolderResponse {
	return TokenHolderResponse{
		ContractAddress:  h.ContractAddress,
		HolderAddress:    h.HolderAddress,
		TokenID:          h.TokenID,
		BalanceInEth:     h.BalanceInEth,
		BalanceInWei:     h.BalanceInWei,
		HolderSinceBlock: h.HolderSinceBlock,
	}
}

// MetadataImageResponse is an image of a metadata row
type MetadataImageResponse struct {
	URL    string  `json:"url"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Type   *string `json:"type"`
	Hash   string  `json:"hash"`
}

// MetadataLinkResponse is a link of a metadata row
type MetadataLinkResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// MetadataAssetResponse is an asset of a metadata row
type MetadataAssetResponse struct {
	URL      string `json:"url"`
	FileType string `json:"fileType"`
	Hash     string `json:"hash"`
}

// WrappedTxResponse is a call nested in a transaction
type WrappedTxResponse struct {
	ID              int     `json:"id"`
	ParentID        *int    `json:"parentId"`
	TransactionHash *string `json:"transactionHash"`
	BlockNumber     int     `json:"blockNumber"`
	From            string  `json:"from"`
	To              *string `json:"to"`
	Value           string  `json:"value"`
	MethodID        string  `json:"methodId"`
	MethodName      *string `json:"methodName"`
}

// WrappedTxParameterResponse is a decoded parameter of a wrapped transaction
type WrappedTxParameterResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Value    string `json:"value"`
	Position int    `json:"position"`
}

// MethodResponse is a known method or event signature
type MethodResponse struct {
	ID   string            `json:"id"`
	Hash string            `json:"hash"`
	Name string            `json:"name"`
	Type domain.MethodType `json:"type"`
}

// MethodParameterResponse is a parameter of a method or event signature
type MethodParameterResponse struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Indexed  bool   `json:"indexed"`
	Position int    `json:"position"`
}

// MapSlice maps every element of items, returning an empty non-nil slice for no items
func MapSlice[S any, D any](items []S, fn func(S) D) []D {
	result := make([]D, len(items))
	for i, item := range items {
		result[i] = fn(item)
	}
	return result
}

func MapImageToDTO(i schema.MetadataImage) MetadataImageResponse {
	return MetadataImageResponse{URL: i.URL, Width: i.Width, Height: i.Height, Type: i.Type, Hash: i.Hash}
}

func MapLinkToDTO(l schema.MetadataLink) MetadataLinkResponse {
	return MetadataLinkResponse{Title: l.Title, URL: l.URL}
}

func MapAssetToDTO(a schema.MetadataAsset) MetadataAssetResponse {
	return MetadataAssetResponse{URL: a.URL, FileType: a.FileType, Hash: a.Hash}
}

func MapWrappedTxToDTO(w schema.WrappedTransaction) WrappedTxResponse {
	return WrappedTxResponse{
		ID:              w.ID,
		ParentID:        w.ParentID,
		TransactionHash: w.TransactionHash,
		BlockNumber:     w.BlockNumber,
		From:            w.From,
		To:              w.To,
		Value:           w.Value,
		MethodID:        w.MethodID,
		MethodName:      w.MethodName,
	}
}

func MapWrappedTxParameterToDTO(p schema.WrappedTransactionParameter) WrappedTxParameterResponse {
	return WrappedTxParameterResponse{Name: p.Name, Type: p.Type, Value: p.Value, Position: p.Position}
}

func MapMethodToDTO(m schema.MethodInterface) MethodResponse {
	return MethodResponse{ID: m.ID, Hash: m.Hash, Name: m.Name, Type: m.Type}
}

func MapMethodParameterToDTO(p schema.MethodParameter) MethodParameterResponse {
	return MethodParameterResponse{Name: p.Name, Type: p.Type, Indexed: p.Indexed, Position: p.Position}
}
