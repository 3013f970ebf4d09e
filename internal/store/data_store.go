package store

import (
	"context"

	"github.com/lukso-network/lukso-indexer-api/internal/domain"
	"github.com/lukso-network/lukso-indexer-api/internal/store/schema"
	"github.com/lukso-network/lukso-indexer-api/internal/store/sqlbuilder"
)

// NullFilter is a three-state filter on a nullable column:
// unset matches any value, set with a nil Value matches NULL, set with a Value matches it exactly.
type NullFilter struct {
	Set   bool
	Value *string
}

// AnyValue returns an unset filter
func AnyValue() NullFilter {
	return NullFilter{}
}

// IsNull returns a filter matching NULL only
func IsNull() NullFilter {
	return NullFilter{Set: true}
}

// Equals returns a filter matching v only
func Equals(v string) NullFilter {
	return NullFilter{Set: true, Value: &v}
}

func (f NullFilter) apply(q sqlbuilder.Query, column string) sqlbuilder.Query {
	if !f.Set {
		return q
	}
	return q.WhereNullable(column, f.Value)
}

// ContractSearchFilter holds the optional filters of the address search.
// Empty strings are absent filters.
type ContractSearchFilter struct {
	// Input is matched against the address when it looks like a partial address,
	// against the metadata name otherwise
	Input            string
	Type             domain.ContractType
	InterfaceVersion string
	InterfaceCode    string
	Tag              string
	// HavePermissions keeps contracts on which this address holds non-empty permissions
	HavePermissions string
}

// TokenSearchFilter holds the optional filters of the token search
type TokenSearchFilter struct {
	Address string
	// Input is matched against the token name, the token id and the decoded token id
	Input            string
	ContractName     string
	ContractSymbol   string
	InterfaceCode    string
	InterfaceVersion string
	Owner            string
}

// TokenHolderSearchFilter holds the optional filters of the token holder search.
// Nil bounds are absent, a zero bound is applied.
type TokenHolderSearchFilter struct {
	HolderAddress   string
	ContractAddress string
	TokenID         NullFilter
	MinBalance      *int
	MaxBalance      *int
	// HolderAfterBlock and HolderBeforeBlock are exclusive bounds on holderSinceBlock
	HolderAfterBlock  *int
	HolderBeforeBlock *int
}

// ContractWithMetadata is a contract joined with its contract level metadata row
type ContractWithMetadata struct {
	schema.Contract

	MetadataID  int     `gorm:"column:metadataId"`
	Name        *string `gorm:"column:name"`
	Symbol      *string `gorm:"column:symbol"`
	Description *string `gorm:"column:description"`
	IsNFT       *bool   `gorm:"column:isNFT"`
}

// TokenWithMetadata is a contract token joined with its own metadata, its contract and
// the metadata of the collection
type TokenWithMetadata struct {
	schema.ContractToken

	ContractType     *domain.ContractType `gorm:"column:contractType"`
	InterfaceVersion *string              `gorm:"column:interfaceVersion"`

	MetadataID  int     `gorm:"column:metadataId"`
	Name        *string `gorm:"column:name"`
	Symbol      *string `gorm:"column:symbol"`
	Description *string `gorm:"column:description"`
	IsNFT       *bool   `gorm:"column:isNFT"`

	ContractName        *string `gorm:"column:contractName"`
	ContractSymbol      *string `gorm:"column:contractSymbol"`
	ContractDescription *string `gorm:"column:contractDescription"`
}

// MetadataBundle is a metadata row with its children, written atomically by InsertMetadataWithChildren
type MetadataBundle struct {
	Metadata schema.Metadata
	Images   []schema.MetadataImage
	Links    []schema.MetadataLink
	Tags     []string
	Assets   []schema.MetadataAsset
}

// DataReader is the read side of the data store
//
//go:generate mockgen -source=data_store.go -destination=../mocks/data_store.go -package=mocks -mock_names=DataReader=MockDataReader,DataStore=MockDataStore
type DataReader interface {
	Ping(ctx context.Context) error

	GetContractByAddress(ctx context.Context, address string) (*schema.Contract, error)
	GetContractWithMetadataByAddress(ctx context.Context, address string) (*ContractWithMetadata, error)
	// GetContractsToIndex returns the addresses of contracts whose interface is not detected yet
	GetContractsToIndex(ctx context.Context) ([]string, error)

	GetContractTokenByID(ctx context.Context, id string) (*schema.ContractToken, error)
	// GetTokensToIndex returns the tokens whose id is not decoded yet
	GetTokensToIndex(ctx context.Context) ([]schema.ContractToken, error)

	// GetTokenHolder matches tokenID NULL-aware: nil only matches the fungible balance row
	GetTokenHolder(ctx context.Context, holderAddress, contractAddress string, tokenID *string) (*schema.TokenHolder, error)

	// GetMetadata matches tokenID NULL-aware: nil only matches the contract level row
	GetMetadata(ctx context.Context, address string, tokenID *string) (*schema.Metadata, error)
	GetMetadataImages(ctx context.Context, metadataID int, imageType NullFilter) ([]schema.MetadataImage, error)
	GetMetadataLinks(ctx context.Context, metadataID int) ([]schema.MetadataLink, error)
	GetMetadataTags(ctx context.Context, metadataID int) ([]string, error)
	// GetMetadataAssets filters on fileType when it is not nil
	GetMetadataAssets(ctx context.Context, metadataID int, fileType *string) ([]schema.MetadataAsset, error)

	// GetDataChangedHistoryByAddressAndKey returns the changes ordered by block number
	GetDataChangedHistoryByAddressAndKey(ctx context.Context, address, key string) ([]schema.DataChanged, error)
	GetLatestDataChanged(ctx context.Context, address, key string) (*schema.DataChanged, error)

	GetTransactionByHash(ctx context.Context, hash string) (*schema.Transaction, error)
	GetTransactionInput(ctx context.Context, transactionHash string) (*string, error)
	GetTransactionParameters(ctx context.Context, transactionHash string) ([]schema.TransactionParameter, error)

	GetWrappedTxByID(ctx context.Context, id int) (*schema.WrappedTransaction, error)
	GetWrappedTxInput(ctx context.Context, wrappedTransactionID int) (*string, error)
	GetWrappedTxParameters(ctx context.Context, wrappedTransactionID int) ([]schema.WrappedTransactionParameter, error)
	// GetWrappedTxsByTransactionHash returns the wrapped transactions of a transaction ordered by id,
	// optionally restricted to one method
	GetWrappedTxsByTransactionHash(ctx context.Context, transactionHash string, methodID *string) ([]schema.WrappedTransaction, error)

	GetEventByID(ctx context.Context, id string) (*schema.Event, error)
	GetEventParameters(ctx context.Context, eventID string) ([]schema.EventParameter, error)

	// Searches take a limit <= 0 as unbounded. Each Count applies the same filters as its Search.
	SearchContracts(ctx context.Context, filter ContractSearchFilter, limit, offset int) ([]ContractWithMetadata, error)
	CountContracts(ctx context.Context, filter ContractSearchFilter) (int, error)
	SearchTokens(ctx context.Context, filter TokenSearchFilter, limit, offset int) ([]TokenWithMetadata, error)
	CountTokens(ctx context.Context, filter TokenSearchFilter) (int, error)
	SearchTokenHolders(ctx context.Context, filter TokenHolderSearchFilter, limit, offset int) ([]schema.TokenHolder, error)
	CountTokenHolders(ctx context.Context, filter TokenHolderSearchFilter) (int, error)
}

// DataStore is the full data store. Inserts into uniquely constrained tables take a conflict policy.
// A violation under ConflictThrow returns an error matching domain.ErrConstraintViolation.
type DataStore interface {
	DataReader

	InsertContract(ctx context.Context, contract schema.Contract, policy domain.ConflictPolicy) error
	// DeleteContract deletes a contract with every token, holder and metadata row referencing it
	DeleteContract(ctx context.Context, address string) error

	// InsertContractToken never writes the index, it is assigned by the database.
	// ConflictUpdate updates interfaceCode, and decodedTokenId and latestKnownOwner when provided.
	InsertContractToken(ctx context.Context, token schema.ContractToken, policy domain.ConflictPolicy) error
	InsertTokenHolder(ctx context.Context, holder schema.TokenHolder, policy domain.ConflictPolicy) error

	// InsertMetadata returns the id of the inserted, updated or (ConflictIgnore) existing row
	InsertMetadata(ctx context.Context, metadata schema.Metadata, policy domain.ConflictPolicy) (int, error)
	InsertMetadataWithChildren(ctx context.Context, bundle MetadataBundle, policy domain.ConflictPolicy) (int, error)
	InsertMetadataImages(ctx context.Context, metadataID int, images []schema.MetadataImage, policy domain.ConflictPolicy) error
	InsertMetadataLinks(ctx context.Context, metadataID int, links []schema.MetadataLink, policy domain.ConflictPolicy) error
	InsertMetadataTags(ctx context.Context, metadataID int, tags []string, policy domain.ConflictPolicy) error
	InsertMetadataAssets(ctx context.Context, metadataID int, assets []schema.MetadataAsset, policy domain.ConflictPolicy) error

	InsertDataChanged(ctx context.Context, change schema.DataChanged) error

	InsertTransaction(ctx context.Context, tx schema.Transaction) error
	InsertTransactionInput(ctx context.Context, input schema.TransactionInput) error
	InsertTransactionParameters(ctx context.Context, transactionHash string, params []schema.TransactionParameter, policy domain.ConflictPolicy) error

	// InsertWrappedTx returns the generated id
	InsertWrappedTx(ctx context.Context, wrapped schema.WrappedTransaction) (int, error)
	InsertWrappedTxInput(ctx context.Context, input schema.WrappedTransactionInput) error
	InsertWrappedTxParameters(ctx context.Context, wrappedTransactionID int, params []schema.WrappedTransactionParameter, policy domain.ConflictPolicy) error

	InsertEvent(ctx context.Context, event schema.Event) error
	InsertEventParameters(ctx context.Context, eventID string, params []schema.EventParameter, policy domain.ConflictPolicy) error
}
