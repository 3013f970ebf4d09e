package store

import (
	"context"

	"github.com/lukso-network/lukso-indexer-api/internal/store/schema"
)

// StructureReader is the read side of the structure store (reference data and indexer config)
//
//go:generate mockgen -source=structure_store.go -destination=../mocks/structure_store.go -package=mocks -mock_names=StructureReader=MockStructureReader,StructureStore=MockStructureStore
type StructureReader interface {
	// GetConfig returns the singleton config row, or domain.ErrConfigNotInitialized when it is missing
	GetConfig(ctx context.Context) (*schema.Config, error)
	// GetErc725ySchemaByKey matches on the first 26 characters of key so mapping keys
	// resolve to the schema of their fixed prefix
	GetErc725ySchemaByKey(ctx context.Context, key string) (*schema.ERC725YSchema, error)
	// GetContractInterfaceByID serves cached interfaces first and falls back to storage
	GetContractInterfaceByID(ctx context.Context, id string) (*schema.ContractInterface, error)
	// GetContractInterfaces returns every interface, reloading the cache when it is stale
	GetContractInterfaces(ctx context.Context) ([]schema.ContractInterface, error)
	GetMethodInterfaceByID(ctx context.Context, id string) (*schema.MethodInterface, error)
	// GetMethodParametersByMethodID returns the parameters ordered by position
	GetMethodParametersByMethodID(ctx context.Context, methodID string) ([]schema.MethodParameter, error)
	Ping(ctx context.Context) error
}

// StructureStore is the full structure store
type StructureStore interface {
	StructureReader

	UpdateLatestIndexedBlock(ctx context.Context, blockNumber int) error
	UpdateLatestIndexedEventBlock(ctx context.Context, blockNumber int) error
	SetPaused(ctx context.Context, paused bool) error

	InsertErc725ySchema(ctx context.Context, s schema.ERC725YSchema) error
	// InsertContractInterface persists ci and makes it visible through the cache immediately
	InsertContractInterface(ctx context.Context, ci schema.ContractInterface) error
	InsertMethodInterface(ctx context.Context, mi schema.MethodInterface) error
	InsertMethodParameter(ctx context.Context, p schema.MethodParameter) error
}
