package executor

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/lukso-network/lukso-indexer-api/internal/api/shared/constants"
	"github.com/lukso-network/lukso-indexer-api/internal/api/shared/dto"
	"github.com/lukso-network/lukso-indexer-api/internal/domain"
	"github.com/lukso-network/lukso-indexer-api/internal/logger"
	"github.com/lukso-network/lukso-indexer-api/internal/store"
)

// Executor is the interface for the API executor.
// Store errors are returned unchanged and nothing is retried.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// FindAddresses looks up a full address directly and searches contracts otherwise
	FindAddresses(ctx context.Context, query dto.AddressQuery) (*dto.Page[dto.AddressResponse], error)
	FindTokens(ctx context.Context, query dto.TokenQuery) (*dto.Page[dto.TokenResponse], error)
	FindTokenHolders(ctx context.Context, query dto.TokenHolderQuery) (*dto.Page[dto.TokenHolderResponse], error)

	FindImages(ctx context.Context, metadataID int, imageType store.NullFilter) ([]dto.MetadataImageResponse, error)
	FindAssets(ctx context.Context, metadataID int, fileType *string) ([]dto.MetadataAssetResponse, error)
	FindLinks(ctx context.Context, metadataID int) ([]dto.MetadataLinkResponse, error)
	FindTags(ctx context.Context, metadataID int) ([]string, error)

	FindWrappedTxs(ctx context.Context, transactionHash string, methodID *string) ([]dto.WrappedTxResponse, error)
	FindWrappedTxParameters(ctx context.Context, wrappedTxID int) ([]dto.WrappedTxParameterResponse, error)

	// FindMethod returns nil when the method is unknown
	FindMethod(ctx context.Context, id string) (*dto.MethodResponse, error)
	FindMethodParameters(ctx context.Context, id string) ([]dto.MethodParameterResponse, error)

	// CheckHealth pings the data and the structure stores
	CheckHealth(ctx context.Context) error
}

type executor struct {
	data      store.DataReader
	structure store.StructureReader
}

func NewExecutor(data store.DataReader, structure store.StructureReader) Executor {
	return &executor{data: data, structure: structure}
}

func (e *executor) FindAddresses(ctx context.Context, query dto.AddressQuery) (*dto.Page[dto.AddressResponse], error) {
	page := dto.NormalizePage(query.Page)
	size := constants.ADDRESS_PAGE_SIZE

	if domain.IsEthereumAddress(query.Input) {
		contract, err := e.data.GetContractWithMetadataByAddress(ctx, query.Input)
		if err != nil {
			logger.FromContext(ctx).Named("executor").Error("failed to get contract by address", zap.String("address", query.Input), zap.Error(err))
			return nil, err
		}
		if contract == nil {
			return dto.NewPage[dto.AddressResponse](nil, 0, page, size), nil
		}
		return dto.NewPage([]dto.AddressResponse{dto.MapAddressToDTO(*contract)}, 1, page, size), nil
	}

	filter := query.Filter()
	count, err := e.data.CountContracts(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Named("executor").Error("failed to count addresses", zap.Any("query", query), zap.Error(err))
		return nil, err
	}

	offset := dto.Offset(page, size)
	if offset >= count {
		return dto.NewPage[dto.AddressResponse](nil, count, page, size), nil
	}

	contracts, err := e.data.SearchContracts(ctx, filter, size, offset)
	if err != nil {
		logger.FromContext(ctx).Named("executor").Error("failed to search addresses", zap.Any("query", query), zap.Error(err))
		return nil, err
	}

	return dto.NewPage(dto.MapSlice(contracts, dto.MapAddressToDTO), count, page, size), nil
}

func (e *executor) FindTokens(ctx context.Context, query dto.TokenQuery) (*dto.Page[dto.TokenResponse], error) {
	page := dto.NormalizePage(query.Page)
	size := constants.ADDRESS_PAGE_SIZE
	filter := query.Filter()

	tokens, err := e.data.SearchTokens(ctx, filter, size, dto.Offset(page, size))
	if err != nil {
		return nil, err
	}

	count, err := e.data.CountTokens(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.NewPage(dto.MapSlice(tokens, dto.MapTokenToDTO), count, page, size), nil
}

func (e *executor) FindTokenHolders(ctx context.Context, query dto.TokenHolderQuery) (*dto.Page[dto.TokenHolderResponse], error) {
	page := dto.NormalizePage(query.Page)
	size := constants.ADDRESS_PAGE_SIZE
	filter := query.Filter()

	holders, err := e.data.SearchTokenHolders(ctx, filter, size, dto.Offset(page, size))
	if err != nil {
		return nil, err
	}

	count, err := e.data.CountTokenHolders(ctx, filter)
	if err != nil {
		return nil, err
	}

	return dto.NewPage(dto.MapSlice(holders, dto.MapTokenHolderToDTO), count, page, size), nil
}

func (e *executor) FindImages(ctx context.Context, metadataID int, imageType store.NullFilter) ([]dto.MetadataImageResponse, error) {
	images, err := e.data.GetMetadataImages(ctx, metadataID, imageType)
	if err != nil {
		return nil, err
	}
	return dto.MapSlice(images, dto.MapImageToDTO), nil
}

func (e *executor) FindAssets(ctx context.Context, metadataID int, fileType *string) ([]dto.MetadataAssetResponse, error) {
	assets, err := e.data.GetMetadataAssets(ctx, metadataID, fileType)
	if err != nil {
		return nil, err
	}
	return dto.MapSlice(assets, dto.MapAssetToDTO), nil
}

func (e *executor) FindLinks(ctx context.Context, metadataID int) ([]dto.MetadataLinkResponse, error) {
	links, err := e.data.GetMetadataLinks(ctx, metadataID)
	if err != nil {
		return nil, err
	}
	return dto.MapSlice(links, dto.MapLinkToDTO), nil
}

func (e *executor) FindTags(ctx context.Context, metadataID int) ([]string, error) {
	tags, err := e.data.GetMetadataTags(ctx, metadataID)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func (e *executor) FindWrappedTxs(ctx context.Context, transactionHash string, methodID *string) ([]dto.WrappedTxResponse, error) {
	wrapped, err := e.data.GetWrappedTxsByTransactionHash(ctx, transactionHash, methodID)
	if err != nil {
		return nil, err
	}
	return dto.MapSlice(wrapped, dto.MapWrappedTxToDTO), nil
}

func (e *executor) FindWrappedTxParameters(ctx context.Context, wrappedTxID int) ([]dto.WrappedTxParameterResponse, error) {
	params, err := e.data.GetWrappedTxParameters(ctx, wrappedTxID)
	if err != nil {
		return nil, err
	}
	return dto.MapSlice(params, dto.MapWrappedTxParameterToDTO), nil
}

func (e *executor) FindMethod(ctx context.Context, id string) (*dto.MethodResponse, error) {
	method, err := e.structure.GetMethodInterfaceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if method == nil {
		return nil, nil
	}

	result := dto.MapMethodToDTO(*method)
	return &result, nil
}

func (e *executor) FindMethodParameters(ctx context.Context, id string) ([]dto.MethodParameterResponse, error) {
	params, err := e.structure.GetMethodParametersByMethodID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.MapSlice(params, dto.MapMethodParameterToDTO), nil
}

func (e *executor) CheckHealth(ctx context.Context) error {
	var errs []error
	if err := e.data.Ping(ctx); err != nil {
		errs = append(errs, fmt.Errorf("data store: %w", err))
	}
	if err := e.structure.Ping(ctx); err != nil {
		errs = append(errs, fmt.Errorf("structure store: %w", err))
	}
	return errors.Join(errs...)
}
