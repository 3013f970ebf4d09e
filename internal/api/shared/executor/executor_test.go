package executor_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukso-network/lukso-indexer-api/internal/api/shared/constants"
	"github.com/lukso-network/lukso-indexer-api/internal/api/shared/dto"
	"github.com/lukso-network/lukso-indexer-api/internal/api/shared/executor"
	"github.com/lukso-network/lukso-indexer-api/internal/domain"
	"github.com/lukso-network/lukso-indexer-api/internal/mocks"
	"github.com/lukso-network/lukso-indexer-api/internal/store"
	"github.com/lukso-network/lukso-indexer-api/internal/store/schema"
)

const (
	profileAddress = "0xaAaAaAaaAaAaAaaAaAAAAAAAAaaaAaAaAaaAaaAa"
	assetAddress   = "0xbBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB"
)

type testExecutorMocks struct {
	ctrl      *gomock.Controller
	data      *mocks.MockDataReader
	structure *mocks.MockStructureReader
	executor  executor.Executor
}

func setupTest(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)
	data := mocks.NewMockDataReader(ctrl)
	structure := mocks.NewMockStructureReader(ctrl)

	return &testExecutorMocks{
		ctrl:      ctrl,
		data:      data,
		structure: structure,
		executor:  executor.NewExecutor(data, structure),
	}
}

func strPtr(s string) *string { return &s }

func contractRows(n int) []store.ContractWithMetadata {
	rows := make([]store.ContractWithMetadata, n)
	for i := range rows {
		rows[i] = store.ContractWithMetadata{
			Contract:   schema.Contract{Address: profileAddress},
			MetadataID: i + 1,
			Name:       strPtr("profile"),
		}
	}
	return rows
}

func TestFindAddresses_FullAddress(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	profile := domain.ContractTypeProfile
	contract := &store.ContractWithMetadata{
		Contract:   schema.Contract{Address: profileAddress, InterfaceCode: strPtr("LSP0"), Type: &profile},
		MetadataID: 7,
		Name:       strPtr("alice"),
	}
	tm.data.EXPECT().GetContractWithMetadataByAddress(ctx, profileAddress).Return(contract, nil)

	result, err := tm.executor.FindAddresses(ctx, dto.AddressQuery{Input: profileAddress, Page: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, constants.ADDRESS_PAGE_SIZE, result.PageLength)
	require.Len(t, result.Results, 1)
	assert.Equal(t, 7, result.Results[0].ID)
	assert.Equal(t, "alice", *result.Results[0].Name)
	assert.Equal(t, domain.ContractTypeProfile, *result.Results[0].Type)
}

func TestFindAddresses_FullAddressNotFound(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	tm.data.EXPECT().GetContractWithMetadataByAddress(ctx, profileAddress).Return(nil, nil)

	result, err := tm.executor.FindAddresses(ctx, dto.AddressQuery{Input: profileAddress})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Count)
	assert.Equal(t, 0, result.TotalPages)
	assert.NotNil(t, result.Results)
	assert.Empty(t, result.Results)
}

func TestFindAddresses_Search(t *testing.T) {
	tests := []struct {
		name          string
		page          int
		count         int
		expectSearch  bool
		offset        int
		returned      int
		expectedPage  int
		expectedPages int
	}{
		{name: "first page", page: 1, count: 25, expectSearch: true, offset: 0, returned: 10, expectedPage: 1, expectedPages: 3},
		{name: "last partial page", page: 3, count: 25, expectSearch: true, offset: 20, returned: 5, expectedPage: 3, expectedPages: 3},
		{name: "page zero is the first page", page: 0, count: 4, expectSearch: true, offset: 0, returned: 4, expectedPage: 1, expectedPages: 1},
		{name: "negative page is the first page", page: -3, count: 4, expectSearch: true, offset: 0, returned: 4, expectedPage: 1, expectedPages: 1},
		{name: "page past the end", page: 4, count: 25, expectSearch: false, expectedPage: 4, expectedPages: 3},
		{name: "page right after an exact fit", page: 3, count: 20, expectSearch: false, expectedPage: 3, expectedPages: 2},
		{name: "no match", page: 1, count: 0, expectSearch: false, expectedPage: 1, expectedPages: 0},
		{name: "huge page does not wrap around", page: 1_000_000_000_000_000_000, count: 3, expectSearch: false, expectedPage: 1_000_000_000_000_000_000, expectedPages: 1},
		{name: "max int page", page: math.MaxInt, count: 3, expectSearch: false, expectedPage: math.MaxInt, expectedPages: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTest(t)
			defer tm.ctrl.Finish()

			ctx := context.Background()
			query := dto.AddressQuery{Input: "ali", Tag: "social", Type: domain.ContractTypeProfile, Page: tt.page}
			filter := store.ContractSearchFilter{Input: "ali", Tag: "social", Type: domain.ContractTypeProfile}

			tm.data.EXPECT().CountContracts(ctx, filter).Return(tt.count, nil)
			if tt.expectSearch {
				tm.data.EXPECT().
					SearchContracts(ctx, filter, constants.ADDRESS_PAGE_SIZE, tt.offset).
					Return(contractRows(tt.returned), nil)
			}

			result, err := tm.executor.FindAddresses(ctx, query)
			require.NoError(t, err)

			assert.Equal(t, tt.count, result.Count, "count reflects the true total")
			assert.Equal(t, tt.expectedPage, result.Page)
			assert.Equal(t, tt.expectedPages, result.TotalPages)
			assert.NotNil(t, result.Results)
			assert.Len(t, result.Results, tt.returned)
		})
	}
}

func TestFindAddresses_PartialAddressIsSearched(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	filter := store.ContractSearchFilter{Input: "0xaaaa"}
	tm.data.EXPECT().CountContracts(ctx, filter).Return(1, nil)
	tm.data.EXPECT().SearchContracts(ctx, filter, constants.ADDRESS_PAGE_SIZE, 0).Return(contractRows(1), nil)

	result, err := tm.executor.FindAddresses(ctx, dto.AddressQuery{Input: "0xaaaa"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
}

func TestFindAddresses_Errors(t *testing.T) {
	ctx := context.Background()
	storeErr := &store.QueryExecutionError{Query: "SELECT", Err: errors.New("connection reset")}

	t.Run("count error", func(t *testing.T) {
		tm := setupTest(t)
		defer tm.ctrl.Finish()

		tm.data.EXPECT().CountContracts(ctx, gomock.Any()).Return(0, storeErr)

		result, err := tm.executor.FindAddresses(ctx, dto.AddressQuery{Input: "x"})
		assert.Nil(t, result)
		assert.Same(t, storeErr, err, "store errors surface unchanged")
	})

	t.Run("search error", func(t *testing.T) {
		tm := setupTest(t)
		defer tm.ctrl.Finish()

		tm.data.EXPECT().CountContracts(ctx, gomock.Any()).Return(3, nil)
		tm.data.EXPECT().SearchContracts(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storeErr)

		result, err := tm.executor.FindAddresses(ctx, dto.AddressQuery{Input: "x"})
		assert.Nil(t, result)
		var qerr *store.QueryExecutionError
		assert.ErrorAs(t, err, &qerr)
	})

	t.Run("lookup error", func(t *testing.T) {
		tm := setupTest(t)
		defer tm.ctrl.Finish()

		tm.data.EXPECT().GetContractWithMetadataByAddress(ctx, profileAddress).Return(nil, storeErr)

		_, err := tm.executor.FindAddresses(ctx, dto.AddressQuery{Input: profileAddress})
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestFindTokens(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	query := dto.TokenQuery{Address: assetAddress, Input: "art", Owner: profileAddress, Page: 2}
	filter := store.TokenSearchFilter{Address: assetAddress, Input: "art", Owner: profileAddress}

	tokens := []store.TokenWithMetadata{
		{
			ContractToken: schema.ContractToken{
				ID:             "0x01",
				Address:        assetAddress,
				Index:          11,
				TokenID:        "0x02",
				DecodedTokenID: strPtr("2"),
				InterfaceCode:  "LSP8",
			},
			MetadataID:     3,
			Name:           strPtr("Art #2"),
			ContractName:   strPtr("Art"),
			ContractSymbol: strPtr("ART"),
		},
	}

	gomock.InOrder(
		tm.data.EXPECT().SearchTokens(ctx, filter, constants.ADDRESS_PAGE_SIZE, 10).Return(tokens, nil),
		tm.data.EXPECT().CountTokens(ctx, filter).Return(11, nil),
	)

	result, err := tm.executor.FindTokens(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, 11, result.Count)
	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 2, result.TotalPages)
	require.Len(t, result.Results, 1)

	token := result.Results[0]
	assert.Equal(t, 3, token.ID)
	assert.Equal(t, 11, token.Index)
	assert.Equal(t, "Art #2", *token.Name)
	assert.Equal(t, "Art", *token.CollectionName)
	assert.Equal(t, "ART", *token.CollectionSymbol)
	assert.Equal(t, 0, token.Balance)
	assert.True(t, token.IsNFT)
}

func TestFindTokens_Empty(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	tm.data.EXPECT().SearchTokens(ctx, store.TokenSearchFilter{}, constants.ADDRESS_PAGE_SIZE, 0).Return(nil, nil)
	tm.data.EXPECT().CountTokens(ctx, store.TokenSearchFilter{}).Return(0, nil)

	result, err := tm.executor.FindTokens(ctx, dto.TokenQuery{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.NotNil(t, result.Results)
	assert.Empty(t, result.Results)
}

func TestFindTokens_HugePage(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	tm.data.EXPECT().SearchTokens(ctx, store.TokenSearchFilter{}, constants.ADDRESS_PAGE_SIZE, math.MaxInt).Return(nil, nil)
	tm.data.EXPECT().CountTokens(ctx, store.TokenSearchFilter{}).Return(7, nil)

	result, err := tm.executor.FindTokens(ctx, dto.TokenQuery{Page: 1_000_000_000_000_000_000})
	require.NoError(t, err)
	assert.Equal(t, 7, result.Count)
	assert.Equal(t, 1, result.TotalPages)
	assert.Empty(t, result.Results)
}

func TestFindTokens_CountError(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	countErr := errors.New("timeout")
	tm.data.EXPECT().SearchTokens(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	tm.data.EXPECT().CountTokens(ctx, gomock.Any()).Return(0, countErr)

	_, err := tm.executor.FindTokens(ctx, dto.TokenQuery{})
	assert.ErrorIs(t, err, countErr)
}

func TestFindTokenHolders(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	minBalance := 0
	query := dto.TokenHolderQuery{
		ContractAddress: assetAddress,
		TokenID:         store.IsNull(),
		MinBalance:      &minBalance,
	}
	filter := store.TokenHolderSearchFilter{
		ContractAddress: assetAddress,
		TokenID:         store.IsNull(),
		MinBalance:      &minBalance,
	}

	holders := []schema.TokenHolder{
		{HolderAddress: profileAddress, ContractAddress: assetAddress, BalanceInWei: "1000000000000000000", BalanceInEth: 1, HolderSinceBlock: 42},
	}
	tm.data.EXPECT().SearchTokenHolders(ctx, filter, constants.ADDRESS_PAGE_SIZE, 0).Return(holders, nil)
	tm.data.EXPECT().CountTokenHolders(ctx, filter).Return(1, nil)

	result, err := tm.executor.FindTokenHolders(ctx, query)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count)
	assert.Equal(t, 1, result.TotalPages)
	require.Len(t, result.Results, 1)
	assert.Nil(t, result.Results[0].TokenID)
	assert.Equal(t, "1000000000000000000", result.Results[0].BalanceInWei)
	assert.Equal(t, 42, result.Results[0].HolderSinceBlock)
}

func TestFieldLookups(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()

	tm.data.EXPECT().GetMetadataImages(ctx, 5, store.IsNull()).Return([]schema.MetadataImage{
		{MetadataID: 5, URL: "ipfs://icon", Width: 64, Height: 64, Hash: "0xaa"},
	}, nil)
	images, err := tm.executor.FindImages(ctx, 5, store.IsNull())
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, "ipfs://icon", images[0].URL)
	assert.Nil(t, images[0].Type)

	fileType := "application/pdf"
	tm.data.EXPECT().GetMetadataAssets(ctx, 5, &fileType).Return(nil, nil)
	assets, err := tm.executor.FindAssets(ctx, 5, &fileType)
	require.NoError(t, err)
	assert.NotNil(t, assets)
	assert.Empty(t, assets)

	tm.data.EXPECT().GetMetadataLinks(ctx, 5).Return([]schema.MetadataLink{{MetadataID: 5, Title: "site", URL: "https://lukso.network"}}, nil)
	links, err := tm.executor.FindLinks(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []dto.MetadataLinkResponse{{Title: "site", URL: "https://lukso.network"}}, links)

	tm.data.EXPECT().GetMetadataTags(ctx, 5).Return(nil, nil)
	tags, err := tm.executor.FindTags(ctx, 5)
	require.NoError(t, err)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestFindWrappedTxs(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()
	hash := "0x1111111111111111111111111111111111111111111111111111111111111111"
	parentID := 1
	methodID := "0x44c028fe"

	tm.data.EXPECT().GetWrappedTxsByTransactionHash(ctx, hash, &methodID).Return([]schema.WrappedTransaction{
		{ID: 1, TransactionHash: &hash, BlockNumber: 10, From: profileAddress, Value: "0", MethodID: methodID},
		{ID: 2, TransactionHash: &hash, ParentID: &parentID, BlockNumber: 10, From: profileAddress, Value: "0", MethodID: methodID},
	}, nil)

	wrapped, err := tm.executor.FindWrappedTxs(ctx, hash, &methodID)
	require.NoError(t, err)
	require.Len(t, wrapped, 2)
	assert.Nil(t, wrapped[0].ParentID)
	assert.Equal(t, 1, *wrapped[1].ParentID)

	tm.data.EXPECT().GetWrappedTxParameters(ctx, 2).Return([]schema.WrappedTransactionParameter{
		{WrappedTransactionID: 2, Name: "target", Type: "address", Value: assetAddress, Position: 1},
	}, nil)
	params, err := tm.executor.FindWrappedTxParameters(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []dto.WrappedTxParameterResponse{{Name: "target", Type: "address", Value: assetAddress, Position: 1}}, params)
}

func TestFindMethod(t *testing.T) {
	tm := setupTest(t)
	defer tm.ctrl.Finish()

	ctx := context.Background()

	tm.structure.EXPECT().GetMethodInterfaceByID(ctx, "0x7f23690c").Return(&schema.MethodInterface{
		ID: "0x7f23690c", Hash: "0xhash", Name: "setData", Type: domain.MethodTypeFunction,
	}, nil)
	method, err := tm.executor.FindMethod(ctx, "0x7f23690c")
	require.NoError(t, err)
	require.NotNil(t, method)
	assert.Equal(t, "setData", method.Name)
	assert.Equal(t, domain.MethodTypeFunction, method.Type)

	tm.structure.EXPECT().GetMethodInterfaceByID(ctx, "0x00000000").Return(nil, nil)
	missing, err := tm.executor.FindMethod(ctx, "0x00000000")
	require.NoError(t, err)
	assert.Nil(t, missing)

	tm.structure.EXPECT().GetMethodParametersByMethodID(ctx, "0x7f23690c").Return([]schema.MethodParameter{
		{MethodID: "0x7f23690c", Name: "dataKey", Type: "bytes32", Position: 0},
		{MethodID: "0x7f23690c", Name: "dataValue", Type: "bytes", Position: 1},
	}, nil)
	params, err := tm.executor.FindMethodParameters(ctx, "0x7f23690c")
	require.NoError(t, err)
	require.Len(t, params, 2)
	assert.Equal(t, "dataKey", params[0].Name)
}

func TestCheckHealth(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy", func(t *testing.T) {
		tm := setupTest(t)
		defer tm.ctrl.Finish()

		tm.data.EXPECT().Ping(ctx).Return(nil)
		tm.structure.EXPECT().Ping(ctx).Return(nil)

		assert.NoError(t, tm.executor.CheckHealth(ctx))
	})

	t.Run("both stores are checked", func(t *testing.T) {
		tm := setupTest(t)
		defer tm.ctrl.Finish()

		pingErr := errors.New("connection refused")
		tm.data.EXPECT().Ping(ctx).Return(pingErr)
		tm.structure.EXPECT().Ping(ctx).Return(nil)

		err := tm.executor.CheckHealth(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, pingErr)
		assert.Contains(t, err.Error(), "data store")
	})
}
