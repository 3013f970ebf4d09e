package rest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukso-network/lukso-indexer-api/internal/api/rest"
	"github.com/lukso-network/lukso-indexer-api/internal/api/shared/dto"
	apierrors "github.com/lukso-network/lukso-indexer-api/internal/api/shared/errors"
	"github.com/lukso-network/lukso-indexer-api/internal/domain"
	"github.com/lukso-network/lukso-indexer-api/internal/mocks"
	"github.com/lukso-network/lukso-indexer-api/internal/store"
)

const (
	testAddress = "0x1234567890123456789012345678901234567890"
	testTxHash  = "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"
	testMethod  = "0xa9059cbb"
)

type handlerTestMocks struct {
	ctrl     *gomock.Controller
	executor *mocks.MockExecutor
	router   *gin.Engine
}

func setupHandlerTest(t *testing.T) *handlerTestMocks {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	exec := mocks.NewMockExecutor(ctrl)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(exec))

	return &handlerTestMocks{ctrl: ctrl, executor: exec, router: router}
}

func (m *handlerTestMocks) get(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	m.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	t.Helper()
	var body struct {
		Error apierrors.APIError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}

func TestHandler_FindAddresses(t *testing.T) {
	t.Run("passes the query to the executor", func(t *testing.T) {
		tm := setupHandlerTest(t)
		name := "Universal Profile"
		tm.executor.EXPECT().
			FindAddresses(gomock.Any(), dto.AddressQuery{
				Input:         "alice",
				Type:          domain.ContractTypeProfile,
				InterfaceCode: "LSP0",
				Tag:           "art",
				Page:          2,
			}).
			Return(dto.NewPage([]dto.AddressResponse{{ID: 7, Address: testAddress, Name: &name}}, 11, 2, 10), nil)

		w := tm.get(t, "/api/v1/addresses?input=alice&type=profile&interfaceCode=LSP0&tag=art&page=2")

		require.Equal(t, http.StatusOK, w.Code)
		var page dto.Page[dto.AddressResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
		assert.Equal(t, 11, page.Count)
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Results, 1)
		assert.Equal(t, testAddress, page.Results[0].Address)
	})

	t.Run("defaults to the first page", func(t *testing.T) {
		tm := setupHandlerTest(t)
		tm.executor.EXPECT().
			FindAddresses(gomock.Any(), dto.AddressQuery{Page: 1}).
			Return(dto.NewPage[dto.AddressResponse](nil, 0, 1, 10), nil)

		w := tm.get(t, "/api/v1/addresses")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"count":0,"page":1,"pageLength":10,"totalPages":0,"results":[]}`, w.Body.String())
	})

	tests := []struct {
		name   string
		target string
	}{
		{name: "unknown type", target: "/api/v1/addresses?type=wallet"},
		{name: "invalid permission address", target: "/api/v1/addresses?havePermissions=0x12"},
		{name: "non numeric page", target: "/api/v1/addresses?page=two"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupHandlerTest(t)

			w := tm.get(t, tt.target)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, w).Code)
		})
	}

	t.Run("hides store errors", func(t *testing.T) {
		tm := setupHandlerTest(t)
		tm.executor.EXPECT().
			FindAddresses(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		w := tm.get(t, "/api/v1/addresses?input=alice")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		apiErr := decodeError(t, w)
		assert.Equal(t, apierrors.ErrCodeInternalError, apiErr.Code)
		assert.NotContains(t, apiErr.Message, "connection refused")
	})
}

func TestHandler_FindTokens(t *testing.T) {
	tm := setupHandlerTest(t)
	tm.executor.EXPECT().
		FindTokens(gomock.Any(), dto.TokenQuery{Address: testAddress, ContractSymbol: "LYX", Page: 1}).
		Return(dto.NewPage([]dto.TokenResponse{{Address: testAddress, TokenID: "0x01", IsNFT: true}}, 1, 1, 10), nil)

	w := tm.get(t, "/api/v1/tokens?address="+testAddress+"&contractSymbol=LYX")

	require.Equal(t, http.StatusOK, w.Code)
	var page dto.Page[dto.TokenResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Results, 1)
	assert.True(t, page.Results[0].IsNFT)
	assert.Equal(t, 0, page.Results[0].Balance)

	t.Run("invalid owner", func(t *testing.T) {
		tm := setupHandlerTest(t)

		w := tm.get(t, "/api/v1/tokens?owner=bob")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("partial address", func(t *testing.T) {
		tm := setupHandlerTest(t)
		tm.executor.EXPECT().
			FindTokens(gomock.Any(), dto.TokenQuery{Address: "0xCCCC", Page: 1}).
			Return(dto.NewPage[dto.TokenResponse](nil, 0, 1, 10), nil)

		w := tm.get(t, "/api/v1/tokens?address=0xCCCC")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("address without prefix", func(t *testing.T) {
		tm := setupHandlerTest(t)

		w := tm.get(t, "/api/v1/tokens?address=CCCC")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_FindTokenHolders(t *testing.T) {
	minBalance, maxBalance := 1, 100
	tests := []struct {
		name  string
		query string
		want  dto.TokenHolderQuery
	}{
		{
			name:  "null token id selects balances",
			query: "?tokenId=null",
			want:  dto.TokenHolderQuery{TokenID: store.IsNull(), Page: 1},
		},
		{
			name:  "token id",
			query: "?tokenId=0x01&holderAddress=" + testAddress,
			want:  dto.TokenHolderQuery{HolderAddress: testAddress, TokenID: store.Equals("0x01"), Page: 1},
		},
		{
			name:  "balance bounds",
			query: "?minBalance=1&maxBalance=100&page=3",
			want:  dto.TokenHolderQuery{TokenID: store.AnyValue(), MinBalance: &minBalance, MaxBalance: &maxBalance, Page: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupHandlerTest(t)
			tm.executor.EXPECT().
				FindTokenHolders(gomock.Any(), tt.want).
				Return(dto.NewPage[dto.TokenHolderResponse](nil, 0, tt.want.Page, 10), nil)

			w := tm.get(t, "/api/v1/token-holders"+tt.query)

			assert.Equal(t, http.StatusOK, w.Code)
		})
	}

	t.Run("min above max", func(t *testing.T) {
		tm := setupHandlerTest(t)

		w := tm.get(t, "/api/v1/token-holders?minBalance=10&maxBalance=1")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, w).Code)
	})
}

func TestHandler_Metadata(t *testing.T) {
	t.Run("images filtered by null type", func(t *testing.T) {
		tm := setupHandlerTest(t)
		tm.executor.EXPECT().
			FindImages(gomock.Any(), 5, store.IsNull()).
			Return([]dto.MetadataImageResponse{{URL: "ipfs://img", Width: 10, Height: 10, Hash: "0xab"}}, nil)

		w := tm.get(t, "/api/v1/metadata/5/images?type=null")

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"url":"ipfs://img","width":10,"height":10,"type":null,"hash":"0xab"}]`, w.Body.String())
	})

	t.Run("images without type filter", func(t *testing.T) {
		tm := setupHandlerTest(t)
		tm.executor.EXPECT().
			FindImages(gomock.Any(), 5, store.AnyValue()).
			Return([]dto.MetadataImageResponse{}, nil)

		w := tm.get(t, "/api/v1/metadata/5/images")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("assets by file type", func(t *testing.T) {
		tm := setupHandlerTest(t)
		fileType := "image/png"
		tm.executor.EXPECT().
			FindAssets(gomock.Any(), 5, &fileType).
			Return([]dto.MetadataAssetResponse{}, nil)

		w := tm.get(t, "/api/v1/metadata/5/assets?fileType=image/png")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("links and tags", func(t *testing.T) {
		tm := setupHandlerTest(t)
		tm.executor.EXPECT().FindLinks(gomock.Any(), 9).Return([]dto.MetadataLinkResponse{{Title: "site", URL: "https://lukso.network"}}, nil)
		tm.executor.EXPECT().FindTags(gomock.Any(), 9).Return([]string{"art"}, nil)

		w := tm.get(t, "/api/v1/metadata/9/links")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"title":"site","url":"https://lukso.network"}]`, w.Body.String())

		w = tm.get(t, "/api/v1/metadata/9/tags")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `["art"]`, w.Body.String())
	})

	for _, target := range []string{"/api/v1/metadata/abc/images", "/api/v1/metadata/0/links", "/api/v1/metadata/-1/tags"} {
		t.Run("invalid id "+target, func(t *testing.T) {
			tm := setupHandlerTest(t)

			w := tm.get(t, target)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, apierrors.ErrCodeBadRequest, decodeError(t, w).Code)
		})
	}
}

func TestHandler_WrappedTransactions(t *testing.T) {
	t.Run("by hash and method", func(t *testing.T) {
		tm := setupHandlerTest(t)
		methodID := testMethod
		tm.executor.EXPECT().
			FindWrappedTxs(gomock.Any(), testTxHash, &methodID).
			Return([]dto.WrappedTxResponse{{ID: 1, BlockNumber: 12, From: testAddress, Value: "0", MethodID: testMethod}}, nil)

		w := tm.get(t, "/api/v1/transactions/"+testTxHash+"/wrapped?methodId="+testMethod)

		require.Equal(t, http.StatusOK, w.Code)
		var results []dto.WrappedTxResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
		require.Len(t, results, 1)
		assert.Equal(t, 12, results[0].BlockNumber)
	})

	t.Run("invalid hash", func(t *testing.T) {
		tm := setupHandlerTest(t)

		w := tm.get(t, "/api/v1/transactions/0x1234/wrapped")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid method id", func(t *testing.T) {
		tm := setupHandlerTest(t)

		w := tm.get(t, "/api/v1/transactions/"+testTxHash+"/wrapped?methodId=transfer")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeError(t, w).Code)
	})

	t.Run("parameters", func(t *testing.T) {
		tm := setupHandlerTest(t)
		tm.executor.EXPECT().
			FindWrappedTxParameters(gomock.Any(), 3).
			Return([]dto.WrappedTxParameterResponse{{Name: "to", Type: "address", Value: testAddress, Position: 0}}, nil)

		w := tm.get(t, "/api/v1/wrapped-transactions/3/parameters")

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_Methods(t *testing.T) {
	t.Run("known method", func(t *testing.T) {
		tm := setupHandlerTest(t)
		tm.executor.EXPECT().
			FindMethod(gomock.Any(), testMethod).
			Return(&dto.MethodResponse{ID: testMethod, Name: "transfer", Type: domain.MethodTypeFunction}, nil)

		w := tm.get(t, "/api/v1/methods/"+testMethod)

		require.Equal(t, http.StatusOK, w.Code)
		var method dto.MethodResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &method))
		assert.Equal(t, "transfer", method.Name)
	})

	t.Run("unknown method", func(t *testing.T) {
		tm := setupHandlerTest(t)
		tm.executor.EXPECT().FindMethod(gomock.Any(), testMethod).Return(nil, nil)

		w := tm.get(t, "/api/v1/methods/"+testMethod)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, apierrors.ErrCodeNotFound, decodeError(t, w).Code)
	})

	t.Run("invalid selector", func(t *testing.T) {
		tm := setupHandlerTest(t)

		w := tm.get(t, "/api/v1/methods/0xa9059c")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("parameters", func(t *testing.T) {
		tm := setupHandlerTest(t)
		tm.executor.EXPECT().
			FindMethodParameters(gomock.Any(), testMethod).
			Return([]dto.MethodParameterResponse{{Name: "to", Type: "address"}, {Name: "value", Type: "uint256", Position: 1}}, nil)

		w := tm.get(t, "/api/v1/methods/"+testMethod+"/parameters")

		require.Equal(t, http.StatusOK, w.Code)
		var params []dto.MethodParameterResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &params))
		assert.Len(t, params, 2)
	})
}

func TestHandler_HealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		tm := setupHandlerTest(t)
		tm.executor.EXPECT().CheckHealth(gomock.Any()).Return(nil)

		w := tm.get(t, "/health")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"ok"`)
	})

	t.Run("database down", func(t *testing.T) {
		tm := setupHandlerTest(t)
		tm.executor.EXPECT().CheckHealth(gomock.Any()).Return(errors.New("data store: timeout"))

		w := tm.get(t, "/health")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		apiErr := decodeError(t, w)
		assert.Equal(t, apierrors.ErrCodeUnavailable, apiErr.Code)
		assert.NotContains(t, apiErr.Details, "timeout")
	})
}

func TestHandler_NotFound(t *testing.T) {
	tm := setupHandlerTest(t)

	w := tm.get(t, "/api/v1/unknown")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apierrors.ErrCodeNotFound, decodeError(t, w).Code)
}

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	handler := mocks.NewMockAPIHandler(ctrl)

	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	handler.EXPECT().HealthCheck(gomock.Any()).Do(ok)
	handler.EXPECT().FindAddresses(gomock.Any()).Do(ok)
	handler.EXPECT().FindTokens(gomock.Any()).Do(ok)
	handler.EXPECT().FindTokenHolders(gomock.Any()).Do(ok)
	handler.EXPECT().GetMetadataImages(gomock.Any()).Do(ok)
	handler.EXPECT().GetMetadataAssets(gomock.Any()).Do(ok)
	handler.EXPECT().GetMetadataLinks(gomock.Any()).Do(ok)
	handler.EXPECT().GetMetadataTags(gomock.Any()).Do(ok)
	handler.EXPECT().GetWrappedTransactions(gomock.Any()).Do(ok)
	handler.EXPECT().GetWrappedTransactionParameters(gomock.Any()).Do(ok)
	handler.EXPECT().GetMethod(gomock.Any()).Do(ok)
	handler.EXPECT().GetMethodParameters(gomock.Any()).Do(ok)
	handler.EXPECT().NotFound(gomock.Any()).Do(func(c *gin.Context) { c.Status(http.StatusNotFound) })

	router := gin.New()
	rest.SetupRoutes(router, handler)

	for _, target := range []string{
		"/health",
		"/api/v1/addresses",
		"/api/v1/tokens",
		"/api/v1/token-holders",
		"/api/v1/metadata/1/images",
		"/api/v1/metadata/1/assets",
		"/api/v1/metadata/1/links",
		"/api/v1/metadata/1/tags",
		"/api/v1/transactions/0x01/wrapped",
		"/api/v1/wrapped-transactions/1/parameters",
		"/api/v1/methods/0x01",
		"/api/v1/methods/0x01/parameters",
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusNoContent, w.Code, target)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v2/addresses", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
