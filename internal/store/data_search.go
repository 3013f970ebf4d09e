package store

import (
	"context"

	"github.com/lukso-network/lukso-indexer-api/internal/domain"
	"github.com/lukso-network/lukso-indexer-api/internal/store/schema"
	"github.com/lukso-network/lukso-indexer-api/internal/store/sqlbuilder"
)

var contractWithMetadataColumns = []string{
	"contract.address",
	`contract."interfaceCode"`,
	`contract."interfaceVersion"`,
	`contract."type"`,
	`metadata.id AS "metadataId"`,
	"metadata.name",
	"metadata.symbol",
	"metadata.description",
	`metadata."isNFT"`,
}

var tokenWithMetadataColumns = []string{
	"ct.id",
	"ct.address",
	`ct."index"`,
	`ct."decodedTokenId"`,
	`ct."tokenId"`,
	`ct."interfaceCode"`,
	`ct."latestKnownOwner"`,
	`c."type" AS "contractType"`,
	`c."interfaceVersion"`,
	`m1.id AS "metadataId"`,
	"m1.name",
	"m1.symbol",
	"m1.description",
	`m1."isNFT"`,
	`m2.name AS "contractName"`,
	`m2.symbol AS "contractSymbol"`,
	`m2.description AS "contractDescription"`,
}

// contractWithMetadataQuery joins every contract with its contract level metadata row
func contractWithMetadataQuery() sqlbuilder.Query {
	return sqlbuilder.From("contract").
		InnerJoin("metadata", `metadata.address = contract.address AND metadata."tokenId" IS NULL`).
		Select(contractWithMetadataColumns...)
}

// contractSearchQuery applies the address search filters. It is shared by SearchContracts
// and CountContracts so both always see the same rows.
func contractSearchQuery(f ContractSearchFilter) sqlbuilder.Query {
	q := contractWithMetadataQuery()

	switch {
	case f.Input == "":
	case domain.IsPartialEthereumAddress(f.Input):
		q = q.WhereContains("contract.address", f.Input)
	default:
		q = q.WhereContains("metadata.name", f.Input)
	}

	if f.HavePermissions != "" {
		// latest value of the permissions key of the holder on this contract
		q = q.Where(`(SELECT dc.value FROM erc725y_data_changed dc
WHERE dc.address = contract.address AND LOWER(dc.key) = LOWER(?)
ORDER BY dc."blockNumber" DESC LIMIT 1) <> ?`,
			domain.PermissionsDataKey(f.HavePermissions), domain.EMPTY_PERMISSIONS)
	}
	if f.Tag != "" {
		q = q.Where(`EXISTS (SELECT 1 FROM metadata_tag mt
WHERE mt."metadataId" = metadata.id AND LOWER(mt.title) LIKE LOWER(?))`, sqlbuilder.Contains(f.Tag))
	}
	if f.Type != "" {
		q = q.WhereEq(`contract."type"`, f.Type)
	}
	if f.InterfaceVersion != "" {
		q = q.WhereEq(`contract."interfaceVersion"`, f.InterfaceVersion)
	}
	if f.InterfaceCode != "" {
		q = q.WhereEq(`contract."interfaceCode"`, f.InterfaceCode)
	}

	return q
}

func (s *dataStore) SearchContracts(ctx context.Context, filter ContractSearchFilter, limit, offset int) ([]ContractWithMetadata, error) {
	q := contractSearchQuery(filter).
		OrderBy("metadata.name", sqlbuilder.Asc).
		OrderBy("contract.address", sqlbuilder.Asc).
		Limit(limit).
		Offset(offset)

	rows := []ContractWithMetadata{}
	if err := s.scan(ctx, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *dataStore) CountContracts(ctx context.Context, filter ContractSearchFilter) (int, error) {
	return s.count(ctx, contractSearchQuery(filter))
}

// tokenSearchQuery joins each token with its metadata (m1), its contract (c) and the
// contract level metadata (m2), and applies the token search filters
func tokenSearchQuery(f TokenSearchFilter) sqlbuilder.Query {
	q := sqlbuilder.From("contract_token AS ct").
		InnerJoin("metadata AS m1", `ct.address = m1.address AND ct."tokenId" = m1."tokenId"`).
		InnerJoin("contract AS c", "ct.address = c.address").
		InnerJoin("metadata AS m2", `ct.address = m2.address AND m2."tokenId" IS NULL`).
		Select(tokenWithMetadataColumns...)

	if f.Address != "" {
		q = q.WhereContains("ct.address", f.Address)
	}
	if f.Input != "" {
		q = q.WhereContains(`CONCAT(LOWER(m1.name), ct."tokenId", LOWER(ct."decodedTokenId"))`, f.Input)
	}
	if f.ContractName != "" {
		q = q.WhereContains("m2.name", f.ContractName)
	}
	if f.ContractSymbol != "" {
		q = q.WhereContains("m2.symbol", f.ContractSymbol)
	}
	if f.InterfaceCode != "" {
		q = q.WhereEq(`ct."interfaceCode"`, f.InterfaceCode)
	}
	if f.InterfaceVersion != "" {
		q = q.WhereEq(`c."interfaceVersion"`, f.InterfaceVersion)
	}
	if f.Owner != "" {
		q = q.WhereEq(`ct."latestKnownOwner"`, f.Owner)
	}

	return q
}

func (s *dataStore) SearchTokens(ctx context.Context, filter TokenSearchFilter, limit, offset int) ([]TokenWithMetadata, error) {
	q := tokenSearchQuery(filter).
		OrderBy("ct.address", sqlbuilder.Asc).
		OrderBy("m2.name", sqlbuilder.Asc).
		OrderBy(`ct."tokenId"`, sqlbuilder.Asc).
		Limit(limit).
		Offset(offset)

	rows := []TokenWithMetadata{}
	if err := s.scan(ctx, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *dataStore) CountTokens(ctx context.Context, filter TokenSearchFilter) (int, error) {
	return s.count(ctx, tokenSearchQuery(filter))
}

func tokenHolderSearchQuery(f TokenHolderSearchFilter) sqlbuilder.Query {
	q := sqlbuilder.From("token_holder AS th").Select("th.*")

	if f.HolderAddress != "" {
		q = q.WhereEq(`th."holderAddress"`, f.HolderAddress)
	}
	if f.ContractAddress != "" {
		q = q.WhereEq(`th."contractAddress"`, f.ContractAddress)
	}
	q = f.TokenID.apply(q, `th."tokenId"`)
	if f.MinBalance != nil {
		q = q.Where(`th."balanceInEth" >= ?`, *f.MinBalance)
	}
	if f.MaxBalance != nil {
		q = q.Where(`th."balanceInEth" <= ?`, *f.MaxBalance)
	}
	if f.HolderAfterBlock != nil {
		q = q.Where(`th."holderSinceBlock" > ?`, *f.HolderAfterBlock)
	}
	if f.HolderBeforeBlock != nil {
		q = q.Where(`th."holderSinceBlock" < ?`, *f.HolderBeforeBlock)
	}

	return q
}

func (s *dataStore) SearchTokenHolders(ctx context.Context, filter TokenHolderSearchFilter, limit, offset int) ([]schema.TokenHolder, error) {
	q := tokenHolderSearchQuery(filter).
		OrderBy(`th."holderAddress"`, sqlbuilder.Asc).
		OrderBy(`th."contractAddress"`, sqlbuilder.Asc).
		OrderBy(`th."tokenId"`, sqlbuilder.Asc).
		Limit(limit).
		Offset(offset)

	rows := []schema.TokenHolder{}
	if err := s.scan(ctx, q, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *dataStore) CountTokenHolders(ctx context.Context, filter TokenHolderSearchFilter) (int, error) {
	return s.count(ctx, tokenHolderSearchQuery(filter))
}
