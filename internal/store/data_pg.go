package store

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lukso-network/lukso-indexer-api/internal/domain"
	"github.com/lukso-network/lukso-indexer-api/internal/store/schema"
	"github.com/lukso-network/lukso-indexer-api/internal/store/sqlbuilder"
)

const dataComponent = "data-store"

type dataStore struct {
	db *gorm.DB
}

// NewDataStore creates a data store on db. db may be a transaction, every write then runs
// in a savepoint of it.
func NewDataStore(db *gorm.DB) DataStore {
	return &dataStore{db: db}
}

func (s *dataStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Contract

func (s *dataStore) InsertContract(ctx context.Context, contract schema.Contract, policy domain.ConflictPolicy) error {
	clauses, err := conflictClauses(policy, contractUpsert)
	if err != nil {
		return err
	}
	return s.insert(ctx, &contract, clauses)
}

func (s *dataStore) GetContractByAddress(ctx context.Context, address string) (*schema.Contract, error) {
	return take[schema.Contract](ctx, s.db, `"address" = ?`, address)
}

func (s *dataStore) GetContractWithMetadataByAddress(ctx context.Context, address string) (*ContractWithMetadata, error) {
	q := contractWithMetadataQuery().
		WhereEq("contract.address", address).
		Limit(1)

	rows := []ContractWithMetadata{}
	if err := s.scan(ctx, q, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (s *dataStore) GetContractsToIndex(ctx context.Context) ([]string, error) {
	addresses := []string{}
	tx := s.db.WithContext(ctx).
		Model(&schema.Contract{}).
		Where(`"interfaceCode" IS NULL`).
		Order(`"address" ASC`).
		Pluck("address", &addresses)
	if tx.Error != nil {
		return nil, statementError(ctx, dataComponent, tx, tx.Error)
	}
	return addresses, nil
}

func (s *dataStore) DeleteContract(ctx context.Context, address string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where(`"address" = ?`, address).Delete(&schema.Contract{})
		if result.Error != nil {
			return statementError(ctx, dataComponent, result, result.Error)
		}
		return nil
	})
}

// Contract token

func (s *dataStore) InsertContractToken(ctx context.Context, token schema.ContractToken, policy domain.ConflictPolicy) error {
	clauses, err := conflictClauses(policy, contractTokenUpsert(token))
	if err != nil {
		return err
	}
	return s.insert(ctx, &token, clauses)
}

func (s *dataStore) GetContractTokenByID(ctx context.Context, id string) (*schema.ContractToken, error) {
	return take[schema.ContractToken](ctx, s.db, `"id" = ?`, id)
}

func (s *dataStore) GetTokensToIndex(ctx context.Context) ([]schema.ContractToken, error) {
	tokens := []schema.ContractToken{}
	tx := s.db.WithContext(ctx).
		Where(`"decodedTokenId" IS NULL`).
		Order(`"address" ASC, "index" ASC`).
		Find(&tokens)
	if tx.Error != nil {
		return nil, statementError(ctx, dataComponent, tx, tx.Error)
	}
	return tokens, nil
}

// Token holder

func (s *dataStore) InsertTokenHolder(ctx context.Context, holder schema.TokenHolder, policy domain.ConflictPolicy) error {
	clauses, err := conflictClauses(policy, tokenHolderUpsert(holder))
	if err != nil {
		return err
	}
	return s.insert(ctx, &holder, clauses)
}

func (s *dataStore) GetTokenHolder(ctx context.Context, holderAddress, contractAddress string, tokenID *string) (*schema.TokenHolder, error) {
	return takeWhere[schema.TokenHolder](ctx, s.db, func(db *gorm.DB) *gorm.DB {
		return whereNullable(
			db.Where(`"holderAddress" = ? AND "contractAddress" = ?`, holderAddress, contractAddress),
			"tokenId", tokenID,
		)
	})
}

// Metadata

func (s *dataStore) InsertMetadata(ctx context.Context, metadata schema.Metadata, policy domain.ConflictPolicy) (int, error) {
	var id int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		id, err = insertMetadata(ctx, tx, metadata, policy)
		return err
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// InsertMetadataWithChildren writes a metadata row and its images, links, tags and assets in one
// transaction. Children use the same policy as the metadata row.
func (s *dataStore) InsertMetadataWithChildren(ctx context.Context, bundle MetadataBundle, policy domain.ConflictPolicy) (int, error) {
	var id int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		id, err = insertMetadata(ctx, tx, bundle.Metadata, policy)
		if err != nil {
			return err
		}

		txStore := &dataStore{db: tx}
		if err := txStore.InsertMetadataImages(ctx, id, bundle.Images, policy); err != nil {
			return err
		}
		if err := txStore.InsertMetadataLinks(ctx, id, bundle.Links, policy); err != nil {
			return err
		}
		if err := txStore.InsertMetadataTags(ctx, id, bundle.Tags, policy); err != nil {
			return err
		}
		return txStore.InsertMetadataAssets(ctx, id, bundle.Assets, policy)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// insertMetadata inserts on tx and returns the id of the affected row.
// With ConflictIgnore a conflicting insert returns no row, so the existing id is looked up.
func insertMetadata(ctx context.Context, tx *gorm.DB, metadata schema.Metadata, policy domain.ConflictPolicy) (int, error) {
	clauses, err := conflictClauses(policy, metadataUpsert(metadata))
	if err != nil {
		return 0, err
	}

	metadata.ID = 0
	result := tx.Clauses(clauses...).Create(&metadata)
	if result.Error != nil {
		return 0, statementError(ctx, dataComponent, result, result.Error)
	}
	if metadata.ID != 0 {
		return metadata.ID, nil
	}

	existing, err := takeWhere[schema.Metadata](ctx, primary(tx), func(db *gorm.DB) *gorm.DB {
		return whereNullable(db.Where(`"address" = ?`, metadata.Address), "tokenId", metadata.TokenID)
	})
	if err != nil {
		return 0, err
	}
	if existing == nil {
		return 0, fmt.Errorf("failed to get id of metadata for %s", metadata.Address)
	}
	return existing.ID, nil
}

func (s *dataStore) GetMetadata(ctx context.Context, address string, tokenID *string) (*schema.Metadata, error) {
	return takeWhere[schema.Metadata](ctx, s.db, func(db *gorm.DB) *gorm.DB {
		return whereNullable(db.Where(`"address" = ?`, address), "tokenId", tokenID)
	})
}

// Metadata children

func (s *dataStore) InsertMetadataImages(ctx context.Context, metadataID int, images []schema.MetadataImage, policy domain.ConflictPolicy) error {
	images = slices.Clone(images)
	for i := range images {
		images[i].MetadataID = metadataID
	}
	return insertBatch(ctx, s.db, images, 6, policy, metadataImageUpsert)
}

func (s *dataStore) InsertMetadataLinks(ctx context.Context, metadataID int, links []schema.MetadataLink, policy domain.ConflictPolicy) error {
	links = slices.Clone(links)
	for i := range links {
		links[i].MetadataID = metadataID
	}
	return insertBatch(ctx, s.db, links, 3, policy, metadataLinkUpsert)
}

func (s *dataStore) InsertMetadataTags(ctx context.Context, metadataID int, tags []string, policy domain.ConflictPolicy) error {
	rows := make([]schema.MetadataTag, len(tags))
	for i, title := range tags {
		rows[i] = schema.MetadataTag{MetadataID: metadataID, Title: title}
	}
	return insertBatch(ctx, s.db, rows, 2, policy, metadataTagUpsert)
}

func (s *dataStore) InsertMetadataAssets(ctx context.Context, metadataID int, assets []schema.MetadataAsset, policy domain.ConflictPolicy) error {
	assets = slices.Clone(assets)
	for i := range assets {
		assets[i].MetadataID = metadataID
	}
	return insertBatch(ctx, s.db, assets, 4, policy, metadataAssetUpsert)
}

func (s *dataStore) GetMetadataImages(ctx context.Context, metadataID int, imageType NullFilter) ([]schema.MetadataImage, error) {
	images := []schema.MetadataImage{}
	db := s.db.WithContext(ctx).Where(`"metadataId" = ?`, metadataID)
	if imageType.Set {
		db = whereNullable(db, "type", imageType.Value)
	}
	tx := db.Find(&images)
	if tx.Error != nil {
		return nil, statementError(ctx, dataComponent, tx, tx.Error)
	}
	return images, nil
}

func (s *dataStore) GetMetadataLinks(ctx context.Context, metadataID int) ([]schema.MetadataLink, error) {
	links := []schema.MetadataLink{}
	tx := s.db.WithContext(ctx).Where(`"metadataId" = ?`, metadataID).Find(&links)
	if tx.Error != nil {
		return nil, statementError(ctx, dataComponent, tx, tx.Error)
	}
	return links, nil
}

func (s *dataStore) GetMetadataTags(ctx context.Context, metadataID int) ([]string, error) {
	titles := []string{}
	tx := s.db.WithContext(ctx).
		Model(&schema.MetadataTag{}).
		Where(`"metadataId" = ?`, metadataID).
		Pluck("title", &titles)
	if tx.Error != nil {
		return nil, statementError(ctx, dataComponent, tx, tx.Error)
	}
	return titles, nil
}

func (s *dataStore) GetMetadataAssets(ctx context.Context, metadataID int, fileType *string) ([]schema.MetadataAsset, error) {
	assets := []schema.MetadataAsset{}
	db := s.db.WithContext(ctx).Where(`"metadataId" = ?`, metadataID)
	if fileType != nil {
		db = db.Where(`"fileType" = ?`, *fileType)
	}
	tx := db.Find(&assets)
	if tx.Error != nil {
		return nil, statementError(ctx, dataComponent, tx, tx.Error)
	}
	return assets, nil
}

// ERC725Y data changes

func (s *dataStore) InsertDataChanged(ctx context.Context, change schema.DataChanged) error {
	return s.insert(ctx, &change, nil)
}

func (s *dataStore) GetDataChangedHistoryByAddressAndKey(ctx context.Context, address, key string) ([]schema.DataChanged, error) {
	changes := []schema.DataChanged{}
	tx := s.db.WithContext(ctx).
		Where(`"address" = ? AND "key" = ?`, address, key).
		Order(`"blockNumber" ASC`).
		Find(&changes)
	if tx.Error != nil {
		return nil, statementError(ctx, dataComponent, tx, tx.Error)
	}
	return changes, nil
}

func (s *dataStore) GetLatestDataChanged(ctx context.Context, address, key string) (*schema.DataChanged, error) {
	return takeWhere[schema.DataChanged](ctx, s.db, func(db *gorm.DB) *gorm.DB {
		return db.Where(`"address" = ? AND LOWER("key") = LOWER(?)`, address, key).
			Order(`"blockNumber" DESC`)
	})
}

// Transactions

func (s *dataStore) InsertTransaction(ctx context.Context, transaction schema.Transaction) error {
	return s.insert(ctx, &transaction, nil)
}

func (s *dataStore) GetTransactionByHash(ctx context.Context, hash string) (*schema.Transaction, error) {
	return take[schema.Transaction](ctx, s.db, `"hash" = ?`, hash)
}

func (s *dataStore) InsertTransactionInput(ctx context.Context, input schema.TransactionInput) error {
	return s.insert(ctx, &input, nil)
}

func (s *dataStore) GetTransactionInput(ctx context.Context, transactionHash string) (*string, error) {
	input, err := take[schema.TransactionInput](ctx, s.db, `"transactionHash" = ?`, transactionHash)
	if err != nil || input == nil {
		return nil, err
	}
	return &input.Input, nil
}

func (s *dataStore) InsertTransactionParameters(ctx context.Context, transactionHash string, params []schema.TransactionParameter, policy domain.ConflictPolicy) error {
	params = slices.Clone(params)
	for i := range params {
		params[i].TransactionHash = transactionHash
	}
	return insertBatch(ctx, s.db, params, 5, policy, transactionParameterUpsert)
}

func (s *dataStore) GetTransactionParameters(ctx context.Context, transactionHash string) ([]schema.TransactionParameter, error) {
	params := []schema.TransactionParameter{}
	tx := s.db.WithContext(ctx).
		Where(`"transactionHash" = ?`, transactionHash).
		Order(`"position" ASC`).
		Find(&params)
	if tx.Error != nil {
		return nil, statementError(ctx, dataComponent, tx, tx.Error)
	}
	return params, nil
}

// Wrapped transactions

func (s *dataStore) InsertWrappedTx(ctx context.Context, wrapped schema.WrappedTransaction) (int, error) {
	wrapped.ID = 0
	if err := s.insert(ctx, &wrapped, nil); err != nil {
		return 0, err
	}
	return wrapped.ID, nil
}

func (s *dataStore) GetWrappedTxByID(ctx context.Context, id int) (*schema.WrappedTransaction, error) {
	return take[schema.WrappedTransaction](ctx, s.db, `"id" = ?`, id)
}

func (s *dataStore) InsertWrappedTxInput(ctx context.Context, input schema.WrappedTransactionInput) error {
	return s.insert(ctx, &input, nil)
}

func (s *dataStore) GetWrappedTxInput(ctx context.Context, wrappedTransactionID int) (*string, error) {
	input, err := take[schema.WrappedTransactionInput](ctx, s.db, `"wrappedTransactionId" = ?`, wrappedTransactionID)
	if err != nil || input == nil {
		return nil, err
	}
	return &input.Input, nil
}

func (s *dataStore) InsertWrappedTxParameters(ctx context.Context, wrappedTransactionID int, params []schema.WrappedTransactionParameter, policy domain.ConflictPolicy) error {
	params = slices.Clone(params)
	for i := range params {
		params[i].WrappedTransactionID = wrappedTransactionID
	}
	return insertBatch(ctx, s.db, params, 5, policy, wrappedParameterUpsert)
}

func (s *dataStore) GetWrappedTxParameters(ctx context.Context, wrappedTransactionID int) ([]schema.WrappedTransactionParameter, error) {
	params := []schema.WrappedTransactionParameter{}
	tx := s.db.WithContext(ctx).
		Where(`"wrappedTransactionId" = ?`, wrappedTransactionID).
		Order(`"position" ASC`).
		Find(&params)
	if tx.Error != nil {
		return nil, statementError(ctx, dataComponent, tx, tx.Error)
	}
	return params, nil
}

func (s *dataStore) GetWrappedTxsByTransactionHash(ctx context.Context, transactionHash string, methodID *string) ([]schema.WrappedTransaction, error) {
	wrapped := []schema.WrappedTransaction{}
	db := s.db.WithContext(ctx).Where(`"transactionHash" = ?`, transactionHash)
	if methodID != nil {
		db = db.Where(`"methodId" = ?`, *methodID)
	}
	tx := db.Order(`"id" ASC`).Find(&wrapped)
	if tx.Error != nil {
		return nil, statementError(ctx, dataComponent, tx, tx.Error)
	}
	return wrapped, nil
}

// Events

func (s *dataStore) InsertEvent(ctx context.Context, event schema.Event) error {
	return s.insert(ctx, &event, nil)
}

func (s *dataStore) GetEventByID(ctx context.Context, id string) (*schema.Event, error) {
	return take[schema.Event](ctx, s.db, `"id" = ?`, id)
}

func (s *dataStore) InsertEventParameters(ctx context.Context, eventID string, params []schema.EventParameter, policy domain.ConflictPolicy) error {
	params = slices.Clone(params)
	for i := range params {
		params[i].EventID = eventID
	}
	return insertBatch(ctx, s.db, params, 5, policy, eventParameterUpsert)
}

func (s *dataStore) GetEventParameters(ctx context.Context, eventID string) ([]schema.EventParameter, error) {
	params := []schema.EventParameter{}
	tx := s.db.WithContext(ctx).
		Where(`"eventId" = ?`, eventID).
		Order(`"position" ASC`).
		Find(&params)
	if tx.Error != nil {
		return nil, statementError(ctx, dataComponent, tx, tx.Error)
	}
	return params, nil
}

// helpers

// insert creates value in a (sub)transaction so a violation leaves an enclosing transaction usable
func (s *dataStore) insert(ctx context.Context, value any, clauses []clause.Expression) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Clauses(clauses...).Create(value)
		if result.Error != nil {
			return statementError(ctx, dataComponent, result, result.Error)
		}
		return nil
	})
}

// insertBatch writes rows with one multi-row INSERT, split only past the bind parameter limit.
// Under ConflictIgnore conflicting rows are skipped and the others inserted.
func insertBatch[T any](ctx context.Context, db *gorm.DB, rows []T, fieldsPerRow int, policy domain.ConflictPolicy, upsert func() clause.OnConflict) error {
	if len(rows) == 0 {
		return nil
	}

	clauses, err := conflictClauses(policy, upsert)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tx = tx.Clauses(clauses...)

		var result *gorm.DB
		if batchSize := calculateSafeBatchSize(len(rows), fieldsPerRow); batchSize < len(rows) {
			result = tx.CreateInBatches(&rows, batchSize)
		} else {
			result = tx.Create(&rows)
		}
		if result.Error != nil {
			return statementError(ctx, dataComponent, result, result.Error)
		}
		return nil
	})
}

func take[T any](ctx context.Context, db *gorm.DB, query string, args ...any) (*T, error) {
	return takeWhere[T](ctx, db, func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	})
}

func takeWhere[T any](ctx context.Context, db *gorm.DB, scope func(*gorm.DB) *gorm.DB) (*T, error) {
	var row T
	tx := scope(db.WithContext(ctx)).Take(&row)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, statementError(ctx, dataComponent, tx, tx.Error)
	}
	return &row, nil
}

// whereNullable adds a NULL-aware equality on column
func whereNullable(db *gorm.DB, column string, value *string) *gorm.DB {
	if value == nil {
		return db.Where(fmt.Sprintf("%q IS NULL", column))
	}
	return db.Where(fmt.Sprintf("%q = ?", column), *value)
}

// scan runs a builder query and scans its rows into dest
func (s *dataStore) scan(ctx context.Context, q sqlbuilder.Query, dest any) error {
	sql, args, err := q.Build()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	tx := s.db.WithContext(ctx).Raw(sql, args...).Scan(dest)
	if tx.Error != nil {
		return queryError(ctx, dataComponent, sql, args, tx.Error)
	}
	return nil
}

func (s *dataStore) count(ctx context.Context, q sqlbuilder.Query) (int, error) {
	var n int64
	if err := s.scan(ctx, q.Count(), &n); err != nil {
		return 0, err
	}
	return int(n), nil
}
