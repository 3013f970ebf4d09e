package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lukso-network/lukso-indexer-api/internal/cache"
	"github.com/lukso-network/lukso-indexer-api/internal/domain"
	"github.com/lukso-network/lukso-indexer-api/internal/store/schema"
)

const structureComponent = "structure-store"

type structureStore struct {
	db         *gorm.DB
	interfaces *cache.InterfaceCache
}

// NewStructureStore creates a structure store on db. The interface cache is shared by
// reference, a nil cache gets a default one.
func NewStructureStore(db *gorm.DB, interfaces *cache.InterfaceCache) StructureStore {
	if interfaces == nil {
		interfaces = cache.NewInterfaceCache(cache.DefaultInterfaceTTL, nil, nil)
	}
	return &structureStore{db: db, interfaces: interfaces}
}

func (s *structureStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (s *structureStore) GetConfig(ctx context.Context) (*schema.Config, error) {
	var rows []schema.Config
	tx := s.db.WithContext(ctx).Limit(1).Find(&rows)
	if tx.Error != nil {
		return nil, statementError(ctx, structureComponent, tx, tx.Error)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to get config: %w", domain.ErrConfigNotInitialized)
	}
	return &rows[0], nil
}

func (s *structureStore) UpdateLatestIndexedBlock(ctx context.Context, blockNumber int) error {
	return s.updateConfig(ctx, "latestIndexedBlock", blockNumber)
}

func (s *structureStore) UpdateLatestIndexedEventBlock(ctx context.Context, blockNumber int) error {
	return s.updateConfig(ctx, "latestIndexedEventBlock", blockNumber)
}

func (s *structureStore) SetPaused(ctx context.Context, paused bool) error {
	return s.updateConfig(ctx, "paused", paused)
}

// updateConfig updates one column of the singleton row, hence no WHERE clause
func (s *structureStore) updateConfig(ctx context.Context, column string, value any) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Model(&schema.Config{}).
			Update(column, value)
		if result.Error != nil {
			return statementError(ctx, structureComponent, result, result.Error)
		}
		return nil
	})
}

func (s *structureStore) InsertErc725ySchema(ctx context.Context, erc725ySchema schema.ERC725YSchema) error {
	return s.create(ctx, &erc725ySchema)
}

func (s *structureStore) GetErc725ySchemaByKey(ctx context.Context, key string) (*schema.ERC725YSchema, error) {
	prefix := key
	if len(prefix) > domain.ERC725Y_KEY_PREFIX_LENGTH {
		prefix = prefix[:domain.ERC725Y_KEY_PREFIX_LENGTH]
	}

	var rows []schema.ERC725YSchema
	tx := s.db.WithContext(ctx).
		Where(`LOWER("key") LIKE LOWER(?)`, "%"+prefix+"%").
		Limit(1).
		Find(&rows)
	if tx.Error != nil {
		return nil, statementError(ctx, structureComponent, tx, tx.Error)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (s *structureStore) InsertContractInterface(ctx context.Context, ci schema.ContractInterface) error {
	if err := s.create(ctx, &ci); err != nil {
		return err
	}

	s.interfaces.Append(ci)
	return nil
}

func (s *structureStore) GetContractInterfaceByID(ctx context.Context, id string) (*schema.ContractInterface, error) {
	if cached, ok := s.interfaces.Find(id); ok {
		return cached, nil
	}

	var ci schema.ContractInterface
	tx := s.db.WithContext(ctx).Where(`"id" = ?`, id).First(&ci)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, statementError(ctx, structureComponent, tx, tx.Error)
	}
	return &ci, nil
}

func (s *structureStore) GetContractInterfaces(ctx context.Context) ([]schema.ContractInterface, error) {
	return s.interfaces.All(ctx, func(ctx context.Context) ([]schema.ContractInterface, error) {
		var rows []schema.ContractInterface
		tx := s.db.WithContext(ctx).Find(&rows)
		if tx.Error != nil {
			return nil, statementError(ctx, structureComponent, tx, tx.Error)
		}
		return rows, nil
	})
}

func (s *structureStore) InsertMethodInterface(ctx context.Context, mi schema.MethodInterface) error {
	return s.create(ctx, &mi)
}

func (s *structureStore) GetMethodInterfaceByID(ctx context.Context, id string) (*schema.MethodInterface, error) {
	var mi schema.MethodInterface
	tx := s.db.WithContext(ctx).Where(`"id" = ?`, id).First(&mi)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, statementError(ctx, structureComponent, tx, tx.Error)
	}
	return &mi, nil
}

func (s *structureStore) InsertMethodParameter(ctx context.Context, p schema.MethodParameter) error {
	return s.create(ctx, &p)
}

func (s *structureStore) GetMethodParametersByMethodID(ctx context.Context, methodID string) ([]schema.MethodParameter, error) {
	params := []schema.MethodParameter{}
	tx := s.db.WithContext(ctx).
		Where(`"methodId" = ?`, methodID).
		Order(`"position" ASC`).
		Find(&params)
	if tx.Error != nil {
		return nil, statementError(ctx, structureComponent, tx, tx.Error)
	}
	return params, nil
}

func (s *structureStore) create(ctx context.Context, value any) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Create(value)
		if result.Error != nil {
			return statementError(ctx, structureComponent, result, result.Error)
		}
		return nil
	})
}
