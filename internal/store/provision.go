package store

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lukso-network/lukso-indexer-api/internal/domain"
	"github.com/lukso-network/lukso-indexer-api/internal/logger"
)

// Target selects which of the two stores a Provisioner manages
type Target string

const (
	DataTarget      Target = "data"
	StructureTarget Target = "structure"
)

// ParseTarget converts a CLI or config value into a Target
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case DataTarget, StructureTarget:
		return Target(s), nil
	default:
		return "", fmt.Errorf("%w: unknown provisioning target %q", domain.ErrInvalidInput, s)
	}
}

// Provisioner creates, drops and empties the schema of one store
type Provisioner struct {
	db     *gorm.DB
	target Target
	schema schemaDefinition
}

// NewProvisioner creates a Provisioner for target on db
func NewProvisioner(db *gorm.DB, target Target) (*Provisioner, error) {
	var def schemaDefinition
	switch target {
	case DataTarget:
		def = dataSchema
	case StructureTarget:
		def = structureSchema
	default:
		return nil, fmt.Errorf("%w: unknown provisioning target %q", domain.ErrInvalidInput, target)
	}

	return &Provisioner{db: db, target: target, schema: def}, nil
}

// Tables returns the tables of the target in creation order
func (p *Provisioner) Tables() []string {
	return slices.Clone(p.schema.tables)
}

// Provision creates enum types, tables, indexes and triggers of the target.
// It is idempotent. With dropExisting every table, type and named index is dropped first.
func (p *Provisioner) Provision(ctx context.Context, dropExisting bool) error {
	log := logger.FromContext(ctx).Named("provisioner").With(zap.String("target", string(p.target)))

	if dropExisting {
		var drops []string
		for _, table := range p.schema.tables {
			drops = append(drops, fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table))
		}
		for _, typ := range p.schema.types {
			drops = append(drops, fmt.Sprintf("DROP TYPE IF EXISTS %s", typ))
		}
		for _, index := range p.schema.indexes {
			drops = append(drops, fmt.Sprintf("DROP INDEX IF EXISTS %s", index))
		}

		for _, stmt := range drops {
			if err := p.exec(ctx, stmt); err != nil {
				return err
			}
		}
		log.Info("Dropped existing schema", zap.Int("tables", len(p.schema.tables)))
	}

	for _, stmt := range p.schema.statements {
		err := p.exec(ctx, stmt.sql)
		if err == nil {
			continue
		}
		if stmt.tolerateExisting && isDuplicateObject(err) {
			log.Info("Object already exists, skipping", zap.String("statement", firstLine(stmt.sql)))
			continue
		}
		return err
	}

	if err := p.seed(ctx); err != nil {
		return err
	}

	log.Info("Schema provisioned")
	return nil
}

// Cleanup deletes every row of the target, children first.
// The structure target gets its default config row back.
func (p *Provisioner) Cleanup(ctx context.Context) error {
	tables := p.Tables()
	slices.Reverse(tables)

	for _, table := range tables {
		if err := p.exec(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return err
		}
	}

	if err := p.seed(ctx); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Store cleaned up", zap.String("target", string(p.target)))
	return nil
}

func (p *Provisioner) seed(ctx context.Context) error {
	for _, stmt := range p.schema.seed {
		if err := p.exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// exec runs stmt in its own (sub)transaction so a tolerated failure does not abort
// an enclosing transaction
func (p *Provisioner) exec(ctx context.Context, stmt string) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Exec(stmt).Error
	})
	if err == nil {
		return nil
	}

	if isDuplicateObject(err) {
		return &QueryExecutionError{Query: stmt, Err: err}
	}
	return queryError(ctx, "provisioner", stmt, nil, err)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
