package store

import (
	"fmt"

	"gorm.io/gorm/clause"

	"github.com/lukso-network/lukso-indexer-api/internal/domain"
	"github.com/lukso-network/lukso-indexer-api/internal/store/schema"
)

// conflictClauses maps a policy to the ON CONFLICT clause of an insert.
// ConflictThrow adds nothing, ConflictIgnore adds an untargeted DO NOTHING and
// ConflictUpdate adds the entity's upsert.
func conflictClauses(policy domain.ConflictPolicy, upsert func() clause.OnConflict) ([]clause.Expression, error) {
	switch policy {
	case domain.ConflictThrow:
		return nil, nil
	case domain.ConflictIgnore:
		return []clause.Expression{clause.OnConflict{DoNothing: true}}, nil
	case domain.ConflictUpdate:
		return []clause.Expression{upsert()}, nil
	default:
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConflictPolicy, policy)
	}
}

func columns(names ...string) []clause.Column {
	cols := make([]clause.Column, len(names))
	for i, name := range names {
		cols[i] = clause.Column{Name: name}
	}
	return cols
}

// nullAwareTarget selects the partial unique index matching tokenID:
// (key..., tokenId) WHERE tokenId IS NOT NULL, or (key...) WHERE tokenId IS NULL
func nullAwareTarget(tokenID *string, key ...string) ([]clause.Column, clause.Where) {
	if tokenID != nil {
		return columns(append(key, "tokenId")...),
			clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: `"tokenId" IS NOT NULL`}}}
	}
	return columns(key...),
		clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: `"tokenId" IS NULL`}}}
}

func contractUpsert() clause.OnConflict {
	return clause.OnConflict{
		Columns:   columns("address"),
		DoUpdates: clause.AssignmentColumns([]string{"interfaceCode", "interfaceVersion", "type"}),
	}
}

// contractTokenUpsert never touches the index. decodedTokenId and latestKnownOwner are only
// overwritten when the new row provides them.
func contractTokenUpsert(token schema.ContractToken) func() clause.OnConflict {
	return func() clause.OnConflict {
		updates := []string{"interfaceCode"}
		if token.DecodedTokenID != nil && *token.DecodedTokenID != "" {
			updates = append(updates, "decodedTokenId")
		}
		if token.LatestKnownOwner != nil && *token.LatestKnownOwner != "" {
			updates = append(updates, "latestKnownOwner")
		}
		return clause.OnConflict{
			Columns:   columns("id"),
			DoUpdates: clause.AssignmentColumns(updates),
		}
	}
}

func tokenHolderUpsert(holder schema.TokenHolder) func() clause.OnConflict {
	return func() clause.OnConflict {
		target, where := nullAwareTarget(holder.TokenID, "holderAddress", "contractAddress")
		return clause.OnConflict{
			Columns:     target,
			TargetWhere: where,
			DoUpdates:   clause.AssignmentColumns([]string{"balanceInWei", "balanceInEth"}),
		}
	}
}

func metadataUpsert(metadata schema.Metadata) func() clause.OnConflict {
	return func() clause.OnConflict {
		target, where := nullAwareTarget(metadata.TokenID, "address")
		return clause.OnConflict{
			Columns:     target,
			TargetWhere: where,
			DoUpdates:   clause.AssignmentColumns([]string{"name", "symbol", "description", "isNFT"}),
		}
	}
}

// childUpsert is the upsert of a batch table unique on key, updating the remaining columns.
// Without remaining columns it degrades to DO NOTHING.
func childUpsert(key []string, updates []string) func() clause.OnConflict {
	return func() clause.OnConflict {
		if len(updates) == 0 {
			return clause.OnConflict{Columns: columns(key...), DoNothing: true}
		}
		return clause.OnConflict{
			Columns:   columns(key...),
			DoUpdates: clause.AssignmentColumns(updates),
		}
	}
}

var (
	metadataImageUpsert        = childUpsert([]string{"metadataId", "url"}, []string{"width", "height", "type", "hash"})
	metadataLinkUpsert         = childUpsert([]string{"metadataId", "url"}, []string{"title"})
	metadataTagUpsert          = childUpsert([]string{"metadataId", "title"}, nil)
	metadataAssetUpsert        = childUpsert([]string{"metadataId", "url"}, []string{"fileType", "hash"})
	transactionParameterUpsert = childUpsert([]string{"transactionHash", "position"}, []string{"value", "name", "type"})
	wrappedParameterUpsert     = childUpsert([]string{"wrappedTransactionId", "position"}, []string{"value", "name", "type"})
	eventParameterUpsert       = childUpsert([]string{"eventId", "position"}, []string{"value", "name", "type"})
)
