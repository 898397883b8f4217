// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-drive-desk/internal/logger"
	"github.com/MKhiriev/go-drive-desk/models"
)

type syncConfigRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSyncConfigRepository returns the SQLite implementation of
// [SyncConfigRepository].
func NewSyncConfigRepository(db *DB, logger *logger.Logger) SyncConfigRepository {
	return &syncConfigRepository{
		db:     db,
		logger: logger,
	}
}

func (r *syncConfigRepository) List(ctx context.Context) ([]models.SyncPair, error) {
	query, args, err := buildSelectSyncPairsQuery()
	if err != nil {
		return nil, fmt.Errorf("build select sync pairs query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "syncConfigRepository.List").
			Msg("failed to query sync pairs")
		return nil, fmt.Errorf("failed to query sync pairs: %w", r.db.classify(err))
	}
	defer rows.Close()

	pairs := make([]models.SyncPair, 0)
	for rows.Next() {
		var p models.SyncPair
		var mode string
		if err = rows.Scan(
			&p.UUID,
			&p.Name,
			&p.LocalPath,
			&p.RemotePath,
			&p.RemoteParentUUID,
			&mode,
			&p.ExcludeDotFiles,
			&p.Paused,
			&p.Removed,
		); err != nil {
			r.logger.Err(err).
				Str("func", "syncConfigRepository.List").
				Msg("failed to scan sync pair")
			return nil, fmt.Errorf("failed to scan sync pair: %w", err)
		}
		p.Mode = models.SyncMode(mode)
		pairs = append(pairs, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate sync pairs: %w", r.db.classify(err))
	}

	return pairs, nil
}

func (r *syncConfigRepository) ReplaceAll(ctx context.Context, pairs []models.SyncPair) (err error) {
	log := r.logger.With().
		Str("func", "syncConfigRepository.ReplaceAll").
		Int("count", len(pairs)).
		Logger()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", r.db.classify(err))
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	query, args, err := buildDeleteSyncPairsQuery()
	if err != nil {
		return fmt.Errorf("build delete sync pairs query: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Msg("failed to clear sync pairs")
		return fmt.Errorf("failed to clear sync pairs: %w", r.db.classify(err))
	}

	if len(pairs) > 0 {
		query, args, err = buildInsertSyncPairsQuery(pairs)
		if err != nil {
			return fmt.Errorf("build insert sync pairs query: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Msg("failed to insert sync pairs")
			return fmt.Errorf("failed to insert sync pairs: %w", r.db.classify(err))
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit sync pairs: %w", r.db.classify(err))
	}

	return nil
}
