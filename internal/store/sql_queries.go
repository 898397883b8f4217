// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-drive-desk/models"
)

const syncPairsTable = "sync_pairs"

var syncPairColumns = []string{
	"uuid",
	"name",
	"local_path",
	"remote_path",
	"remote_parent_uuid",
	"mode",
	"exclude_dot_files",
	"paused",
	"removed",
}

// sqlb builds SQLite statements with ? placeholders.
var sqlb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectSyncPairsQuery() (string, []any, error) {
	return sqlb.
		Select(syncPairColumns...).
		From(syncPairsTable).
		OrderBy("position ASC").
		ToSql()
}

func buildDeleteSyncPairsQuery() (string, []any, error) {
	return sqlb.Delete(syncPairsTable).ToSql()
}

// buildInsertSyncPairsQuery inserts pairs in one statement; position keeps
// the slice order.
func buildInsertSyncPairsQuery(pairs []models.SyncPair) (string, []any, error) {
	columns := append([]string{"position"}, syncPairColumns...)
	builder := sqlb.Insert(syncPairsTable).Columns(columns...)

	for i, p := range pairs {
		builder = builder.Values(
			i,
			p.UUID,
			p.Name,
			p.LocalPath,
			p.RemotePath,
			p.RemoteParentUUID,
			string(p.Mode),
			p.ExcludeDotFiles,
			p.Paused,
			p.Removed,
		)
	}

	return builder.ToSql()
}
