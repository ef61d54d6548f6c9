// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-photo-annotator/models"
)

const sessionsTable = "sessions"

var sessionColumns = []string{"id", "folder", "document", "opened_at", "updated_at"}

// sqlb builds SQLite statements with `?` placeholders.
var sqlb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildUpsertSessionQuery inserts a session or refreshes the existing row
// for the same folder. The stored document survives an empty one.
func buildUpsertSessionQuery(entry models.HistoryEntry) (string, []any, error) {
	return sqlb.Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(entry.ID, entry.Folder, entry.Document, entry.OpenedAt, entry.UpdatedAt).
		Suffix(`ON CONFLICT (folder) DO UPDATE SET
			document = COALESCE(NULLIF(excluded.document, ''), sessions.document),
			opened_at = excluded.opened_at,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildUpdateDocumentQuery(folder, document string, at time.Time) (string, []any, error) {
	return sqlb.Update(sessionsTable).
		Set("document", document).
		Set("updated_at", at).
		Where(sq.Eq{"folder": folder}).
		ToSql()
}

func buildSelectLastSessionQuery() (string, []any, error) {
	return sqlb.Select(sessionColumns...).
		From(sessionsTable).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
}

func buildSelectSessionByFolderQuery(folder string) (string, []any, error) {
	return sqlb.Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"folder": folder}).
		ToSql()
}
