// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// NonRetryable indicates that repeating the operation will fail again.
	// This is the default classification for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the operation may succeed if attempted again
	// (the database was busy or locked).
	Retryable

	// ConstraintViolation indicates that the data broke a table constraint.
	ConstraintViolation
)

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier] ready for use.
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator]. It unwraps err as a
// sqlite3.Error and maps its primary result code.
//
// Retryable codes: SQLITE_BUSY, SQLITE_LOCKED.
// ConstraintViolation: SQLITE_CONSTRAINT and its extended codes.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	case sqlite3.ErrConstraint:
		return ConstraintViolation
	default:
		return NonRetryable
	}
}

// classify maps a driver error to the package's sentinel errors, keeping the
// original error in the chain.
func (db *DB) classify(err error) error {
	switch db.errorClassificator.Classify(err) {
	case Retryable:
		return errors.Join(ErrDatabaseBusy, err)
	case ConstraintViolation:
		return errors.Join(ErrDuplicateSyncPair, err)
	default:
		return err
	}
}
