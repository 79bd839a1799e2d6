package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsUniqueViolation(t *testing.T) {
	uniqueErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	if !IsUniqueViolation(uniqueErr) {
		t.Error("expected 23505 to be a unique violation")
	}
	if !IsUniqueViolation(fmt.Errorf("insert failed: %w", uniqueErr)) {
		t.Error("expected wrapped 23505 to be a unique violation")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("foreign key violation is not a unique violation")
	}
	if IsUniqueViolation(errors.New("plain error")) {
		t.Error("plain errors are not unique violations")
	}
	if IsUniqueViolation(nil) {
		t.Error("nil is not a unique violation")
	}
}

func TestIsDuplicateConstraintError(t *testing.T) {
	err := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}

	if !IsDuplicateConstraintError(err, "users_email_key") {
		t.Error("expected constraint name to match")
	}
	if IsDuplicateConstraintError(err, "users_username_key") {
		t.Error("expected different constraint name to not match")
	}
}

func TestIsUndefinedTable(t *testing.T) {
	missing := &pgconn.PgError{Code: "42P01", Message: `relation "system_logs" does not exist`}

	if !IsUndefinedTable(missing) {
		t.Error("expected 42P01 to be an undefined table error")
	}
	if !IsUndefinedTable(fmt.Errorf("query failed: %w", missing)) {
		t.Error("expected wrapped 42P01 to be detected")
	}
	if IsUndefinedTable(&pgconn.PgError{Code: "23505"}) {
		t.Error("unique violation is not an undefined table error")
	}
	if IsUndefinedTable(errors.New("plain error")) {
		t.Error("plain errors are not undefined table errors")
	}
}
