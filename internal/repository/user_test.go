package repository

import (
	"testing"
)

func TestNewUserRepository(t *testing.T) {
	repo := NewUserRepository(nil)
	if repo == nil {
		t.Fatal("expected non-nil UserRepository")
	}
	if repo.db != nil {
		t.Fatal("expected nil db when constructed with nil")
	}
}

func TestUserSentinelErrors(t *testing.T) {
	if ErrUserNotFound.Error() != "user not found" {
		t.Fatalf("unexpected error message: %s", ErrUserNotFound.Error())
	}
	if ErrDuplicateUsername.Error() != "username already exists" {
		t.Fatalf("unexpected error message: %s", ErrDuplicateUsername.Error())
	}
}

func TestIsDuplicateEntryError(t *testing.T) {
	if isDuplicateEntryError(nil) {
		t.Fatal("nil error should not be a duplicate entry error")
	}
	if isDuplicateEntryError(ErrUserNotFound) {
		t.Fatal("ErrUserNotFound should not be a duplicate entry error")
	}
}
