package services

import (
	"testing"

	"finera/internal/testutil"
)

func TestUserService_CreateUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewUserService(db)

	t.Run("creates_user_and_hashes_password", func(t *testing.T) {
		user, err := service.CreateUser("Ayse@Example.com", "secret123", "Ayşe Yılmaz")
		testutil.AssertNoError(t, err)

		if user.Email != "ayse@example.com" {
			t.Errorf("expected normalized email, got %q", user.Email)
		}
		if user.Password == "secret123" {
			t.Error("password must be stored hashed")
		}
		if !service.VerifyPassword(user, "secret123") {
			t.Error("expected password to verify")
		}
		if service.VerifyPassword(user, "wrong") {
			t.Error("expected wrong password to fail verification")
		}
	})

	t.Run("duplicate_email_rejected", func(t *testing.T) {
		_, err := service.CreateUser("dup@example.com", "secret123", "First")
		testutil.AssertNoError(t, err)

		_, err = service.CreateUser("DUP@example.com", "secret123", "Second")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})

	t.Run("missing_credentials_rejected", func(t *testing.T) {
		_, err := service.CreateUser("", "secret123", "X")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUserService_UpdateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewUserService(db)

	first, err := service.CreateUser("one@example.com", "secret123", "One")
	testutil.AssertNoError(t, err)
	_, err = service.CreateUser("two@example.com", "secret123", "Two")
	testutil.AssertNoError(t, err)

	t.Run("updates_to_free_address", func(t *testing.T) {
		updated, err := service.UpdateEmail(first.ID, "New@Example.com")
		testutil.AssertNoError(t, err)
		if updated.Email != "new@example.com" {
			t.Errorf("expected normalized new email, got %q", updated.Email)
		}
	})

	t.Run("taken_address_rejected", func(t *testing.T) {
		_, err := service.UpdateEmail(first.ID, "two@example.com")
		testutil.AssertAppError(t, err, "DUPLICATE_EMAIL")
	})
}

func TestUserService_UpdatePassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	service := NewUserService(db)
	user, err := service.CreateUser("pw@example.com", "oldpass123", "PW")
	testutil.AssertNoError(t, err)

	t.Run("requires_current_password", func(t *testing.T) {
		err := service.UpdatePassword(user.ID, "wrongpass", "newpass123")
		testutil.AssertAppError(t, err, "INVALID_CREDENTIALS")
	})

	t.Run("rotates_password", func(t *testing.T) {
		err := service.UpdatePassword(user.ID, "oldpass123", "newpass123")
		testutil.AssertNoError(t, err)

		fresh, err := service.GetUserByID(user.ID)
		testutil.AssertNoError(t, err)
		if !service.VerifyPassword(fresh, "newpass123") {
			t.Error("expected new password to verify")
		}
	})
}
