package services

import (
	"testing"

	"spendtrack/internal/models"
	"spendtrack/internal/testutil"
)

func TestCreateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		user, err := svc.CreateUser("alice", "pw1")
		testutil.AssertNoError(t, err)

		if user.ID == 0 {
			t.Fatal("expected non-zero user ID")
		}
		if user.Username != "alice" {
			t.Errorf("expected username alice, got %s", user.Username)
		}
		if user.Password == "pw1" {
			t.Error("password stored in plaintext")
		}
	})

	t.Run("duplicate_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("alice", "pw1")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateUser("alice", "other")
		testutil.AssertAppError(t, err, "DUPLICATE_USERNAME")
	})

	t.Run("unique_violation_on_insert", func(t *testing.T) {
		// A second signup can slip past the pre-check and hit the unique
		// index on insert. That failure must still map to the conflict
		// sentinel, not an internal error.
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		testutil.CreateTestUserWithUsername(t, db, "alice")
		dup := models.User{Username: "alice", Password: "hash"}
		err := db.Create(&dup).Error
		if err == nil {
			t.Fatal("expected unique-index failure on duplicate insert")
		}
		if !isUniqueViolation(err) {
			t.Errorf("driver error not recognized as unique violation: %v", err)
		}
	})

	t.Run("empty_username", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("", "pw1")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("empty_password", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.CreateUser("alice", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserByUsername(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		created, err := svc.CreateUser("bob", "pw1")
		testutil.AssertNoError(t, err)

		user, err := svc.GetUserByUsername("bob")
		testutil.AssertNoError(t, err)
		if user.ID != created.ID {
			t.Errorf("expected user ID %d, got %d", created.ID, user.ID)
		}
	})

	t.Run("missing", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewUserService(db)

		_, err := svc.GetUserByUsername("nobody")
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}

func TestVerifyPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewUserService(db)

	user, err := svc.CreateUser("alice", "pw1")
	testutil.AssertNoError(t, err)

	// Signup then login with the same credentials succeeds
	if !svc.VerifyPassword(user, "pw1") {
		t.Error("expected correct password to verify")
	}
	if svc.VerifyPassword(user, "wrong") {
		t.Error("expected wrong password to fail")
	}
}
