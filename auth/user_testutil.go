package auth

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-MihirParmar/Enlighten/errors"
)

// TestUserRepository runs the conformance suite every UserRepository
// implementation must pass.
func TestUserRepository(t *testing.T, repo UserRepository) {
	users := []*User{
		{
			Name:         "Pizza",
			Email:        "pizza@enlighten.dev",
			PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		},
		{
			Name:     "Yolo",
			Email:    "yolo@enlighten.dev",
			GoogleID: "google-1234",
			GithubID: "github-5678",
		},
	}

	// Insert users
	testInsertUsers(t, repo, users)

	// Get users by id
	for i, user := range users {
		testGetUser(t, repo, user.ID, *user, fmt.Sprintf("get user %d", i))
	}

	// Get users by email and by provider id
	testGetUserByEmail(t, repo, users[0].Email, *users[0], "get by email")
	testGetUserByProviderID(t, repo, ProviderGoogle, "google-1234", *users[1], "get by google id")
	testGetUserByProviderID(t, repo, ProviderGithub, "github-5678", *users[1], "get by github id")

	// Unknown lookups return the zero user, not an error
	testGetUser(t, repo, 1e6, User{}, "get unknown id")
	testGetUserByEmail(t, repo, "nobody@enlighten.dev", User{}, "get unknown email")
	testGetUserByProviderID(t, repo, ProviderGoogle, "nope", User{}, "get unknown google id")

	// Inserting the same email twice must fail with a 400
	dup := User{Name: "Copycat", Email: users[0].Email, PasswordHash: "$2a$10$xxxxxxxxxxxxxxxxxxxxxx"}
	err := repo.Insert(&dup)
	if assert.Error(t, err, "inserting a duplicate email should fail") {
		errors.AssertCode(t, err, 400)
	}

	// Update an email, the old one should be released
	oldEmail := users[0].Email
	users[0].Email = "pizza@yolo.space"
	testUpdateUser(t, repo, users[0])
	testGetUserByEmail(t, repo, oldEmail, User{}, "old email released")
	testGetUserByEmail(t, repo, users[0].Email, *users[0], "new email indexed")

	// Link a provider id through update
	users[0].GoogleID = "google-9999"
	testUpdateUser(t, repo, users[0])
	testGetUserByProviderID(t, repo, ProviderGoogle, "google-9999", *users[0], "linked google id")

	// List returns everybody
	testListUsers(t, repo, users)

	// Delete releases the indexes
	err = repo.Delete(users[1].ID)
	require.NoError(t, err, "delete should not fail")
	testGetUser(t, repo, users[1].ID, User{}, "get after delete")
	testGetUserByProviderID(t, repo, ProviderGithub, "github-5678", User{}, "github id released")
}

func testInsertUsers(t *testing.T, repo UserRepository, users []*User) {
	ids := make([]int, len(users))
	for i, user := range users {
		err := repo.Insert(user)
		require.NoError(t, err, "insert %s must not fail", user.Name)
		require.NotEqual(t, 0, user.ID, "id must be set by insert")
		ids[i] = user.ID
	}

	// All the ids must be different
	sort.Ints(ids)
	for i := 0; i < len(ids)-1; i++ {
		require.NotEqual(t, ids[i], ids[i+1], "all ids must be different")
	}
}

func testGetUser(t *testing.T, repo UserRepository, id int, expected User, name string) {
	user, err := repo.Get(id)
	if assert.NoError(t, err, "%s - getting user should not fail", name) {
		assertUser(t, expected, user, name)
	}
}

func testGetUserByEmail(t *testing.T, repo UserRepository, email string, expected User, name string) {
	user, err := repo.GetByEmail(email)
	if assert.NoError(t, err, "%s - getting user by email should not fail", name) {
		assertUser(t, expected, user, name)
	}
}

func testGetUserByProviderID(t *testing.T, repo UserRepository, provider, providerID string, expected User, name string) {
	user, err := repo.GetByProviderID(provider, providerID)
	if assert.NoError(t, err, "%s - getting user by provider id should not fail", name) {
		assertUser(t, expected, user, name)
	}
}

func testUpdateUser(t *testing.T, repo UserRepository, user *User) {
	id := user.ID
	err := repo.Update(user)
	assert.NoError(t, err, "%s - update should not have failed", user.Name)
	assert.Equal(t, id, user.ID, "id should not change")
}

func testListUsers(t *testing.T, repo UserRepository, users []*User) {
	retrieved, err := repo.List()
	if !assert.NoError(t, err, "listing all users should not fail") {
		return
	}

	if !assert.Equal(t, len(users), len(retrieved), "incorrect number of users retrieved") {
		return
	}

	for _, user := range users {
		found := false
		for _, retrievedUser := range retrieved {
			if retrievedUser.ID == user.ID {
				found = true
				assertUser(t, *user, retrievedUser, fmt.Sprintf("all - %s", user.Name))
			}
		}
		if !found {
			assert.Fail(t, fmt.Sprintf("user %s not retrieved", user.Name))
		}
	}
}

func assertUser(t *testing.T, expected, actual User, name string) {
	assert.Equal(t, expected.ID, actual.ID, "%s - ids should be equal", name)
	assert.Equal(t, expected.Name, actual.Name, "%s - names should be equal", name)
	assert.Equal(t, expected.Email, actual.Email, "%s - emails should be equal", name)
	assert.Equal(t, expected.PasswordHash, actual.PasswordHash, "%s - password hashes should be equal", name)
	assert.Equal(t, expected.GoogleID, actual.GoogleID, "%s - google ids should be equal", name)
	assert.Equal(t, expected.GithubID, actual.GithubID, "%s - github ids should be equal", name)
}
