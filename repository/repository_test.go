package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/camden-git/moodmatebackend/models"
	"github.com/camden-git/moodmatebackend/repository"
	"github.com/camden-git/moodmatebackend/testutil"
)

func createUser(t *testing.T, repo repository.UserRepository, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Ibu", Email: email, Role: "Orang Tua"}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, repo.Create(user))
	return user
}

func createProfile(t *testing.T, repo repository.ChildProfileRepository, userID uint, name string) *models.ChildProfile {
	t.Helper()
	profile := &models.ChildProfile{UserID: userID, Name: name, Age: 6, Avatar: 1}
	require.NoError(t, repo.Create(profile))
	return profile
}

func TestUserRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := repository.NewGormUserRepository(db)

	user := createUser(t, users, "ibu@example.com")
	assert.NotZero(t, user.ID)
	assert.False(t, user.IsOnboarded)

	found, err := users.GetByEmail("ibu@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.True(t, found.CheckPassword("password123"))
	assert.False(t, found.CheckPassword("wrong"))

	exists, err := users.ExistsByEmail("ibu@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = users.ExistsByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = users.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = users.Create(&models.User{Name: "Dup", Email: "ibu@example.com", Role: "x", PasswordHash: "h"})
	assert.Error(t, err)

	updated, err := users.MarkOnboarded(user.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsOnboarded)

	// idempotent
	updated, err = users.MarkOnboarded(user.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsOnboarded)

	_, err = users.MarkOnboarded(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestChildProfileRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := repository.NewGormUserRepository(db)
	profiles := repository.NewGormChildProfileRepository(db)

	owner := createUser(t, users, "a@example.com")
	other := createUser(t, users, "b@example.com")

	first := createProfile(t, profiles, owner.ID, "Zaki")
	createProfile(t, profiles, owner.ID, "Ayu")
	createProfile(t, profiles, other.ID, "Budi")

	got, err := profiles.GetByID(first.ID)
	require.NoError(t, err)
	assert.True(t, got.OwnedBy(owner.ID))
	assert.False(t, got.OwnedBy(other.ID))

	list, err := profiles.ListByUserID(owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Zaki", list[0].Name)
	assert.Equal(t, "Ayu", list[1].Name)

	_, err = profiles.GetByID(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestEmotionRecordRepositoryListInRange(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := repository.NewGormUserRepository(db)
	profiles := repository.NewGormChildProfileRepository(db)
	emotions := repository.NewGormEmotionRecordRepository(db)

	owner := createUser(t, users, "a@example.com")
	profile := createProfile(t, profiles, owner.ID, "Ayu")

	base := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	seed := []models.EmotionRecord{
		{ChildProfileID: profile.ID, Emotion: "senang", DetectionType: models.DetectionManual, CreatedAt: base},
		{ChildProfileID: profile.ID, Emotion: "unknown", DetectionType: models.DetectionCamera, CreatedAt: base.Add(time.Hour)},
		{ChildProfileID: profile.ID, Emotion: "marah", DetectionType: models.DetectionCamera, CreatedAt: base.Add(24 * time.Hour)},
		{ChildProfileID: profile.ID, Emotion: "sedih", DetectionType: models.DetectionManual, CreatedAt: base.Add(72 * time.Hour)},
	}
	for i := range seed {
		require.NoError(t, emotions.Create(&seed[i]))
	}

	all, err := emotions.ListInRange(profile.ID, repository.EmotionRange{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "senang", all[0].Emotion)
	assert.Equal(t, "marah", all[1].Emotion)
	assert.Equal(t, "sedih", all[2].Emotion)

	start := base.Add(-time.Minute)
	end := base.Add(48 * time.Hour)
	ranged, err := emotions.ListInRange(profile.ID, repository.EmotionRange{Start: &start, End: &end})
	require.NoError(t, err)
	require.Len(t, ranged, 2)
	assert.Equal(t, "senang", ranged[0].Emotion)
	assert.Equal(t, "marah", ranged[1].Emotion)
	assert.True(t, ranged[0].CreatedAt.Equal(base))

	// bounds given in another zone still select the same instants
	wib := time.FixedZone("WIB", 7*3600)
	startWIB := base.Add(24 * time.Hour).In(wib)
	tail, err := emotions.ListInRange(profile.ID, repository.EmotionRange{Start: &startWIB})
	require.NoError(t, err)
	require.Len(t, tail, 2)
	assert.Equal(t, "marah", tail[0].Emotion)

	newest, err := emotions.ListByChildProfileID(profile.ID)
	require.NoError(t, err)
	require.Len(t, newest, 4)
	assert.Equal(t, "sedih", newest[0].Emotion)
}

func TestExpressionRecordRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := repository.NewGormUserRepository(db)
	profiles := repository.NewGormChildProfileRepository(db)
	records := repository.NewGormExpressionRecordRepository(db)

	owner := createUser(t, users, "a@example.com")
	profile := createProfile(t, profiles, owner.ID, "Ayu")
	second := createProfile(t, profiles, owner.ID, "Bima")

	record := &models.ExpressionRecord{UserID: owner.ID, ChildProfileID: profile.ID, Title: "Pagi", Text: "Bangun ceria"}
	require.NoError(t, records.Create(record))

	record.Title = "Siang"
	record.Text = "Tidur siang"
	record.ChildProfileID = second.ID
	before := record.UpdatedAt
	require.NoError(t, records.Update(record))
	assert.False(t, record.UpdatedAt.Before(before))

	got, err := records.GetByID(record.ID)
	require.NoError(t, err)
	assert.Equal(t, "Siang", got.Title)
	assert.Equal(t, "Tidur siang", got.Text)
	assert.Equal(t, second.ID, got.ChildProfileID)

	list, err := records.ListByChildProfile(owner.ID, second.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = records.ListByChildProfile(owner.ID, profile.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, records.Delete(record.ID))
	assert.ErrorIs(t, records.Delete(record.ID), gorm.ErrRecordNotFound)
	assert.ErrorIs(t, records.Update(record), gorm.ErrRecordNotFound)
}

func TestCarePlanRepository(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := repository.NewGormUserRepository(db)
	profiles := repository.NewGormChildProfileRepository(db)
	plans := repository.NewGormCarePlanRepository(db)

	owner := createUser(t, users, "a@example.com")
	profile := createProfile(t, profiles, owner.ID, "Ayu")

	for _, kind := range []repository.CarePlanKind{
		repository.CopingStrategies,
		repository.MoodTriggers,
		repository.SensoryPreferences,
	} {
		t.Run(string(kind), func(t *testing.T) {
			require.NoError(t, plans.CreateMany(kind, profile.ID, []string{"Hitung 10", "Hitung 2", "Pelukan"}))

			items, err := plans.List(kind, profile.ID)
			require.NoError(t, err)
			require.Len(t, items, 3)
			assert.Equal(t, "Hitung 2", items[0].Value)
			assert.Equal(t, "Hitung 10", items[1].Value)
			assert.Equal(t, "Pelukan", items[2].Value)
			assert.Equal(t, profile.ID, items[0].ChildProfileID)
			assert.False(t, items[0].CreatedAt.IsZero())
		})
	}

	// a missing profile violates the foreign key and nothing is written
	err := plans.CreateMany(repository.CopingStrategies, 9999, []string{"a", "b"})
	assert.Error(t, err)
	items, err := plans.List(repository.CopingStrategies, 9999)
	require.NoError(t, err)
	assert.Empty(t, items)

	assert.Error(t, plans.CreateMany("bogus", profile.ID, []string{"a"}))
}
