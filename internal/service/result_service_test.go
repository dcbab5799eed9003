package service

import (
	"errors"
	"os"
	"testing"

	"career_path_backend/internal/model"
	"career_path_backend/internal/util"
	"career_path_backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// fakeResultStore keeps created results in memory and scopes lookups to
// the owner the way the GORM repository does.
type fakeResultStore struct {
	created []model.TestResult
}

func (f *fakeResultStore) Create(result *model.TestResult) error {
	f.created = append(f.created, *result)
	return nil
}

func (f *fakeResultStore) FindByUser(userID uint, limit int) ([]model.TestResult, error) {
	return nil, nil
}

func (f *fakeResultStore) FindByIDAndUser(id string, userID uint) (*model.TestResult, error) {
	for i := range f.created {
		if f.created[i].ID == id && f.created[i].UserID == userID {
			return &f.created[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeResultStore) DeleteByIDAndUser(id string, userID uint) error {
	if _, err := f.FindByIDAndUser(id, userID); err != nil {
		return err
	}
	return nil
}

func (f *fakeResultStore) SetShared(id string, userID uint, shared bool) (*model.TestResult, error) {
	return f.FindByIDAndUser(id, userID)
}

func (f *fakeResultStore) FindSharedByID(id string) (*model.TestResult, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeResultStore) FindSharedByTest(testID string, limit int) ([]model.TestResult, error) {
	return nil, nil
}

func (f *fakeResultStore) FindByUserAndTest(userID uint, testID string) ([]model.TestResult, error) {
	return nil, nil
}

func (f *fakeResultStore) FindByTest(testID string, limit int) ([]model.TestResult, error) {
	return nil, nil
}

func (f *fakeResultStore) FindByCategory(category string, limit int) ([]model.TestResult, error) {
	return nil, nil
}

type fakeCatalog struct {
	test       *model.Test
	incErr     error
	increments int
}

func (f *fakeCatalog) FindActiveByID(id string) (*model.Test, error) {
	if f.test == nil || f.test.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.test, nil
}

func (f *fakeCatalog) IncrementCompletedCount(id string) error {
	f.increments++
	return f.incErr
}

type fakeAccounts struct{}

func (fakeAccounts) FindByID(id uint) (*model.User, error) { return nil, gorm.ErrRecordNotFound }

func (fakeAccounts) FindByIDs(ids []uint) ([]model.User, error) { return nil, nil }

type fakeFeedback struct{}

func (fakeFeedback) Upsert(fb *model.ResultFeedback) error { return nil }

func newFakeResultService(store *fakeResultStore, catalog *fakeCatalog) *ResultService {
	return NewResultService(store, catalog, fakeAccounts{}, fakeFeedback{}, nil, "http://localhost:3000")
}

func TestSubmitSurvivesCounterFailure(t *testing.T) {
	store := &fakeResultStore{}
	catalog := &fakeCatalog{
		test:   orientationTest(),
		incErr: errors.New("counter table locked"),
	}
	svc := newFakeResultService(store, catalog)

	result, err := svc.Submit(7, "career_orientation_basic", &SubmitRequest{
		TestID: "career_orientation_basic",
		Answers: map[string]model.AnswerSubmission{
			"q1": {AnswerID: "a1"},
			"q2": {Value: 4},
		},
		TimeTaken: 120,
	})

	// The counter bump is best-effort: its failure never fails the
	// submission, which still persists the recomputed score.
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.increments)
	assert.Equal(t, 9, result.TotalScore)
	require.Len(t, store.created, 1)
	assert.Equal(t, uint(7), store.created[0].UserID)
}

func TestSubmitRejectsTestIDMismatch(t *testing.T) {
	svc := newFakeResultService(&fakeResultStore{}, &fakeCatalog{test: orientationTest()})

	_, err := svc.Submit(7, "career_orientation_basic", &SubmitRequest{
		TestID:  "it_skills_assessment",
		Answers: map[string]model.AnswerSubmission{},
	})

	assert.ErrorIs(t, err, util.ErrTestIDMismatch)
}

func TestUserResultForeignOwnerReadsAsMissing(t *testing.T) {
	store := &fakeResultStore{created: []model.TestResult{
		func() model.TestResult {
			r := model.TestResult{UserID: 1, TestID: "career_orientation_basic", TotalScore: 9}
			r.ID = "res-1"
			return r
		}(),
	}}
	svc := newFakeResultService(store, &fakeCatalog{test: orientationTest()})

	owned, err := svc.UserResult("res-1", 1)
	require.NoError(t, err)
	assert.Equal(t, 9, owned.TotalScore)

	// Someone else's id comes back as not-found, never as forbidden.
	_, err = svc.UserResult("res-1", 2)
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.NotErrorIs(t, err, util.ErrForbidden)

	err = svc.DeleteResult("res-1", 2)
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.NotErrorIs(t, err, util.ErrForbidden)
}
