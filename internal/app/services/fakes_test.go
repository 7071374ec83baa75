package services

import (
	"context"
	"time"

	"github.com/seojun/meeplehub/internal/app/models"
)

// Hand-written fakes for the repository interfaces. Each method delegates
// to an optional function field so tests only wire what they use.

type fakeUserRepo struct {
	createFn              func(ctx context.Context, user *models.User) error
	getByIDFn             func(ctx context.Context, id int64) (*models.User, error)
	getByUsernameFn       func(ctx context.Context, username string) (*models.User, error)
	getByEmailFn          func(ctx context.Context, email string) (*models.User, error)
	usernameExistsFn      func(ctx context.Context, username string) (bool, error)
	emailExistsFn         func(ctx context.Context, email string) (bool, error)
	nicknameExistsFn      func(ctx context.Context, nickname string) (bool, error)
	nicknameHeldByOtherFn func(ctx context.Context, nickname string, userID int64) (bool, error)
	updateProfileFn       func(ctx context.Context, user *models.User) error
	updatePasswordFn      func(ctx context.Context, email, passwordHash string) error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return f.getByUsernameFn(ctx, username)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.getByEmailFn(ctx, email)
}

func (f *fakeUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	return f.usernameExistsFn(ctx, username)
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return f.emailExistsFn(ctx, email)
}

func (f *fakeUserRepo) NicknameExists(ctx context.Context, nickname string) (bool, error) {
	return f.nicknameExistsFn(ctx, nickname)
}

func (f *fakeUserRepo) NicknameHeldByOther(ctx context.Context, nickname string, userID int64) (bool, error) {
	return f.nicknameHeldByOtherFn(ctx, nickname, userID)
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, user *models.User) error {
	return f.updateProfileFn(ctx, user)
}

func (f *fakeUserRepo) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	return f.updatePasswordFn(ctx, email, passwordHash)
}

type fakeResetTokenRepo struct {
	createFn           func(ctx context.Context, email, token string, expiryTime time.Time) error
	getLatestValidFn   func(ctx context.Context, email, token string) (*models.PasswordResetToken, error)
	markUsedFn         func(ctx context.Context, id int64) error
	hasVerifiedTokenFn func(ctx context.Context, email string) (bool, error)
	deleteByEmailFn    func(ctx context.Context, email string) error
	deleteExpiredFn    func(ctx context.Context) error
}

func (f *fakeResetTokenRepo) Create(ctx context.Context, email, token string, expiryTime time.Time) error {
	return f.createFn(ctx, email, token, expiryTime)
}

func (f *fakeResetTokenRepo) GetLatestValid(ctx context.Context, email, token string) (*models.PasswordResetToken, error) {
	return f.getLatestValidFn(ctx, email, token)
}

func (f *fakeResetTokenRepo) MarkUsed(ctx context.Context, id int64) error {
	return f.markUsedFn(ctx, id)
}

func (f *fakeResetTokenRepo) HasVerifiedToken(ctx context.Context, email string) (bool, error) {
	return f.hasVerifiedTokenFn(ctx, email)
}

func (f *fakeResetTokenRepo) DeleteByEmail(ctx context.Context, email string) error {
	return f.deleteByEmailFn(ctx, email)
}

func (f *fakeResetTokenRepo) DeleteExpired(ctx context.Context) error {
	if f.deleteExpiredFn == nil {
		return nil
	}
	return f.deleteExpiredFn(ctx)
}

type fakeTokenRepo struct {
	createFn        func(ctx context.Context, token string, userID int64, expiryDate time.Time) error
	getByValueFn    func(ctx context.Context, token string) (*models.RefreshToken, error)
	revokeFn        func(ctx context.Context, token string) error
	deleteExpiredFn func(ctx context.Context) error
}

func (f *fakeTokenRepo) Create(ctx context.Context, token string, userID int64, expiryDate time.Time) error {
	if f.createFn == nil {
		return nil
	}
	return f.createFn(ctx, token, userID, expiryDate)
}

func (f *fakeTokenRepo) GetByValue(ctx context.Context, token string) (*models.RefreshToken, error) {
	return f.getByValueFn(ctx, token)
}

func (f *fakeTokenRepo) Revoke(ctx context.Context, token string) error {
	return f.revokeFn(ctx, token)
}

func (f *fakeTokenRepo) DeleteExpired(ctx context.Context) error {
	if f.deleteExpiredFn == nil {
		return nil
	}
	return f.deleteExpiredFn(ctx)
}

type fakePostRepo struct {
	createFn                    func(ctx context.Context, post *models.Post) error
	getAllFn                    func(ctx context.Context, category string) ([]*models.Post, error)
	getByIDFn                   func(ctx context.Context, id int64) (*models.Post, error)
	getDetailAndIncrementViewFn func(ctx context.Context, id int64) (*models.Post, error)
	updateFn                    func(ctx context.Context, id int64, title, content string) error
	deleteFn                    func(ctx context.Context, id int64) error
	getCommentCountsFn          func(ctx context.Context, postIDs []int64) (map[int64]int, error)
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	return f.createFn(ctx, post)
}

func (f *fakePostRepo) GetAll(ctx context.Context, category string) ([]*models.Post, error) {
	return f.getAllFn(ctx, category)
}

func (f *fakePostRepo) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakePostRepo) GetDetailAndIncrementView(ctx context.Context, id int64) (*models.Post, error) {
	return f.getDetailAndIncrementViewFn(ctx, id)
}

func (f *fakePostRepo) Update(ctx context.Context, id int64, title, content string) error {
	return f.updateFn(ctx, id, title, content)
}

func (f *fakePostRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

func (f *fakePostRepo) GetCommentCountsByPostIDs(ctx context.Context, postIDs []int64) (map[int64]int, error) {
	return f.getCommentCountsFn(ctx, postIDs)
}

type fakeCommentRepo struct {
	createFn      func(ctx context.Context, comment *models.Comment) error
	getByPostIDFn func(ctx context.Context, postID int64) ([]*models.Comment, error)
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	return f.createFn(ctx, comment)
}

func (f *fakeCommentRepo) GetByPostID(ctx context.Context, postID int64) ([]*models.Comment, error) {
	return f.getByPostIDFn(ctx, postID)
}

type fakeBoardGameRepo struct {
	getAllFn  func(ctx context.Context) ([]*models.BoardGame, error)
	getByIDFn func(ctx context.Context, id int64) (*models.BoardGame, error)
	searchFn  func(ctx context.Context, query, category string) ([]*models.BoardGame, error)
	countFn   func(ctx context.Context) (int, error)
	insertFn  func(ctx context.Context, game *models.BoardGame) error
}

func (f *fakeBoardGameRepo) GetAll(ctx context.Context) ([]*models.BoardGame, error) {
	return f.getAllFn(ctx)
}

func (f *fakeBoardGameRepo) GetByID(ctx context.Context, id int64) (*models.BoardGame, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeBoardGameRepo) Search(ctx context.Context, query, category string) ([]*models.BoardGame, error) {
	return f.searchFn(ctx, query, category)
}

func (f *fakeBoardGameRepo) Count(ctx context.Context) (int, error) {
	return f.countFn(ctx)
}

func (f *fakeBoardGameRepo) Insert(ctx context.Context, game *models.BoardGame) error {
	return f.insertFn(ctx, game)
}

type fakeGameReviewRepo struct {
	getByGameIDFn               func(ctx context.Context, gameID int64) ([]*models.GameReview, error)
	createAndRecomputeAverageFn func(ctx context.Context, review *models.GameReview) error
}

func (f *fakeGameReviewRepo) GetByGameID(ctx context.Context, gameID int64) ([]*models.GameReview, error) {
	return f.getByGameIDFn(ctx, gameID)
}

func (f *fakeGameReviewRepo) CreateAndRecomputeAverage(ctx context.Context, review *models.GameReview) error {
	return f.createAndRecomputeAverageFn(ctx, review)
}

type fakeMeetingRepo struct {
	createWithHostFn func(ctx context.Context, meeting *models.Meeting) error
	getAllFn         func(ctx context.Context) ([]*models.Meeting, error)
	getByIDFn        func(ctx context.Context, id int64) (*models.Meeting, error)
	deleteFn         func(ctx context.Context, id int64) error
}

func (f *fakeMeetingRepo) CreateWithHost(ctx context.Context, meeting *models.Meeting) error {
	return f.createWithHostFn(ctx, meeting)
}

func (f *fakeMeetingRepo) GetAll(ctx context.Context) ([]*models.Meeting, error) {
	return f.getAllFn(ctx)
}

func (f *fakeMeetingRepo) GetByID(ctx context.Context, id int64) (*models.Meeting, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeMeetingRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteFn(ctx, id)
}

type fakeParticipantRepo struct {
	isParticipantFn    func(ctx context.Context, meetingID, userID int64) (bool, error)
	countByMeetingIDFn func(ctx context.Context, meetingID int64) (int, error)
	getCountsFn        func(ctx context.Context, meetingIDs []int64) (map[int64]int, error)
	addParticipantFn   func(ctx context.Context, meetingID, userID int64, maxParticipants int) error
}

func (f *fakeParticipantRepo) IsParticipant(ctx context.Context, meetingID, userID int64) (bool, error) {
	return f.isParticipantFn(ctx, meetingID, userID)
}

func (f *fakeParticipantRepo) CountByMeetingID(ctx context.Context, meetingID int64) (int, error) {
	return f.countByMeetingIDFn(ctx, meetingID)
}

func (f *fakeParticipantRepo) GetCountsByMeetingIDs(ctx context.Context, meetingIDs []int64) (map[int64]int, error) {
	return f.getCountsFn(ctx, meetingIDs)
}

func (f *fakeParticipantRepo) AddParticipant(ctx context.Context, meetingID, userID int64, maxParticipants int) error {
	return f.addParticipantFn(ctx, meetingID, userID, maxParticipants)
}

type fakeEmailService struct {
	sentTo   []string
	sentCode []string
	err      error
}

func (f *fakeEmailService) SendPasswordResetEmail(toEmail, code string) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = append(f.sentTo, toEmail)
	f.sentCode = append(f.sentCode, code)
	return nil
}
