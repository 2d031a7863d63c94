package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cppla/inkpost/models"
	"gorm.io/gorm"
)

const userColumns = "users.id, users.name, users.email, users.biography, users.created_at, users.updated_at"

// UserUpdate carries the optional fields of a partial profile update.
// Password must already be hashed.
type UserUpdate struct {
	Name      *string
	Email     *string
	Biography *string
	Password  *string
}

// Stats are the global row counts served by /stats.
type Stats struct {
	Users    int64 `json:"users"`
	Articles int64 `json:"articles"`
	Likes    int64 `json:"likes"`
	Follows  int64 `json:"follows"`
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// withCounts selects the public user columns plus articles written, articles liked and followers.
func (s *UserService) withCounts(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Table("users").
		Select(userColumns+", COALESCE(ac.n, 0) AS articles, COALESCE(fc.n, 0) AS favorites, COALESCE(fl.n, 0) AS followers").
		Joins("LEFT JOIN (SELECT user_id, COUNT(*) AS n FROM articles GROUP BY user_id) ac ON ac.user_id = users.id").
		Joins("LEFT JOIN (SELECT user_id, COUNT(*) AS n FROM likes GROUP BY user_id) fc ON fc.user_id = users.id").
		Joins("LEFT JOIN (SELECT followed_id, COUNT(*) AS n FROM followers GROUP BY followed_id) fl ON fl.followed_id = users.id")
}

// Create inserts u. The caller hashes the password and pre-checks the email;
// a lost registration race still surfaces as ErrEmailTaken.
func (s *UserService) Create(ctx context.Context, u *models.User) (*models.User, error) {
	u.Email = strings.TrimSpace(u.Email)
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// FindByID returns the user with derived counts, never the password.
func (s *UserService) FindByID(ctx context.Context, id string) (*models.UserView, error) {
	var view models.UserView
	res := s.withCounts(ctx).Where("users.id = ?", id).Limit(1).Scan(&view)
	if res.Error != nil {
		return nil, fmt.Errorf("find user %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrUserNotFound
	}
	return &view, nil
}

// Exists is a cheap existence probe used by nested routes.
func (s *UserService) Exists(ctx context.Context, id string) (bool, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check user %s: %w", id, err)
	}
	return n > 0, nil
}

// FindByEmail returns the raw row including the password hash, for login.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.TrimSpace(email)).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

// EmailTaken reports whether another user already owns email. exceptID may be empty.
func (s *UserService) EmailTaken(ctx context.Context, email, exceptID string) (bool, error) {
	q := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", strings.TrimSpace(email))
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return n > 0, nil
}

func (s *UserService) FindAndCountAll(ctx context.Context, f UserFilters) (Page[models.UserView], error) {
	return s.list(ctx, f, nil)
}

// ListFollowers pages through the users following userID.
func (s *UserService) ListFollowers(ctx context.Context, userID string, f UserFilters) (Page[models.UserView], error) {
	return s.list(ctx, f, func(db *gorm.DB) *gorm.DB {
		return db.Joins("INNER JOIN followers fe ON fe.follower_id = users.id").Where("fe.followed_id = ?", userID)
	})
}

// ListFollowing pages through the users userID follows.
func (s *UserService) ListFollowing(ctx context.Context, userID string, f UserFilters) (Page[models.UserView], error) {
	return s.list(ctx, f, func(db *gorm.DB) *gorm.DB {
		return db.Joins("INNER JOIN followers fe ON fe.followed_id = users.id").Where("fe.follower_id = ?", userID)
	})
}

func (s *UserService) list(ctx context.Context, f UserFilters, scope func(*gorm.DB) *gorm.DB) (Page[models.UserView], error) {
	page := emptyPage[models.UserView]()
	scopes := []func(*gorm.DB) *gorm.DB{matchAny(f.Find, "users.name", "users.email")}
	if scope != nil {
		scopes = append(scopes, scope)
	}

	if err := s.db.WithContext(ctx).Table("users").Scopes(scopes...).Count(&page.Count).Error; err != nil {
		return page, fmt.Errorf("count users: %w", err)
	}
	if page.Count == 0 {
		return page, nil
	}

	err := s.withCounts(ctx).
		Scopes(scopes...).
		Order(orderBy("users.name", f.Order)).
		Order("users.id ASC").
		Scopes(paginate(f.Pagination)).
		Scan(&page.Rows).Error
	if err != nil {
		return page, fmt.Errorf("list users: %w", err)
	}
	if page.Rows == nil {
		page.Rows = []models.UserView{}
	}
	return page, nil
}

// Update applies the non-nil fields of upd and returns the refreshed view.
func (s *UserService) Update(ctx context.Context, id string, upd UserUpdate) (*models.UserView, error) {
	fields := map[string]interface{}{}
	if upd.Name != nil {
		fields["name"] = *upd.Name
	}
	if upd.Email != nil {
		fields["email"] = strings.TrimSpace(*upd.Email)
	}
	if upd.Biography != nil {
		fields["biography"] = *upd.Biography
	}
	if upd.Password != nil {
		fields["password"] = *upd.Password
	}
	if len(fields) > 0 {
		err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			if isDuplicateKey(err) {
				return nil, ErrEmailTaken
			}
			return nil, fmt.Errorf("update user %s: %w", id, err)
		}
	}
	return s.FindByID(ctx, id)
}

// DeleteByID removes the user; articles, likes and follow edges go with it through ON DELETE CASCADE.
func (s *UserService) DeleteByID(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.User{})
	if res.Error != nil {
		return fmt.Errorf("delete user %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// CreateFollow records that followerID follows followedID.
func (s *UserService) CreateFollow(ctx context.Context, followerID, followedID string) (*models.Follower, error) {
	if followerID == followedID {
		return nil, ErrSelfFollow
	}
	edge := &models.Follower{FollowerID: followerID, FollowedID: followedID}
	if err := s.db.WithContext(ctx).Create(edge).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrAlreadyFollowing
		}
		return nil, fmt.Errorf("create follow: %w", err)
	}
	return edge, nil
}

// Unfollow deletes the edge if present.
func (s *UserService) Unfollow(ctx context.Context, followedID, followerID string) error {
	err := s.db.WithContext(ctx).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follower{}).Error
	if err != nil {
		return fmt.Errorf("unfollow: %w", err)
	}
	return nil
}

func (s *UserService) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	db := s.db.WithContext(ctx)
	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.User{}, &st.Users},
		{&models.Article{}, &st.Articles},
		{&models.Like{}, &st.Likes},
		{&models.Follower{}, &st.Follows},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dst).Error; err != nil {
			return st, fmt.Errorf("stats: %w", err)
		}
	}
	return st, nil
}
