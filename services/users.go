package services

import (
	"strings"
	"time"

	"eduportal/config"
	"eduportal/models"
	"eduportal/notify"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Name     string `json:"name" validate:"required,notblank,min=2,max=80"`
	LastName string `json:"last_name" validate:"max=80"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type CreateUserInput struct {
	RegisterInput
	Role string `json:"role" validate:"required,oneof=admin teacher student"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

type UpdateUserInput struct {
	Name     string `json:"name" validate:"omitempty,notblank,min=2,max=80"`
	LastName string `json:"last_name" validate:"max=80"`
	Email    string `json:"email" validate:"omitempty,email"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
	Bio      string `json:"bio" validate:"max=2000"`
	Role     string `json:"role" validate:"omitempty,oneof=admin teacher student"`
}

type UserFilter struct {
	Role   string `query:"role" validate:"omitempty,oneof=admin teacher student"`
	Search string `query:"search"`
}

func hashPassword(password string) (string, error) {
	cost := bcrypt.DefaultCost
	if config.AppConfig != nil && config.AppConfig.SaltRound > 0 {
		cost = config.AppConfig.SaltRound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(hash), errors.Wrap(err, "hashing password")
}

func emailTaken(email string, excludeID uint) (bool, error) {
	return taken(&models.User{}, excludeID, "email = ?", normalizeName(email))
}

// Register creates a student account and sends a welcome mail.
func Register(in RegisterInput) (*models.User, error) {
	user, err := createUser(in, models.RoleStudent)
	if err != nil {
		return nil, err
	}
	go notify.Current.Welcome(user.Name, user.Email)
	return user, nil
}

// CreateUser lets an admin create an account with any role.
func CreateUser(in CreateUserInput) (*models.User, error) {
	return createUser(in.RegisterInput, in.Role)
}

func createUser(in RegisterInput, role string) (*models.User, error) {
	exists, err := emailTaken(in.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, Conflict("Email is already registered!")
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     strings.TrimSpace(in.Name),
		LastName: strings.TrimSpace(in.LastName),
		Email:    normalizeName(in.Email),
		Password: hash,
		Role:     role,
	}
	if err := db().Create(&user).Error; err != nil {
		return nil, errors.Wrap(err, "creating user")
	}
	return &user, nil
}

// Login checks the credentials and records the login time.
func Login(in LoginInput) (*models.User, error) {
	var user models.User
	err := db().Where("email = ?", normalizeName(in.Email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, Unauthorized("Invalid credentials!")
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, Unauthorized("Invalid credentials!")
	}

	now := time.Now()
	user.LastLogin = &now
	if err := db().Model(&user).Update("last_login", now).Error; err != nil {
		return nil, errors.Wrap(err, "saving last login")
	}
	return &user, nil
}

// ChangePassword replaces the password after checking the current one.
func ChangePassword(actor *models.User, in ChangePasswordInput) error {
	if err := bcrypt.CompareHashAndPassword([]byte(actor.Password), []byte(in.CurrentPassword)); err != nil {
		return Unauthorized("Current password is incorrect!")
	}
	hash, err := hashPassword(in.NewPassword)
	if err != nil {
		return err
	}
	actor.Password = hash
	return errors.Wrap(db().Model(actor).Update("password", hash).Error, "saving password")
}

// FindUser loads a live user by id.
func FindUser(id uint) (*models.User, error) {
	var user models.User
	if err := first(&user, id, "User"); err != nil {
		return nil, err
	}
	return &user, nil
}

func ListUsers(f UserFilter, p Page) ([]models.User, Pagination, error) {
	q := db().Model(&models.User{})
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if f.Search != "" {
		pattern := likePattern(f.Search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(last_name) LIKE ? OR email LIKE ?", pattern, pattern, pattern)
	}

	var users []models.User
	pg, err := paginate(q, p, "created_at desc", &users)
	return users, pg, err
}

// UpdateUser lets a user edit their own profile; only admins may edit others or change roles.
func UpdateUser(actor *models.User, id uint, in UpdateUserInput) (*models.User, error) {
	if actor.ID != id && !actor.IsAdmin() {
		return nil, errNotAllowed
	}
	user, err := FindUser(id)
	if err != nil {
		return nil, err
	}

	if in.Email != "" && normalizeName(in.Email) != user.Email {
		exists, err := emailTaken(in.Email, user.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, Conflict("Email is already registered!")
		}
		user.Email = normalizeName(in.Email)
	}
	if in.Role != "" && in.Role != user.Role {
		if !actor.IsAdmin() {
			return nil, Forbidden("Only admins can change roles!")
		}
		user.Role = in.Role
	}

	// Update only provided fields
	if in.Name != "" {
		user.Name = strings.TrimSpace(in.Name)
	}
	if in.LastName != "" {
		user.LastName = strings.TrimSpace(in.LastName)
	}
	if in.Avatar != "" {
		user.Avatar = in.Avatar
	}
	if in.Bio != "" {
		user.Bio = in.Bio
	}

	if err := db().Save(user).Error; err != nil {
		return nil, errors.Wrap(err, "updating user")
	}
	return user, nil
}

func DeleteUser(actor *models.User, id uint) error {
	if actor.ID == id {
		return BadRequest("You cannot delete your own account!")
	}
	user, err := FindUser(id)
	if err != nil {
		return err
	}
	return errors.Wrap(db().Delete(user).Error, "deleting user")
}
