package services

import (
	"errors"

	"github.com/sideforge/backend/internal/apperr"
	"github.com/sideforge/backend/internal/dto"
	"github.com/sideforge/backend/internal/models"
	"github.com/sideforge/backend/pkg/utils"
	"gorm.io/gorm"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

var customerSortColumns = map[string]string{
	"id":                "id",
	"username":          "username",
	"email":             "email",
	"role":              "role",
	"preferredLanguage": "preferred_language",
	"isVerified":        "is_verified",
}

func (s *CustomerService) Create(req dto.CustomerCreateRequest) (dto.CustomerResponse, error) {
	var customer models.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := ensureUniqueCredentials(tx, req.Username, req.Email, 0); err != nil {
			return err
		}
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return err
		}

		role := models.RoleCustomer
		if req.Role != "" {
			role = models.Role(req.Role)
		}

		customer = models.User{
			Kind:              models.KindCustomer,
			Username:          req.Username,
			Email:             req.Email,
			PasswordHash:      hash,
			Role:              role,
			ProfileImageURL:   req.ProfileImageURL,
			PreferredLanguage: toLanguage(req.PreferredLanguage),
			IsVerified:        req.IsVerified,
		}
		return tx.Create(&customer).Error
	})
	if err != nil {
		return dto.CustomerResponse{}, err
	}
	return dto.CustomerToResponse(&customer), nil
}

func (s *CustomerService) GetByID(id uint) (dto.CustomerResponse, error) {
	customer, err := s.findCustomer(s.DB, id)
	if err != nil {
		return dto.CustomerResponse{}, err
	}
	return dto.CustomerToResponse(customer), nil
}

func (s *CustomerService) List() ([]dto.CustomerResponse, error) {
	var customers []models.User
	if err := s.DB.Where("kind = ?", models.KindCustomer).Find(&customers).Error; err != nil {
		return nil, err
	}
	return dto.CustomersToResponses(customers), nil
}

func (s *CustomerService) Update(id uint, req dto.CustomerUpdateRequest) (dto.CustomerResponse, error) {
	var customer *models.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		customer, err = s.findCustomer(tx, id)
		if err != nil {
			return err
		}
		if err := ensureUniqueCredentials(tx, req.Username, req.Email, id); err != nil {
			return err
		}

		customer.Username = req.Username
		customer.Email = req.Email
		customer.Role = models.Role(req.Role)
		if err := applyPassword(customer, req.Password); err != nil {
			return err
		}
		customer.ProfileImageURL = req.ProfileImageURL
		customer.PreferredLanguage = toLanguage(req.PreferredLanguage)
		customer.IsVerified = req.IsVerified
		return tx.Save(customer).Error
	})
	if err != nil {
		return dto.CustomerResponse{}, err
	}
	return dto.CustomerToResponse(customer), nil
}

func (s *CustomerService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		customer, err := s.findCustomer(tx, id)
		if err != nil {
			return err
		}
		return deleteUserCascade(tx, customer.ID)
	})
}

func (s *CustomerService) Page(q utils.PageQuery) (utils.PageResponse, error) {
	query := s.DB.Model(&models.User{}).Where("kind = ?", models.KindCustomer)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return utils.PageResponse{}, err
	}
	var customers []models.User
	if err := utils.ApplyPage(query, q, customerSortColumns).Find(&customers).Error; err != nil {
		return utils.PageResponse{}, err
	}
	return utils.NewPage(dto.CustomersToResponses(customers), q, total), nil
}

func (s *CustomerService) findCustomer(tx *gorm.DB, id uint) (*models.User, error) {
	var customer models.User
	err := tx.Where("kind = ?", models.KindCustomer).First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Customer not found with id: %d", id)
		}
		return nil, err
	}
	return &customer, nil
}

func toLanguage(value *string) *models.PreferredLanguage {
	if value == nil {
		return nil
	}
	language := models.PreferredLanguage(*value)
	return &language
}
