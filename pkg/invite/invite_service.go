package invite

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"Bar-Management-SaaS/domain"
	"Bar-Management-SaaS/entities"
	"Bar-Management-SaaS/internal/utils"
	"Bar-Management-SaaS/internal/utils/mailing"
	"Bar-Management-SaaS/pkg/jwt"
)

const defaultInviteTTL = 7 * 24 * time.Hour

type (
	InviteService interface {
		CreateInvite(ctx context.Context, req domain.CreateInviteRequest, inviterID string, storeID string) (*domain.InviteResponse, error)
		GetInvites(ctx context.Context, storeID string) ([]*domain.InviteResponse, error)
		UseInvite(ctx context.Context, req domain.UseInviteRequest) (*domain.LoginResponse, error)
	}

	inviteService struct {
		inviteRepository InviteRepository
		jwtService       jwt.JWTService
	}
)

func NewInviteService(inviteRepository InviteRepository, jwtService jwt.JWTService) InviteService {
	return &inviteService{
		inviteRepository: inviteRepository,
		jwtService:       jwtService,
	}
}

func (s *inviteService) CreateInvite(ctx context.Context, req domain.CreateInviteRequest, inviterID string, storeID string) (*domain.InviteResponse, error) {
	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	inviterUUID, err := uuid.Parse(inviterID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	store, err := s.inviteRepository.GetStoreByID(ctx, storeID)
	if err != nil {
		return nil, domain.ErrStoreNotFound
	}

	role := req.InvitedRole
	if role == "" {
		role = domain.RoleStaff
	}
	maxUses := req.MaxUses
	if maxUses < 1 {
		maxUses = 1
	}
	ttl := defaultInviteTTL
	if req.ExpiresInDay > 0 {
		ttl = time.Duration(req.ExpiresInDay) * 24 * time.Hour
	}

	invite := &entities.InviteCode{
		StoreID:             storeUUID,
		InviteCode:          utils.GenerateInviteCode(),
		InvitedRole:         role,
		InvitedByEmployeeID: &inviterUUID,
		InvitedEmail:        req.InvitedEmail,
		Status:              "pending",
		ExpiresAt:           time.Now().Add(ttl),
		MaxUses:             maxUses,
	}

	if err := s.inviteRepository.CreateInviteCode(ctx, invite); err != nil {
		return nil, err
	}

	// Mail delivery is best effort. The code is returned either way.
	if invite.InvitedEmail != "" {
		if err := mailing.SendInviteMail(invite.InvitedEmail, store.StoreName, role, invite.InviteCode); err != nil {
			log.Printf("invite mail to %s failed: %v", invite.InvitedEmail, err)
		}
	}

	return toInviteResponse(invite), nil
}

func (s *inviteService) GetInvites(ctx context.Context, storeID string) ([]*domain.InviteResponse, error) {
	invites, err := s.inviteRepository.GetInvitesByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	res := make([]*domain.InviteResponse, 0, len(invites))
	for _, invite := range invites {
		res = append(res, toInviteResponse(invite))
	}
	return res, nil
}

func (s *inviteService) UseInvite(ctx context.Context, req domain.UseInviteRequest) (*domain.LoginResponse, error) {
	invite, err := s.inviteRepository.GetInviteByCode(ctx, req.InviteCode)
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, domain.ErrInviteNotFound
	}
	if invite.Status != "pending" {
		return nil, domain.ErrInviteRevoked
	}
	if time.Now().After(invite.ExpiresAt) {
		invite.Status = "expired"
		_ = s.inviteRepository.UpdateInviteCode(ctx, invite)
		return nil, domain.ErrInviteExpired
	}
	if invite.CurrentUses >= invite.MaxUses {
		return nil, domain.ErrInviteExhausted
	}
	if invite.Store != nil && !invite.Store.IsActive {
		return nil, domain.ErrStoreInactive
	}

	if !utils.IsPasswordStrong(req.Password) {
		return nil, domain.ErrPasswordTooWeak
	}

	taken, err := s.inviteRepository.EmailTaken(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	count, err := s.inviteRepository.CountEmployeesByStore(ctx, invite.StoreID.String())
	if err != nil {
		return nil, err
	}

	storeCode := ""
	storeName := ""
	if invite.Store != nil {
		storeCode = invite.Store.StoreCode
		storeName = invite.Store.StoreName
	}

	now := time.Now()
	employee := &entities.Employee{
		StoreID:      invite.StoreID,
		EmployeeCode: utils.GenerateEmployeeCode(storeCode, int(count)+1),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         invite.InvitedRole,
		IsActive:     true,
		HireDate:     &now,
		Phone:        req.Phone,
	}
	if err := s.inviteRepository.CreateEmployee(ctx, employee); err != nil {
		return nil, err
	}

	invite.CurrentUses++
	invite.UsedAt = &now
	invite.UsedByEmployeeID = &employee.ID
	if invite.CurrentUses >= invite.MaxUses {
		invite.Status = "accepted"
	}
	if err := s.inviteRepository.UpdateInviteCode(ctx, invite); err != nil {
		return nil, err
	}

	token := s.jwtService.GenerateToken(
		employee.ID.String(),
		domain.UserTypeEmployee,
		employee.Role,
		employee.StoreID.String(),
	)

	return &domain.LoginResponse{
		Token: token,
		User: domain.UserProfile{
			ID:        employee.ID,
			UserType:  domain.UserTypeEmployee,
			Name:      employee.Name,
			Email:     employee.Email,
			Role:      employee.Role,
			StoreID:   &employee.StoreID,
			StoreName: storeName,
		},
	}, nil
}

func toInviteResponse(invite *entities.InviteCode) *domain.InviteResponse {
	return &domain.InviteResponse{
		ID:           invite.ID,
		InviteCode:   invite.InviteCode,
		InvitedRole:  invite.InvitedRole,
		InvitedEmail: invite.InvitedEmail,
		Status:       invite.Status,
		ExpiresAt:    &invite.ExpiresAt,
		MaxUses:      invite.MaxUses,
		CurrentUses:  invite.CurrentUses,
		CreatedAt:    invite.CreatedAt,
	}
}
