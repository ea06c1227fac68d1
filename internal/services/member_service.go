package services

import (
	"context"
	"strings"

	dbm "github.com/julfkar-mu/khidmat/internal/models/db_models"
	req "github.com/julfkar-mu/khidmat/internal/models/request_models"
	resp "github.com/julfkar-mu/khidmat/internal/models/response_models"
	"github.com/julfkar-mu/khidmat/internal/repositories"
	"github.com/julfkar-mu/khidmat/pkg/utils"
)

type MemberService interface {
	Register(ctx context.Context, caller Caller, request req.CreateMemberRequest) (*resp.MemberResponse, error)
	List(ctx context.Context, caller Caller) ([]resp.MemberResponse, error)
	// ToggleStatus flips the active flag. Deactivation only excludes
	// the member from future unpaid classification; history stays.
	ToggleStatus(ctx context.Context, id int64) (*resp.MemberStatusResponse, error)
}

type memberService struct {
	memberRepo repositories.MemberRepository
}

func NewMemberService(memberRepo repositories.MemberRepository) MemberService {
	return &memberService{memberRepo: memberRepo}
}

func (s *memberService) Register(ctx context.Context, caller Caller, request req.CreateMemberRequest) (*resp.MemberResponse, error) {
	if strings.TrimSpace(request.Name) == "" || strings.TrimSpace(request.MobileNo) == "" {
		return nil, utils.ErrMissingField
	}

	member := &dbm.Member{
		Name:     request.Name,
		MobileNo: request.MobileNo,
		Address:  request.Address,
		AdminID:  caller.AdminID,
		IsActive: true,
	}
	if err := s.memberRepo.Insert(ctx, member); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &resp.MemberResponse{
		ID:        member.ID,
		Name:      member.Name,
		MobileNo:  member.MobileNo,
		Address:   member.Address,
		AdminID:   member.AdminID,
		IsActive:  member.IsActive,
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
	}, nil
}

func (s *memberService) List(ctx context.Context, caller Caller) ([]resp.MemberResponse, error) {
	rows, err := s.memberRepo.List(ctx, 0)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]resp.MemberResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, resp.MemberResponse{
			ID:        row.ID,
			Name:      row.Name,
			MobileNo:  row.MobileNo,
			Address:   row.Address,
			AdminID:   row.AdminID,
			AdminName: row.AdminName,
			IsActive:  row.IsActive,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return out, nil
}

func (s *memberService) ToggleStatus(ctx context.Context, id int64) (*resp.MemberStatusResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil {
		return nil, utils.ErrMemberNotFound
	}

	next := !member.IsActive
	if err := s.memberRepo.SetActive(ctx, id, next); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &resp.MemberStatusResponse{ID: id, IsActive: next}, nil
}
