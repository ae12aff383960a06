package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"policy-portal/storage/postgres"
)

type ClientService struct {
	clientRepo *postgres.ClientRepo
}

func NewClientService(clientRepo *postgres.ClientRepo) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

type CreateClientInput struct {
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

func (s *ClientService) CreateClient(ctx context.Context, agentID int64, in CreateClientInput) (*postgres.Client, error) {
	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		return nil, fmt.Errorf("客户姓名不能为空")
	}
	client := &postgres.Client{
		AgentID:     agentID,
		FullName:    fullName,
		Email:       strings.TrimSpace(in.Email),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Address:     strings.TrimSpace(in.Address),
	}
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) ListClients(ctx context.Context, agentID int64) ([]postgres.Client, error) {
	return s.clientRepo.ListByAgent(ctx, agentID)
}

func (s *ClientService) GetClient(ctx context.Context, agentID, id int64) (*postgres.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, agentID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return client, nil
}

func (s *ClientService) DeleteClient(ctx context.Context, agentID, id int64) error {
	err := s.clientRepo.Delete(ctx, agentID, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
