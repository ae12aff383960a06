package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"policy-portal/storage/postgres"
)

type AuthService struct {
	agentRepo *postgres.AgentRepo
}

func NewAuthService(agentRepo *postgres.AgentRepo) *AuthService {
	return &AuthService{agentRepo: agentRepo}
}

// Register 注册代理人账号，密码用 bcrypt 存储
func (s *AuthService) Register(ctx context.Context, email, password, fullName string) (*postgres.Agent, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrAuth
	}

	if _, err := s.agentRepo.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	agent := &postgres.Agent{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     strings.TrimSpace(fullName),
	}
	if err := s.agentRepo.Create(ctx, agent); err != nil {
		return nil, err
	}
	return agent, nil
}

// Login 校验密码，签发新的不透明令牌（每次登录轮换旧令牌）
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *postgres.Agent, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	agent, err := s.agentRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 不区分"账号不存在"和"密码错误"，避免撞库探测
			return "", nil, ErrAuth
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(agent.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrAuth
	}

	token := uuid.New().String()
	if err := s.agentRepo.UpdateToken(ctx, agent.ID, token); err != nil {
		return "", nil, err
	}
	agent.Token = token
	return token, agent, nil
}

// Authenticate 中间件用：令牌换代理人
func (s *AuthService) Authenticate(ctx context.Context, token string) (*postgres.Agent, error) {
	agent, err := s.agentRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuth
		}
		return nil, err
	}
	return agent, nil
}
