package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/fazenda-api/internal/application/dto"
	"github.com/jhoicas/fazenda-api/internal/application/usecase"
	"github.com/jhoicas/fazenda-api/internal/domain"
	"github.com/jhoicas/fazenda-api/internal/domain/entity"
	"github.com/jhoicas/fazenda-api/internal/domain/repository"
	"github.com/jhoicas/fazenda-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: registro, login e verificação de token.
type AuthUseCase struct {
	userRepo repository.UsuarioRepository
	ids      usecase.IDGenerator
	jwtCfg   JWTConfig
	cost     int
}

// NewAuthUseCase constrói o caso de uso de auth. ids nil usa ClockIDs.
func NewAuthUseCase(userRepo repository.UsuarioRepository, ids usecase.IDGenerator, jwtCfg JWTConfig) *AuthUseCase {
	if ids == nil {
		ids = usecase.NewClockIDs()
	}
	if jwtCfg.ExpMinutes <= 0 {
		jwtCfg.ExpMinutes = 60
	}
	return &AuthUseCase{userRepo: userRepo, ids: ids, jwtCfg: jwtCfg, cost: bcrypt.DefaultCost}
}

// WithBcryptCost ajusta o custo do hash (testes usam bcrypt.MinCost).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.cost = cost
	return uc
}

// Register cria um usuário: hash bcrypt da senha e persistência. ErrEmailAlreadyExists se o
// email já estiver cadastrado. A primeira busca evita o custo do bcrypt no caso comum; a
// garantia vem de CreateWithUniqueEmail.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	email := strings.TrimSpace(in.Email)
	existing, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), uc.cost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &entity.Usuario{
		Meta:        entity.Meta{ID: uc.ids.NewID(), DataCriacao: now, DataModificacao: now},
		Nome:        in.Nome,
		Email:       email,
		SenhaHash:   string(hash),
		NivelAcesso: in.NivelAcesso,
	}
	if err := uc.userRepo.CreateWithUniqueEmail(ctx, user); err != nil {
		return nil, err
	}
	return usecase.ToUsuarioResponse(user), nil
}

// Login verifica email/senha e gera o JWT. Email desconhecido e senha errada dão o mesmo
// ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.NivelAcesso, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("auth: gerar token: %w", err)
	}
	return &dto.LoginResponse{AccessToken: token}, nil
}

// VerifyToken valida o token e devolve a identidade nele contida.
func (uc *AuthUseCase) VerifyToken(token string) (*dto.MeResponse, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, errors.Join(domain.ErrUnauthorized, err)
	}
	return &dto.MeResponse{UserID: claims.UserID, NivelAcesso: claims.NivelAcesso}, nil
}
