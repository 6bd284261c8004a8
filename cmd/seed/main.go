// seed aprovisiona los datos de sistema: un permiso por módulo del catálogo,
// los roles Administrador/Vendedor/Cajero y el usuario administrador inicial.
//
// Uso: go run ./cmd/seed
// Idempotente: si el permiso/rol/usuario ya existe, lo deja tal cual.
//
// Variables: ADMIN_EMAIL y ADMIN_PASSWORD (por defecto admin@local / admin123,
// cámbielas fuera de desarrollo).
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/erp-pyme/internal/domain/authz"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/infrastructure/postgres"
	"github.com/jhoicas/erp-pyme/pkg/config"
	"github.com/jhoicas/erp-pyme/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	permRepo := postgres.NewPermissionRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	now := time.Now().UTC()

	// 1. Un permiso de sistema por módulo del catálogo.
	var allKeys []string
	for _, group := range authz.Catalog() {
		for _, m := range group.Modules {
			allKeys = append(allKeys, m.Key)
			existing, err := permRepo.GetByKey(m.Key)
			if err != nil {
				log.Fatal().Err(err).Str("key", m.Key).Msg("consultar permiso")
			}
			if existing != nil {
				continue
			}
			p := &entity.Permission{
				ID:          uuid.NewString(),
				Key:         m.Key,
				Name:        m.Name,
				Module:      m.Key,
				Description: "Acceso al módulo " + m.Name,
				Category:    m.Category,
				IsSystem:    true,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := permRepo.Create(p); err != nil {
				log.Fatal().Err(err).Str("key", m.Key).Msg("crear permiso")
			}
			log.Info().Str("key", m.Key).Msg("permiso sembrado")
		}
	}

	// 2. Roles de sistema. Administrador lleva todos los módulos; Vendedor y
	// Cajero llevan los subconjuntos operativos habituales.
	systemRoles := []struct {
		name        string
		description string
		keys        []string
	}{
		{entity.RoleAdministrador, "Acceso completo a todos los módulos", allKeys},
		{entity.RoleVendedor, "Ventas: clientes, cotizaciones, ventas y comisiones propias", []string{
			authz.ModuleDashboard, authz.ModuleClients, authz.ModuleQuotations,
			authz.ModuleSales, authz.ModuleCommissions,
		}},
		{entity.RoleCajero, "Caja: ventas, caja y gastos", []string{
			authz.ModuleDashboard, authz.ModuleSales, authz.ModuleCash, authz.ModuleExpenses,
		}},
	}

	var adminRoleID string
	for _, sr := range systemRoles {
		existing, err := roleRepo.GetByName(sr.name)
		if err != nil {
			log.Fatal().Err(err).Str("role", sr.name).Msg("consultar rol")
		}
		if existing != nil {
			if sr.name == entity.RoleAdministrador {
				adminRoleID = existing.ID
			}
			continue
		}
		role := &entity.Role{
			ID:             uuid.NewString(),
			Name:           sr.name,
			Description:    sr.description,
			PermissionKeys: sr.keys,
			IsSystem:       true,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := roleRepo.Create(role); err != nil {
			log.Fatal().Err(err).Str("role", sr.name).Msg("crear rol")
		}
		if sr.name == entity.RoleAdministrador {
			adminRoleID = role.ID
		}
		log.Info().Str("role", sr.name).Int("permisos", len(sr.keys)).Msg("rol sembrado")
	}

	// 3. Usuario administrador inicial.
	adminEmail := envOr("ADMIN_EMAIL", "admin@local")
	adminPassword := envOr("ADMIN_PASSWORD", "admin123")

	existing, err := userRepo.GetByEmail(adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar usuario administrador")
	}
	if existing == nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("hash de contraseña")
		}
		admin := &entity.User{
			ID:            uuid.NewString(),
			Name:          "Administrador",
			Email:         adminEmail,
			PasswordHash:  string(hash),
			RoleID:        adminRoleID,
			Status:        entity.UserStatusActive,
			CommissionPct: decimal.Zero,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := userRepo.Create(admin); err != nil {
			log.Fatal().Err(err).Msg("crear usuario administrador")
		}
		log.Info().Str("email", adminEmail).Msg("usuario administrador sembrado")
	}

	log.Info().Msg("sembrado completo")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
