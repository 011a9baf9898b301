package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/channel-marketing-api/infrastructure/database/postgres"
	"github.com/vfg2006/channel-marketing-api/infrastructure/repository"
	"github.com/vfg2006/channel-marketing-api/internal/config"
	"github.com/vfg2006/channel-marketing-api/internal/domain"
	"github.com/vfg2006/channel-marketing-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type seedCampaign struct {
	Name        string
	ExternalID  string
	Status      domain.CampaignStatus
	DailyBudget float64
	TotalBudget float64
	// Base é o volume diário de impressões usado para gerar as métricas
	Base int64
}

type seedAccount struct {
	Platform   domain.Platform
	Name       string
	ExternalID string
	Campaigns  []seedCampaign
}

type seedInsight struct {
	Type        string
	Priority    domain.InsightPriority
	Title       string
	Description string
}

var demoAccounts = []seedAccount{
	{
		Platform: domain.PlatformGoogle, Name: "Google Ads - Loja", ExternalID: "123-456-7890",
		Campaigns: []seedCampaign{
			{Name: "Pesquisa - Marca", ExternalID: "g-1001", Status: domain.CampaignStatusActive, DailyBudget: 50000, TotalBudget: 1500000, Base: 12000},
			{Name: "Display - Remarketing", ExternalID: "g-1002", Status: domain.CampaignStatusPaused, DailyBudget: 30000, TotalBudget: 900000, Base: 30000},
		},
	},
	{
		Platform: domain.PlatformNaver, Name: "Naver Search Ad", ExternalID: "naver-777",
		Campaigns: []seedCampaign{
			{Name: "Palavras-chave - Verão", ExternalID: "n-2001", Status: domain.CampaignStatusActive, DailyBudget: 40000, TotalBudget: 1200000, Base: 9000},
		},
	},
	{
		Platform: domain.PlatformKarrot, Name: "Karrot Business", ExternalID: "karrot-42",
		Campaigns: []seedCampaign{
			{Name: "Bairro - Promoção", ExternalID: "k-3001", Status: domain.CampaignStatusActive, DailyBudget: 20000, TotalBudget: 400000, Base: 4000},
			{Name: "Bairro - Inverno", ExternalID: "k-3002", Status: domain.CampaignStatusEnded, DailyBudget: 15000, TotalBudget: 300000, Base: 2500},
		},
	},
}

var demoInsights = []seedInsight{
	{Type: "budget", Priority: domain.InsightPriorityHigh, Title: "Orçamento quase esgotado", Description: "A campanha de pesquisa consumiu mais de 80% do orçamento."},
	{Type: "performance", Priority: domain.InsightPriorityMedium, Title: "CTR abaixo da média", Description: "O CTR do Display caiu nos últimos 7 dias."},
	{Type: "opportunity", Priority: domain.InsightPriorityLow, Title: "Novo público no Karrot", Description: "Bairros vizinhos apresentam custo por clique menor."},
}

func main() {
	email := flag.String("email", "demo@example.com", "email do usuário de demonstração")
	password := flag.String("password", "Demo#2024", "senha do usuário de demonstração")
	days := flag.Int("days", 30, "quantidade de dias de métricas a gerar")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando carga de dados de demonstração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	if err := postgres.Migrate(cfg.Database.DSN); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		return seed(ctx, tx, *email, *password, *days, utils.Today())
	})
	if err != nil {
		logrus.WithError(err).Fatal("Carga de dados abortada, nenhuma alteração aplicada")
	}

	logrus.WithField("elapsed", time.Since(startTime)).Info("Carga de dados concluída")
}

func seed(ctx context.Context, tx postgres.Queryer, email, password string, days int, today time.Time) error {
	userRepo := repository.NewUserRepository(tx)
	accountRepo := repository.NewAccountRepository(tx)
	campaignRepo := repository.NewCampaignRepository(tx)
	metricRepo := repository.NewMetricRepository(tx)
	settingsRepo := repository.NewBudgetSettingsRepository(tx)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user, err := userRepo.CreateUser(ctx, &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Name:         "Usuário Demo",
		PasswordHash: string(hash),
		Role:         domain.UserRoleUser,
		Active:       true,
	})
	if err != nil {
		return fmt.Errorf("inserir usuário %s: %w", email, err)
	}
	logrus.WithField("user_id", user.ID).Info("Usuário de demonstração criado")

	var (
		firstCampaignID string
		metricCount     int
		totalBudget     float64
	)

	for _, sa := range demoAccounts {
		accountID, err := utils.GenerateID()
		if err != nil {
			return err
		}

		account := &domain.MarketingAccount{
			ID:                accountID,
			UserID:            user.ID,
			Platform:          sa.Platform,
			ExternalAccountID: sa.ExternalID,
			AccountName:       sa.Name,
			Connected:         true,
		}
		if err := accountRepo.CreateAccount(ctx, account); err != nil {
			return fmt.Errorf("inserir conta %s: %w", sa.Name, err)
		}

		for _, sc := range sa.Campaigns {
			campaignID, err := utils.GenerateID()
			if err != nil {
				return err
			}

			start := today.AddDate(0, 0, -days)
			campaign := &domain.Campaign{
				ID:                 campaignID,
				MarketingAccountID: accountID,
				Platform:           sa.Platform,
				Name:               sc.Name,
				ExternalCampaignID: sc.ExternalID,
				DailyBudget:        sc.DailyBudget,
				TotalBudget:        sc.TotalBudget,
				StartDate:          &start,
				Status:             sc.Status,
			}
			if err := campaignRepo.CreateCampaign(ctx, campaign); err != nil {
				return fmt.Errorf("inserir campanha %s: %w", sc.Name, err)
			}

			if firstCampaignID == "" {
				firstCampaignID = campaignID
			}
			totalBudget += sc.TotalBudget

			for _, metric := range buildDailyMetrics(campaignID, sc.Base, days, today) {
				if err := metricRepo.UpsertDaily(ctx, metric); err != nil {
					return fmt.Errorf("inserir métricas da campanha %s: %w", sc.Name, err)
				}
				metricCount++
			}
		}

		logrus.WithFields(logrus.Fields{
			"platform":  sa.Platform,
			"campaigns": len(sa.Campaigns),
		}).Info("Conta inserida")
	}

	if err := settingsRepo.SaveSettings(ctx, &domain.BudgetSettings{
		UserID:      user.ID,
		TotalBudget: totalBudget,
		DailyBudget: totalBudget / float64(max(days, 1)),
	}); err != nil {
		return fmt.Errorf("salvar orçamento: %w", err)
	}

	if err := insertInsights(ctx, tx, user.ID, firstCampaignID); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"metrics":  metricCount,
		"insights": len(demoInsights),
	}).Info("Métricas e insights inseridos")

	return nil
}

// buildDailyMetrics gera uma série determinística com variação semanal
func buildDailyMetrics(campaignID string, base int64, days int, today time.Time) []*domain.DailyMetric {
	metrics := make([]*domain.DailyMetric, 0, days)

	for i := days; i >= 1; i-- {
		date := today.AddDate(0, 0, -i)

		// fins de semana rendem 30% menos
		impressions := base
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			impressions = base * 7 / 10
		}
		impressions += int64(i%5) * base / 20

		clicks := impressions * 3 / 100
		conversions := clicks / 20
		cost := float64(clicks) * 450
		revenue := float64(conversions) * 25000

		metrics = append(metrics, &domain.DailyMetric{
			CampaignID:  campaignID,
			Date:        date,
			Impressions: impressions,
			Clicks:      clicks,
			Cost:        cost,
			Conversions: conversions,
			Revenue:     revenue,
		})
	}

	return metrics
}

// insertInsights grava os insights pré-calculados; a API apenas os lê
func insertInsights(ctx context.Context, tx postgres.Queryer, userID int, campaignID string) error {
	builder := squirrel.
		Insert("insights").
		Columns("user_id", "campaign_id", "type", "priority", "title", "description").
		PlaceholderFormat(squirrel.Dollar)

	for i, insight := range demoInsights {
		var campaign *string
		if i == 0 && campaignID != "" {
			campaign = &campaignID
		}
		builder = builder.Values(userID, campaign, insight.Type, insight.Priority, insight.Title, insight.Description)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserir insights: %w", err)
	}

	return nil
}
