package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"yolcu-backend/internal/entity"
	"yolcu-backend/internal/repository/specification"
	"yolcu-backend/internal/repository/unitofwork"
	"yolcu-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.RoadmapRepository())
	assert.NotNil(t, uow.ChatMessageRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Team Member Repository", func(t *testing.T) {
		count, err := uow.TeamMemberRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Team member count: %d", count)
	})

	t.Run("Transactional Team Creation", func(t *testing.T) {
		ctx := context.Background()

		user := &entity.User{
			Id:           uuid.New(),
			Username:     "integration-" + uuid.New().String()[:8],
			Email:        "test-integration-" + uuid.New().String() + "@example.com",
			FirstName:    "Integration",
			LastName:     "Test",
			PasswordHash: "not-a-real-hash",
		}

		hackathon := &entity.Hackathon{
			Id:          uuid.New(),
			Title:       "Integration Hackathon " + uuid.New().String()[:8],
			Description: "created by the integration suite",
			StartDate:   time.Now().AddDate(0, 0, 1),
		}

		tx := uowFactory.NewUnitOfWork(ctx)
		if err := tx.Begin(ctx); err != nil {
			t.Fatalf("Failed to begin transaction: %v", err)
		}
		defer tx.Rollback()

		assert.NoError(t, tx.UserRepository().Create(ctx, user))
		assert.NoError(t, tx.HackathonRepository().Create(ctx, hackathon))

		team := &entity.Team{
			Id:              uuid.New(),
			Name:            "Integration Team",
			HackathonId:     hackathon.Id,
			CreatedByUserId: user.Id,
		}
		assert.NoError(t, tx.TeamRepository().Create(ctx, team))
		assert.NoError(t, tx.TeamMemberRepository().Create(ctx, &entity.TeamMember{
			Id:     uuid.New(),
			TeamId: team.Id,
			UserId: user.Id,
		}))

		// Visible inside the transaction before rollback.
		found, err := tx.TeamRepository().FindOne(ctx, specification.ByID{ID: team.Id})
		assert.NoError(t, err)
		assert.NotNil(t, found)

		// Rollback in the deferred call leaves no rows behind.
	})
}
