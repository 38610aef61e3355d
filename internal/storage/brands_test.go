package storage

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"

	"stoik.com/phishscan/internal/core/domain"
)

// Postgres test database configuration
const (
	postgresUser     = "phishscan"
	postgresPassword = "phishscan_pwd"
	postgresDB       = "phishscan_test"
	postgresHost     = "localhost"
)

func TestBrandsStorage(t *testing.T) {
	suite.Run(t, new(BrandsStorageSuite))
}

type BrandsStorageSuite struct {
	suite.Suite
	dockerPool       *dockertest.Pool
	postgresResource *dockertest.Resource
	db               *PostgresDB
	storage          *BrandsStorage
}

func (suite *BrandsStorageSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Skipf("Could not connect to docker: %s", err)
	}
	if err := pool.Client.Ping(); err != nil {
		suite.T().Skipf("Docker is not available: %s", err)
	}
	pool.MaxWait = 90 * time.Second
	suite.dockerPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + postgresUser,
			"POSTGRES_PASSWORD=" + postgresPassword,
			"POSTGRES_DB=" + postgresDB,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		suite.T().Fatalf("Could not start postgres: %s", err)
	}
	suite.postgresResource = resource
	_ = resource.Expire(120)

	port := resource.GetPort("5432/tcp")
	err = pool.Retry(func() error {
		db, err := NewPostgresDB(context.Background(), postgresHost, port, postgresUser, postgresPassword, postgresDB)
		if err != nil {
			return err
		}
		suite.db = db
		return nil
	})
	if err != nil {
		suite.TearDownSuite()
		suite.T().Fatalf("Could not connect to postgres: %s", err)
	}

	suite.storage = NewBrandsStorage(suite.db)
}

func (suite *BrandsStorageSuite) SetupTest() {
	ctx := context.Background()
	suite.Require().NoError(suite.db.Migrate(ctx))
	_, err := suite.db.Exec(ctx, `TRUNCATE brands`)
	suite.Require().NoError(err)
}

func (suite *BrandsStorageSuite) TearDownSuite() {
	if suite.db != nil {
		suite.db.Close()
	}
	if suite.dockerPool != nil && suite.postgresResource != nil {
		_ = suite.dockerPool.Purge(suite.postgresResource)
	}
}

func (suite *BrandsStorageSuite) TestListBrands_Empty() {
	brands, err := suite.storage.ListBrands(context.Background())

	suite.NoError(err)
	suite.Empty(brands)
}

func (suite *BrandsStorageSuite) TestListBrands_GroupsDomains() {
	ctx := context.Background()
	_, err := suite.db.Exec(ctx, `
		INSERT INTO brands (name, domain) VALUES
			('PayPal', 'paypal.com'),
			('PayPal', 'PayPal.me'),
			('acme', 'acme.io')
	`)
	suite.Require().NoError(err)

	brands, err := suite.storage.ListBrands(ctx)

	suite.NoError(err)
	suite.Equal([]domain.Brand{
		{Name: "paypal", Domains: []string{"paypal.com", "paypal.me"}},
		{Name: "acme", Domains: []string{"acme.io"}},
	}, brands)
}

func (suite *BrandsStorageSuite) TestMigrate_IsIdempotent() {
	suite.NoError(suite.db.Migrate(context.Background()))
}
