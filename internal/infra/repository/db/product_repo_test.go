package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/Malvezin/miglesMakeStore/internal/domain/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ProductRepoTestSuite struct {
	suite.Suite
	db          *gorm.DB
	productRepo *ProductRepo
}

func TestProductRepoTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoTestSuite))
}

// SetupSuite executa antes da suíte
func (suite *ProductRepoTestSuite) SetupSuite() {
	db, err := GetDbConn("migles_store_test", "localhost", "5432", "postgres", "password")
	require.NoError(suite.T(), err)
	dbDao := NewDbDao(db)
	require.NoError(suite.T(), dbDao.InitMigrate())

	suite.db = db
	suite.productRepo = NewProductRepo(dbDao)
}

// SetupTest executa antes de cada teste
func (suite *ProductRepoTestSuite) SetupTest() {
	suite.db.Exec("DELETE FROM products")
}

// TearDownSuite executa depois da suíte
func (suite *ProductRepoTestSuite) TearDownSuite() {
	sqlDB, _ := suite.db.DB()
	sqlDB.Close()
}

func (suite *ProductRepoTestSuite) createTestProduct(name string, active bool) *model.Product {
	product := &model.Product{
		ProductID: uuid.New().String(),
		Name:      name,
		Category:  "Maquiagem",
		Price:     decimal.NewFromInt(10),
		Stock:     5,
		Active:    active,
	}
	require.NoError(suite.T(), suite.productRepo.CreateProduct(context.Background(), product))
	return product
}

func (suite *ProductRepoTestSuite) TestCreateAndGetProduct() {
	product := suite.createTestProduct("Batom Vermelho", true)

	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), found)
	require.Equal(suite.T(), product.Name, found.Name)
	require.True(suite.T(), product.Price.Equal(found.Price))
}

func (suite *ProductRepoTestSuite) TestGetProductByID_NotFound() {
	found, err := suite.productRepo.GetProductByID(context.Background(), uuid.New().String())

	require.NoError(suite.T(), err)
	require.Nil(suite.T(), found)
}

func (suite *ProductRepoTestSuite) TestGetActiveProducts() {
	suite.createTestProduct("Base Líquida", true)
	suite.createTestProduct("Produto Desativado", false)

	active, err := suite.productRepo.GetActiveProducts(context.Background())

	require.NoError(suite.T(), err)
	require.Len(suite.T(), active, 1)
	require.Equal(suite.T(), "Base Líquida", active[0].Name)
}

func (suite *ProductRepoTestSuite) TestGetAllProducts_IncludesInactive() {
	suite.createTestProduct("Base Líquida", true)
	suite.createTestProduct("Produto Desativado", false)

	all, err := suite.productRepo.GetAllProducts(context.Background())

	require.NoError(suite.T(), err)
	require.Len(suite.T(), all, 2)
}

func (suite *ProductRepoTestSuite) TestUpdateProduct() {
	product := suite.createTestProduct("Batom Vermelho", true)
	product.Price = decimal.NewFromFloat(12.5)
	product.Active = false

	err := suite.productRepo.UpdateProduct(context.Background(), product)
	require.NoError(suite.T(), err)

	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)
	require.True(suite.T(), decimal.NewFromFloat(12.5).Equal(found.Price))
	require.False(suite.T(), found.Active)
}

func (suite *ProductRepoTestSuite) TestDeleteProduct_SoftDelete() {
	product := suite.createTestProduct("Batom Vermelho", true)

	err := suite.productRepo.DeleteProduct(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)

	found, err := suite.productRepo.GetProductByID(context.Background(), product.ProductID)
	require.NoError(suite.T(), err)
	require.Nil(suite.T(), found)

	// soft delete: a linha continua na tabela
	var count int64
	suite.db.Unscoped().Model(&model.Product{}).Where("product_id = ?", product.ProductID).Count(&count)
	require.Equal(suite.T(), int64(1), count)
}

func (suite *ProductRepoTestSuite) TestCountProducts() {
	for i := 0; i < 3; i++ {
		suite.createTestProduct(fmt.Sprintf("Produto %d", i+1), true)
	}

	count, err := suite.productRepo.CountProducts(context.Background())

	require.NoError(suite.T(), err)
	require.Equal(suite.T(), int64(3), count)
}
