package repository

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebarbosa/loja-virtual/internal/models"
)

func newProductRepos(t *testing.T) (*sql.DB, *CategoryRepository, *ProductRepository) {
	t.Helper()
	db := newTestDB(t)
	categories := NewCategoryRepository(db)
	products := NewProductRepository(db)
	require.True(t, categories.EnsureTable())
	require.True(t, products.EnsureTable())
	return db, categories, products
}

func TestProductInsertAndGetByID(t *testing.T) {
	_, categories, products := newProductRepos(t)

	categoryID, err := categories.Insert(&models.Category{Name: "Livros"})
	require.NoError(t, err)

	id, err := products.Insert(&models.Product{
		Name:        "Dom Casmurro",
		Description: "Romance de Machado de Assis",
		Price:       24.90,
		Stock:       200,
		Image:       "dom-casmurro.jpg",
		CategoryID:  categoryID,
	})
	require.NoError(t, err)

	product, err := products.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, id, product.ID)
	assert.Equal(t, "Dom Casmurro", product.Name)
	assert.Equal(t, "Romance de Machado de Assis", product.Description)
	assert.Equal(t, 24.90, product.Price)
	assert.Equal(t, 200, product.Stock)
	assert.Equal(t, "dom-casmurro.jpg", product.Image)
	assert.Equal(t, categoryID, product.CategoryID)

	// The category comes back embedded from the join.
	require.NotNil(t, product.Category)
	assert.Equal(t, "Livros", product.Category.Name)
}

func TestProductGetByIDNotFound(t *testing.T) {
	_, _, products := newProductRepos(t)

	product, err := products.GetByID(7)
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestProductInsertRejectsUnknownCategory(t *testing.T) {
	_, _, products := newProductRepos(t)

	_, err := products.Insert(&models.Product{
		Name:        "Órfão",
		Description: "Sem categoria",
		Price:       1,
		Stock:       1,
		Image:       "orfao.jpg",
		CategoryID:  12345,
	})
	assert.Error(t, err)
}

func TestProductUpdate(t *testing.T) {
	_, categories, products := newProductRepos(t)

	categoryID, err := categories.Insert(&models.Category{Name: "Eletrônicos"})
	require.NoError(t, err)
	otherCategoryID, err := categories.Insert(&models.Category{Name: "Informática"})
	require.NoError(t, err)

	id, err := products.Insert(&models.Product{
		Name: "Mouse", Description: "Com fio", Price: 49.90, Stock: 10,
		Image: "mouse.jpg", CategoryID: categoryID,
	})
	require.NoError(t, err)

	updated, err := products.Update(&models.Product{
		ID: id, Name: "Mouse sem Fio", Description: "Receptor USB", Price: 79.90,
		Stock: 8, Image: "mouse-sem-fio.jpg", CategoryID: otherCategoryID,
	})
	require.NoError(t, err)
	assert.True(t, updated)

	product, err := products.GetByID(id)
	require.NoError(t, err)
	assert.Equal(t, "Mouse sem Fio", product.Name)
	assert.Equal(t, 79.90, product.Price)
	assert.Equal(t, "Informática", product.Category.Name)
}

func TestProductUpdateNotFound(t *testing.T) {
	_, categories, products := newProductRepos(t)

	categoryID, err := categories.Insert(&models.Category{Name: "Moda"})
	require.NoError(t, err)

	updated, err := products.Update(&models.Product{
		ID: 55, Name: "Nada", Description: "-", Price: 1, Stock: 0,
		Image: "nada.jpg", CategoryID: categoryID,
	})
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestProductDelete(t *testing.T) {
	_, categories, products := newProductRepos(t)

	categoryID, err := categories.Insert(&models.Category{Name: "Casa"})
	require.NoError(t, err)
	id, err := products.Insert(&models.Product{
		Name: "Cafeteira", Description: "20 xícaras", Price: 149.90, Stock: 40,
		Image: "cafeteira.jpg", CategoryID: categoryID,
	})
	require.NoError(t, err)

	deleted, err := products.Delete(id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = products.Delete(id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestProductGetPage(t *testing.T) {
	_, categories, products := newProductRepos(t)

	categoryID, err := categories.Insert(&models.Category{Name: "Livros"})
	require.NoError(t, err)

	names := []string{"Banana", "Abacaxi", "Damasco", "Cereja", "Embaúba"}
	for _, name := range names {
		_, err := products.Insert(&models.Product{
			Name: name, Description: "fruta", Price: 5, Stock: 1,
			Image: "fruta.jpg", CategoryID: categoryID,
		})
		require.NoError(t, err)
	}

	page1, err := products.GetPage(1, 3)
	require.NoError(t, err)
	require.Len(t, page1, 3)
	assert.Equal(t, "Abacaxi", page1[0].Name)
	assert.Equal(t, "Banana", page1[1].Name)
	assert.Equal(t, "Cereja", page1[2].Name)

	page2, err := products.GetPage(2, 3)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, "Damasco", page2[0].Name)
	assert.Equal(t, "Embaúba", page2[1].Name)

	for _, product := range page1 {
		require.NotNil(t, product.Category)
		assert.Equal(t, "Livros", product.Category.Name)
	}
}

func TestProductSeedRequiresCategorySeed(t *testing.T) {
	db := newTestDB(t)
	categories := NewCategoryRepository(db).WithSeed(CategorySeed)
	products := NewProductRepository(db).WithSeed(ProductSeed)

	require.True(t, categories.EnsureTable())
	require.True(t, products.EnsureTable())

	seeded, err := products.GetPage(1, 50)
	require.NoError(t, err)
	require.NotEmpty(t, seeded)
	for _, product := range seeded {
		require.NotNil(t, product.Category)
		assert.NotEmpty(t, product.Category.Name)
	}
}
