package catalog

import (
	"errors"

	"gorm.io/gorm"

	entity "obracalc.GO/model/entity"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// FetchAll returns all products with category and specs preloaded.
func (r *CatalogRepository) FetchAll() ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.Preload("Category").Preload("Specifications").Order("nome").Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// FetchByID returns one product or (nil, nil) when not found.
func (r *CatalogRepository) FetchByID(id string) (*entity.Product, error) {
	var p entity.Product
	err := r.db.Preload("Category").Preload("Specifications").Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FetchCategories returns all category names ordered by id.
func (r *CatalogRepository) FetchCategories() ([]entity.ProductCategory, error) {
	var cats []entity.ProductCategory
	if err := r.db.Order("id").Find(&cats).Error; err != nil {
		return nil, err
	}
	return cats, nil
}

// FetchRates returns all consumption rates.
func (r *CatalogRepository) FetchRates() ([]entity.ConsumptionRate, error) {
	var rates []entity.ConsumptionRate
	if err := r.db.Order("produto_id").Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

// FetchRateByProduct returns the first rate for a product, or (nil, nil).
func (r *CatalogRepository) FetchRateByProduct(productID string) (*entity.ConsumptionRate, error) {
	var rate entity.ConsumptionRate
	err := r.db.Where("produto_id = ?", productID).First(&rate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// UpsertCategory finds a category by name or creates it, returning its ID.
func (r *CatalogRepository) UpsertCategory(name, typ string) (uint, error) {
	var cat entity.ProductCategory
	err := r.db.Where("nome = ?", name).First(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cat = entity.ProductCategory{Name: name, Type: typ}
		if err := r.db.Create(&cat).Error; err != nil {
			return 0, err
		}
		return cat.ID, nil
	}
	if err != nil {
		return 0, err
	}
	return cat.ID, nil
}

// UpsertProduct creates or updates a product row by id.
func (r *CatalogRepository) UpsertProduct(p *entity.Product) (created bool, err error) {
	var existing entity.Product
	err = r.db.Where("id = ?", p.ID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, r.db.Create(p).Error
	}
	if err != nil {
		return false, err
	}
	return false, r.db.Model(&entity.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"nome":         p.Name,
		"descricao":    p.Description,
		"categoria_id": p.CategoryID,
		"imagem_url":   p.ImageURL,
		"componentes":  p.Components,
	}).Error
}

// ReplaceRate deletes any existing rate for the product and inserts the new one.
func (r *CatalogRepository) ReplaceRate(rate *entity.ConsumptionRate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("produto_id = ?", rate.ProductID).Delete(&entity.ConsumptionRate{}).Error; err != nil {
			return err
		}
		return tx.Create(rate).Error
	})
}

// ReplaceSpec deletes any existing application spec for the product and inserts the new one.
func (r *CatalogRepository) ReplaceSpec(spec *entity.ApplicationSpec) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("produto_id = ?", spec.ProductID).Delete(&entity.ApplicationSpec{}).Error; err != nil {
			return err
		}
		return tx.Create(spec).Error
	})
}
