package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductUseCase interface {
	GetAll(ctx context.Context, page, pageSize int, sortBy, order string) ([]domain.Product, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByCategory(ctx context.Context, token string) ([]domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	Create(ctx context.Context, data map[string]interface{}) (*domain.Product, error)
	Update(ctx context.Context, id string, data map[string]interface{}) (*domain.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		log:          logger,
	}
}

// resolveCategory converts a category token (canonical id or exact name) into
// the id of an existing category. Resolution is idempotent for id-form tokens:
// no name lookup happens, only the write-time existence check.
func (uc *productUseCase) resolveCategory(ctx context.Context, token string) (primitive.ObjectID, error) {
	ref, err := domain.ParseCategoryRef(token)
	if err != nil {
		return primitive.NilObjectID, err
	}

	if ref.IsID() {
		category, err := uc.categoryRepo.GetByID(ctx, ref.ID)
		if err != nil {
			return primitive.NilObjectID, fmt.Errorf("failed to resolve category: %w", err)
		}
		if category == nil {
			uc.log.Warnf("Use Case: Category id %s does not exist", ref.ID.Hex())
			return primitive.NilObjectID, ref.NotFound()
		}
		return ref.ID, nil
	}

	category, err := uc.categoryRepo.GetByName(ctx, ref.Name)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to resolve category: %w", err)
	}
	if category == nil {
		uc.log.Warnf("Use Case: Category '%s' not found during resolution", ref.Name)
		return primitive.NilObjectID, ref.NotFound()
	}
	return category.ID, nil
}

func (uc *productUseCase) GetAll(ctx context.Context, page, pageSize int, sortBy, order string) ([]domain.Product, int64, error) {
	page, pageSize = NormalizePage(page, pageSize)
	skip, limit := PageWindow(page, pageSize)

	uc.log.Infof("Use Case: Listing products (page: %d, page_size: %d, sort_by: %q)", page, pageSize, sortBy)
	products, totalCount, err := uc.productRepo.List(ctx, domain.ListOptions{
		Skip:   skip,
		Limit:  limit,
		SortBy: sortBy,
		Order:  order,
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, 0, fmt.Errorf("could not retrieve products: %w", err)
	}
	return products, totalCount, nil
}

func (uc *productUseCase) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		uc.log.Warnf("Use Case: Invalid product ID format: %s", id)
		return nil, domain.NewInvalidInputError("Invalid product ID format")
	}
	return uc.productRepo.GetByID(ctx, oid)
}

// GetByCategory lists the products of the category the token resolves to. A
// category that exists but has no products yields an empty slice; an
// unresolvable name fails with NotFoundError.
func (uc *productUseCase) GetByCategory(ctx context.Context, token string) ([]domain.Product, error) {
	categoryID, err := uc.resolveCategory(ctx, token)
	if err != nil {
		return nil, err
	}

	products, err := uc.productRepo.GetByCategory(ctx, categoryID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products for category %s: %v", categoryID.Hex(), err)
		return nil, fmt.Errorf("could not retrieve products for category: %w", err)
	}
	uc.log.Infof("Use Case: Retrieved %d products for category %s", len(products), categoryID.Hex())
	return products, nil
}

func (uc *productUseCase) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	return uc.productRepo.FindByName(ctx, name)
}

// Create runs the write pipeline: validation, category resolution, duplicate
// name pre-check, then the insert with both timestamps stamped. Any failure
// before the insert leaves the store untouched.
func (uc *productUseCase) Create(ctx context.Context, data map[string]interface{}) (*domain.Product, error) {
	if err := validateProductData(data); err != nil {
		uc.log.Warnf("Use Case: Invalid product payload: %v", err)
		return nil, err
	}

	token, ok := data["category"].(string)
	if !ok {
		return nil, domain.NewInvalidInputError("Product category cannot be empty.")
	}
	categoryID, err := uc.resolveCategory(ctx, token)
	if err != nil {
		return nil, err
	}

	name := data["name"].(string)
	existing, err := uc.productRepo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("Failed to create product: %w", err)
	}
	if existing != nil {
		uc.log.Warnf("Use Case: Product '%s' already exists", name)
		return nil, domain.NewDuplicateError("A product with this name already exists.")
	}

	price, _ := parsePrice(data["price"])
	quantity, _ := parseQuantity(data["quantity"])
	now := time.Now().UTC()
	product := &domain.Product{
		Name:        name,
		Description: data["description"].(string),
		CategoryID:  categoryID,
		Price:       price,
		Brand:       data["brand"].(string),
		Quantity:    quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := uc.productRepo.Insert(ctx, product)
	if err != nil {
		if domain.IsDuplicateError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("Failed to create product: %w", err)
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %s", created.Name, created.ID.Hex())
	return created, nil
}

// Update merges the payload onto the stored product, re-validates the merged
// record, and writes only the provided fields. created_at is never touched;
// updated_at is refreshed on every write.
func (uc *productUseCase) Update(ctx context.Context, id string, data map[string]interface{}) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		uc.log.Warnf("Use Case: Invalid product ID format for update: %s", id)
		return nil, domain.NewInvalidInputError("Invalid product ID format")
	}

	existing, err := uc.productRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, fmt.Errorf("Failed to update product: %w", err)
	}
	if existing == nil {
		uc.log.Warnf("Use Case: Product %s not found for update", id)
		return nil, domain.NewNotFoundError("Product not found.")
	}
	if len(data) == 0 {
		return existing, nil
	}

	// Legacy records were imported without a brand; backfill them on the
	// first update that does not supply one.
	backfillBrand := strings.TrimSpace(existing.Brand) == "" && blankField(data, "brand")

	merged := map[string]interface{}{
		"name":        existing.Name,
		"description": existing.Description,
		"category":    existing.CategoryID.Hex(),
		"price":       existing.Price,
		"brand":       existing.Brand,
		"quantity":    existing.Quantity,
	}
	for key, value := range data {
		merged[key] = value
	}
	if backfillBrand {
		merged["brand"] = "Unknown"
	}
	if err := validateProductData(merged); err != nil {
		uc.log.Warnf("Use Case: Invalid merged product payload for ID %s: %v", id, err)
		return nil, err
	}

	fields := make(map[string]interface{}, len(data)+1)
	for key, value := range data {
		switch key {
		case "name", "description", "brand":
			fields[key] = value
		case "price":
			price, perr := parsePrice(value)
			if perr != nil {
				return nil, perr
			}
			fields[key] = price
		case "quantity":
			quantity, qerr := parseQuantity(value)
			if qerr != nil {
				return nil, qerr
			}
			fields[key] = quantity
		case "category":
			token, ok := value.(string)
			if !ok {
				return nil, domain.NewInvalidInputError("Product category cannot be empty.")
			}
			categoryID, rerr := uc.resolveCategory(ctx, token)
			if rerr != nil {
				return nil, rerr
			}
			fields[key] = categoryID
		default:
			uc.log.Warnf("Use Case: Ignoring unknown field '%s' in product update for ID %s", key, id)
		}
	}
	if backfillBrand {
		fields["brand"] = "Unknown"
	}
	if len(fields) == 0 {
		return existing, nil
	}

	mergedName := merged["name"].(string)
	if duplicate, derr := uc.productRepo.FindByName(ctx, mergedName); derr != nil {
		return nil, fmt.Errorf("Failed to update product: %w", derr)
	} else if duplicate != nil && duplicate.ID != oid {
		uc.log.Warnf("Use Case: Product '%s' already owned by ID %s", mergedName, duplicate.ID.Hex())
		return nil, domain.NewDuplicateError("A product with this name already exists.")
	}

	fields["updated_at"] = time.Now().UTC()
	updated, err := uc.productRepo.Update(ctx, oid, fields)
	if err != nil {
		if domain.IsDuplicateError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("Failed to update product: %w", err)
	}
	if updated == nil {
		return nil, domain.NewNotFoundError("Product not found.")
	}

	uc.log.Infof("Use Case: Product updated successfully for ID %s", updated.ID.Hex())
	return updated, nil
}

func (uc *productUseCase) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		uc.log.Warnf("Use Case: Invalid product ID format for delete: %s", id)
		return false, domain.NewInvalidInputError("Invalid product ID format")
	}

	existing, err := uc.productRepo.GetByID(ctx, oid)
	if err != nil {
		return false, fmt.Errorf("Failed to delete product: %w", err)
	}
	if existing == nil {
		uc.log.Warnf("Use Case: Product %s not found for delete", id)
		return false, domain.NewNotFoundError("Product not found.")
	}

	deleted, err := uc.productRepo.Delete(ctx, oid)
	if err != nil {
		return false, fmt.Errorf("Failed to delete product: %w", err)
	}

	uc.log.Infof("Use Case: Product deleted successfully for ID %s", id)
	return deleted, nil
}
