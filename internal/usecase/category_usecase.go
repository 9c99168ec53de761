package usecase

import (
	"context"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	Create(ctx context.Context, items []map[string]interface{}) ([]*domain.Category, error)
	GetByIDOrName(ctx context.Context, token string) (*domain.Category, error)
	GetAll(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, token string, updates map[string]interface{}) (*domain.Category, error)
	Delete(ctx context.Context, token string) (bool, error)
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	productRepo  domain.ProductRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(cRepo domain.CategoryRepository, pRepo domain.ProductRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: cRepo,
		productRepo:  pRepo,
		log:          logger,
	}
}

// Create accepts one or many category payloads. Every item is validated and
// duplicate-checked (against stored data and against earlier items of the same
// batch) before anything is written, so a batch either inserts fully or not
// at all.
func (uc *categoryUseCase) Create(ctx context.Context, items []map[string]interface{}) ([]*domain.Category, error) {
	if len(items) == 0 {
		uc.log.Warn("Use Case: Attempted to create categories with an empty payload")
		return nil, domain.NewInvalidInputError("Category name cannot be empty.")
	}

	categories := make([]*domain.Category, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if err := validateCategoryData(item); err != nil {
			uc.log.Warnf("Use Case: Invalid category payload: %v", err)
			return nil, err
		}
		name := item["name"].(string)
		if seen[name] {
			uc.log.Warnf("Use Case: Duplicate category name '%s' within batch", name)
			return nil, domain.NewDuplicateError(fmt.Sprintf("Category '%s' already exists.", name))
		}
		existing, err := uc.categoryRepo.GetByName(ctx, name)
		if err != nil {
			return nil, uc.wrapPersistence("create category", err)
		}
		if existing != nil {
			uc.log.Warnf("Use Case: Category '%s' already exists", name)
			return nil, domain.NewDuplicateError(fmt.Sprintf("Category '%s' already exists.", name))
		}
		seen[name] = true
		categories = append(categories, &domain.Category{
			Name:        name,
			Description: item["description"].(string),
		})
	}

	if len(categories) == 1 {
		created, err := uc.categoryRepo.Insert(ctx, categories[0])
		if err != nil {
			return nil, uc.wrapPersistence("create category", err)
		}
		uc.log.Infof("Use Case: Category '%s' created successfully with ID %s", created.Name, created.ID.Hex())
		return []*domain.Category{created}, nil
	}

	created, err := uc.categoryRepo.InsertMany(ctx, categories)
	if err != nil {
		return nil, uc.wrapPersistence("create categories", err)
	}
	uc.log.Infof("Use Case: Created %d categories", len(created))
	return created, nil
}

// GetByIDOrName resolves the token as a canonical id first and falls back to
// an exact name match. A miss is (nil, nil), not an error.
func (uc *categoryUseCase) GetByIDOrName(ctx context.Context, token string) (*domain.Category, error) {
	ref, err := domain.ParseCategoryRef(token)
	if err != nil {
		uc.log.Warn("Use Case: Blank category token")
		return nil, err
	}

	if ref.IsID() {
		return uc.categoryRepo.GetByID(ctx, ref.ID)
	}
	return uc.categoryRepo.GetByName(ctx, ref.Name)
}

func (uc *categoryUseCase) GetAll(ctx context.Context) ([]domain.Category, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, fmt.Errorf("could not retrieve categories: %w", err)
	}
	uc.log.Infof("Use Case: Retrieved %d categories", len(categories))
	return categories, nil
}

// Update overwrites exactly the fields present in the payload. An unresolved
// token yields (nil, nil); an empty payload is a no-op returning the current
// record.
func (uc *categoryUseCase) Update(ctx context.Context, token string, updates map[string]interface{}) (*domain.Category, error) {
	category, err := uc.GetByIDOrName(ctx, token)
	if err != nil {
		return nil, err
	}
	if category == nil {
		uc.log.Warnf("Use Case: Category '%s' not found for update", token)
		return nil, nil
	}
	if len(updates) == 0 {
		return category, nil
	}

	fields := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		switch key {
		case "id", "_id":
			// never writable
			continue
		case "name":
			if blankField(updates, "name") {
				return nil, domain.NewInvalidInputError("Category name cannot be empty.")
			}
			if fieldTooLong(updates, "name", maxCategoryNameLen) {
				return nil, domain.NewInvalidInputError("Category name cannot exceed 100 characters.")
			}
			fields[key] = value
		case "description":
			if blankField(updates, "description") {
				return nil, domain.NewInvalidInputError("Category description cannot be empty.")
			}
			fields[key] = value
		default:
			fields[key] = value
		}
	}
	if len(fields) == 0 {
		return category, nil
	}

	if name, ok := fields["name"].(string); ok && name != category.Name {
		existing, err := uc.categoryRepo.GetByName(ctx, name)
		if err != nil {
			return nil, uc.wrapPersistence("update category", err)
		}
		if existing != nil {
			uc.log.Warnf("Use Case: Category '%s' already exists", name)
			return nil, domain.NewDuplicateError(fmt.Sprintf("Category '%s' already exists.", name))
		}
	}

	updated, err := uc.categoryRepo.Update(ctx, category.ID, fields)
	if err != nil {
		return nil, uc.wrapPersistence("update category", err)
	}
	uc.log.Infof("Use Case: Category updated successfully for ID %s", category.ID.Hex())
	return updated, nil
}

// Delete removes a category and cascades to every product referencing it. If
// the cascade fails after the category is gone the orphaned products are
// reported to the caller rather than silently left behind.
func (uc *categoryUseCase) Delete(ctx context.Context, token string) (bool, error) {
	category, err := uc.GetByIDOrName(ctx, token)
	if err != nil {
		return false, err
	}
	if category == nil {
		uc.log.Warnf("Use Case: Category '%s' not found for delete", token)
		return false, nil
	}

	deleted, err := uc.categoryRepo.Delete(ctx, category.ID)
	if err != nil {
		return false, uc.wrapPersistence("delete category", err)
	}
	if !deleted {
		return false, nil
	}

	removed, err := uc.productRepo.DeleteByCategory(ctx, category.ID)
	if err != nil {
		uc.log.Errorf("Use Case: Category %s deleted but cascade failed, products may be orphaned: %v", category.ID.Hex(), err)
		return true, fmt.Errorf("category deleted but failed to remove its products: %w", err)
	}

	uc.log.Infof("Use Case: Category %s deleted with %d associated products", category.ID.Hex(), removed)
	return true, nil
}

// wrapPersistence adds operation context to infrastructure failures while
// letting already-typed domain errors pass through untouched.
func (uc *categoryUseCase) wrapPersistence(op string, err error) error {
	if domain.IsDuplicateError(err) || domain.IsInvalidInputError(err) || domain.IsNotFoundError(err) {
		return err
	}
	uc.log.Errorf("Use Case: Repository failed to %s: %v", op, err)
	return fmt.Errorf("failed to %s: %w", op, err)
}
