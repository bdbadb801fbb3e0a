package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/shopadmin/internal/domain/category"
	"github.com/xiebiao/shopadmin/internal/domain/product"
	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// fakeProductRepo 内存版商品仓储
type fakeProductRepo struct {
	nextID   uint
	products map[uint]*product.Product

	// lastListParams 记录最近一次List的参数，用于断言分页修正
	lastListParams product.ListParams
	// lastSearchLimit 记录最近一次Search的limit
	lastSearchLimit int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uint]*product.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *product.Product) error {
	r.nextID++
	p.ID = r.nextID
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *fakeProductRepo) FindByID(_ context.Context, id uint) (*product.Product, error) {
	if p, ok := r.products[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, product.ErrProductNotFound
}

func (r *fakeProductRepo) Update(_ context.Context, p *product.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return product.ErrProductNotFound
	}
	clone := *p
	r.products[p.ID] = &clone
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.products[id]; !ok {
		return product.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, params product.ListParams) ([]*product.Product, int64, error) {
	r.lastListParams = params
	result := make([]*product.Product, 0, len(r.products))
	for _, p := range r.products {
		result = append(result, p)
	}
	return result, int64(len(result)), nil
}

func (r *fakeProductRepo) Search(_ context.Context, keyword string, limit int) ([]*product.Product, error) {
	r.lastSearchLimit = limit
	return nil, nil
}

func (r *fakeProductRepo) SetVisibility(_ context.Context, id uint, visible bool) (*product.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	p.IsVisible = visible
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) DeleteMany(_ context.Context, ids []uint) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if _, ok := r.products[id]; ok {
			delete(r.products, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *fakeProductRepo) UpdateMany(_ context.Context, ids []uint, updates product.UpdateFields) (int64, error) {
	var updated int64
	for _, id := range ids {
		if _, ok := r.products[id]; ok {
			updated++
		}
	}
	return updated, nil
}

// fakeCategoryRepo 内存版分类仓储
type fakeCategoryRepo struct {
	categories map[uint]*category.Category
}

func newFakeCategoryRepo(categories ...*category.Category) *fakeCategoryRepo {
	m := make(map[uint]*category.Category)
	for _, c := range categories {
		m[c.ID] = c
	}
	return &fakeCategoryRepo{categories: m}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *category.Category) error {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return category.ErrNameDuplicate
		}
	}
	c.ID = uint(len(r.categories) + 1)
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*category.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, category.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *category.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return category.ErrCategoryNotFound
	}
	r.categories[c.ID] = c
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.categories[id]; !ok {
		return category.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) List(_ context.Context, _ bool) ([]*category.Category, error) {
	result := make([]*category.Category, 0, len(r.categories))
	for _, c := range r.categories {
		result = append(result, c)
	}
	return result, nil
}

func validCreateRequest() CreateProductRequest {
	return CreateProductRequest{
		Name:        "白色T恤",
		Description: "纯棉基础款",
		CategoryID:  1,
		MRP:         7900,
		Price:       5900,
	}
}

// TestCreateProduct_Defaults 默认值：可见、已发布
func TestCreateProduct_Defaults(t *testing.T) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo(&category.Category{ID: 1, Name: "服装"})
	uc := NewCreateProductUseCase(productRepo, categoryRepo)

	p, err := uc.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.True(t, p.IsVisible)
	assert.Equal(t, product.StatusPublished, p.Status)
	assert.NotZero(t, p.ID)
}

// TestCreateProduct_ExplicitValues 显式传入的可见性和状态生效
func TestCreateProduct_ExplicitValues(t *testing.T) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo(&category.Category{ID: 1, Name: "服装"})
	uc := NewCreateProductUseCase(productRepo, categoryRepo)

	hidden := false
	req := validCreateRequest()
	req.IsVisible = &hidden
	req.Status = "draft"

	p, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, p.IsVisible)
	assert.Equal(t, product.StatusDraft, p.Status)
}

// TestCreateProduct_Validation 创建校验
func TestCreateProduct_Validation(t *testing.T) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo(&category.Category{ID: 1, Name: "服装"})
	uc := NewCreateProductUseCase(productRepo, categoryRepo)

	tests := []struct {
		name    string
		modify  func(*CreateProductRequest)
		wantErr error
	}{
		{
			name:    "名称为空",
			modify:  func(r *CreateProductRequest) { r.Name = "" },
			wantErr: nil, // 通用参数错误，下面单独断言错误码
		},
		{
			name:    "价格为零",
			modify:  func(r *CreateProductRequest) { r.Price = 0 },
			wantErr: nil,
		},
		{
			name:    "状态非法",
			modify:  func(r *CreateProductRequest) { r.Status = "archived" },
			wantErr: product.ErrInvalidStatus,
		},
		{
			name:    "分类不存在",
			modify:  func(r *CreateProductRequest) { r.CategoryID = 999 },
			wantErr: category.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.modify(&req)
			_, err := uc.Execute(context.Background(), req)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				var appErr *apperrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, apperrors.ErrCodeInvalidParams, appErr.Code)
			}
		})
	}
}

// TestManageProducts_ListPagination 分页参数修正：页码最小1，页大小有上限
func TestManageProducts_ListPagination(t *testing.T) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo()
	uc := NewManageProductsUseCase(productRepo, categoryRepo)

	_, _, err := uc.List(context.Background(), ListProductsRequest{Page: -1, PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, 1, productRepo.lastListParams.Page)
	assert.Equal(t, maxPageSize, productRepo.lastListParams.PageSize)

	_, _, err = uc.List(context.Background(), ListProductsRequest{})
	require.NoError(t, err)
	assert.Equal(t, defaultPageSize, productRepo.lastListParams.PageSize)

	// 非法状态过滤
	_, _, err = uc.List(context.Background(), ListProductsRequest{Status: "archived"})
	assert.ErrorIs(t, err, product.ErrInvalidStatus)
}

// TestManageProducts_Update 整体更新覆盖所有字段
func TestManageProducts_Update(t *testing.T) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo(
		&category.Category{ID: 1, Name: "服装"},
		&category.Category{ID: 2, Name: "配饰"},
	)
	createUC := NewCreateProductUseCase(productRepo, categoryRepo)
	manageUC := NewManageProductsUseCase(productRepo, categoryRepo)

	created, err := createUC.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := manageUC.Update(context.Background(), created.ID, UpdateProductRequest{
		Name:        "黑色T恤",
		Description: "纯棉基础款",
		CategoryID:  2,
		MRP:         8900,
		Price:       6900,
		IsVisible:   false,
		Status:      "draft",
	})
	require.NoError(t, err)
	assert.Equal(t, "黑色T恤", updated.Name)
	assert.Equal(t, uint(2), updated.CategoryID)
	assert.False(t, updated.IsVisible)
	// 整体更新：未传的特价被清空
	assert.Nil(t, updated.SpecialPrice)

	// 不存在的商品
	_, err = manageUC.Update(context.Background(), 999, UpdateProductRequest{
		Name: "x", Description: "x", CategoryID: 1, MRP: 1, Price: 1, Status: "draft",
	})
	assert.ErrorIs(t, err, product.ErrProductNotFound)
}

// TestManageProducts_Search 搜索关键词校验与limit透传
func TestManageProducts_Search(t *testing.T) {
	productRepo := newFakeProductRepo()
	uc := NewManageProductsUseCase(productRepo, newFakeCategoryRepo())

	_, err := uc.Search(context.Background(), "")
	assert.ErrorIs(t, err, product.ErrEmptyKeyword)

	_, err = uc.Search(context.Background(), "T恤")
	require.NoError(t, err)
	assert.Equal(t, searchLimit, productRepo.lastSearchLimit)
}

// TestBulkProducts_DeleteMany 批量删除：不存在的ID静默跳过
func TestBulkProducts_DeleteMany(t *testing.T) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo(&category.Category{ID: 1, Name: "服装"})
	createUC := NewCreateProductUseCase(productRepo, categoryRepo)
	bulkUC := NewBulkProductsUseCase(productRepo)

	p1, err := createUC.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)
	p2, err := createUC.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)

	deleted, err := bulkUC.DeleteMany(context.Background(), []uint{p1.ID, p2.ID, 999})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = bulkUC.DeleteMany(context.Background(), nil)
	assert.ErrorIs(t, err, product.ErrEmptyIDList)
}

// TestBulkProducts_UpdateMany 批量更新字段白名单
func TestBulkProducts_UpdateMany(t *testing.T) {
	productRepo := newFakeProductRepo()
	categoryRepo := newFakeCategoryRepo(&category.Category{ID: 1, Name: "服装"})
	createUC := NewCreateProductUseCase(productRepo, categoryRepo)
	bulkUC := NewBulkProductsUseCase(productRepo)

	p, err := createUC.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// 白名单内字段
	updated, err := bulkUC.UpdateMany(context.Background(), BulkUpdateRequest{
		IDs:     []uint{p.ID},
		Updates: map[string]interface{}{"is_visible": false, "status": "draft"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	// 白名单外字段拒绝
	_, err = bulkUC.UpdateMany(context.Background(), BulkUpdateRequest{
		IDs:     []uint{p.ID},
		Updates: map[string]interface{}{"price": 100},
	})
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeInvalidParams, appErr.Code)

	// 非法的status值
	_, err = bulkUC.UpdateMany(context.Background(), BulkUpdateRequest{
		IDs:     []uint{p.ID},
		Updates: map[string]interface{}{"status": "archived"},
	})
	assert.ErrorIs(t, err, product.ErrInvalidStatus)

	// 空更新集合
	_, err = bulkUC.UpdateMany(context.Background(), BulkUpdateRequest{IDs: []uint{p.ID}})
	assert.ErrorIs(t, err, product.ErrEmptyUpdates)
}
