package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcategory "github.com/xiebiao/shopadmin/internal/application/category"
	"github.com/xiebiao/shopadmin/internal/domain/category"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memCategoryRepo 内存版分类仓储，名称重复模拟唯一约束
type memCategoryRepo struct {
	nextID     uint
	categories map[uint]*category.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[uint]*category.Category)}
}

func (r *memCategoryRepo) Create(_ context.Context, c *category.Category) error {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return category.ErrNameDuplicate
		}
	}
	r.nextID++
	c.ID = r.nextID
	r.categories[c.ID] = c
	return nil
}

func (r *memCategoryRepo) FindByID(_ context.Context, id uint) (*category.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, category.ErrCategoryNotFound
}

func (r *memCategoryRepo) Update(_ context.Context, c *category.Category) error {
	for _, existing := range r.categories {
		if existing.ID != c.ID && existing.Name == c.Name {
			return category.ErrNameDuplicate
		}
	}
	if _, ok := r.categories[c.ID]; !ok {
		return category.ErrCategoryNotFound
	}
	r.categories[c.ID] = c
	return nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.categories[id]; !ok {
		return category.ErrCategoryNotFound
	}
	delete(r.categories, id)
	return nil
}

func (r *memCategoryRepo) List(_ context.Context, mainPageOnly bool) ([]*category.Category, error) {
	result := make([]*category.Category, 0, len(r.categories))
	for _, c := range r.categories {
		if mainPageOnly && !c.ShowOnMainPage {
			continue
		}
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].DisplayOrder != result[j].DisplayOrder {
			return result[i].DisplayOrder < result[j].DisplayOrder
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *memCategoryRepo) seed(categories ...*category.Category) {
	for _, c := range categories {
		r.nextID++
		c.ID = r.nextID
		c.CreatedAt = time.Now()
		c.UpdatedAt = time.Now()
		r.categories[c.ID] = c
	}
}

func newCategoryRouter(repo *memCategoryRepo) *gin.Engine {
	h := NewCategoryHandler(appcategory.NewManageCategoriesUseCase(repo))

	r := gin.New()
	categories := r.Group("/api/categories")
	{
		categories.GET("", h.List)
		categories.GET("/:id", h.Get)
		categories.POST("", h.Create)
		categories.PUT("/:id", h.Update)
		categories.DELETE("/:id", h.Delete)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, payload interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		parsed = nil
	}
	return w, parsed
}

// TestCategoryAPI_Create 创建分类：201、默认首页展示、重名409
func TestCategoryAPI_Create(t *testing.T) {
	r := newCategoryRouter(newMemCategoryRepo())

	w, body := doJSON(t, r, http.MethodPost, "/api/categories", gin.H{
		"name":        "服装",
		"description": "T恤、连衣裙",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, body["success"])
	cat := body["category"].(map[string]interface{})
	assert.Equal(t, "服装", cat["name"])
	assert.Equal(t, true, cat["show_on_main_page"])

	// 同名再创建冲突
	w, body = doJSON(t, r, http.MethodPost, "/api/categories", gin.H{"name": "服装"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, false, body["success"])

	// 缺少必填字段
	w, _ = doJSON(t, r, http.MethodPost, "/api/categories", gin.H{"description": "无名"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestCategoryAPI_List 列表按展示顺序返回，支持首页过滤
func TestCategoryAPI_List(t *testing.T) {
	repo := newMemCategoryRepo()
	repo.seed(
		&category.Category{Name: "配饰", ShowOnMainPage: false, DisplayOrder: 2},
		&category.Category{Name: "服装", ShowOnMainPage: true, DisplayOrder: 1},
	)
	r := newCategoryRouter(repo)

	w, body := doJSON(t, r, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	categories := body["categories"].([]interface{})
	require.Len(t, categories, 2)
	first := categories[0].(map[string]interface{})
	assert.Equal(t, "服装", first["name"])

	w, body = doJSON(t, r, http.MethodGet, "/api/categories?main_page=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	categories = body["categories"].([]interface{})
	require.Len(t, categories, 1)
}

// TestCategoryAPI_GetNotFound 不存在的分类返回404
func TestCategoryAPI_GetNotFound(t *testing.T) {
	r := newCategoryRouter(newMemCategoryRepo())

	w, body := doJSON(t, r, http.MethodGet, "/api/categories/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, body["success"])

	// 非数字ID是参数错误
	w, _ = doJSON(t, r, http.MethodGet, "/api/categories/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestCategoryAPI_UpdateAndDelete 更新与删除
func TestCategoryAPI_UpdateAndDelete(t *testing.T) {
	repo := newMemCategoryRepo()
	repo.seed(&category.Category{Name: "服装", ShowOnMainPage: true})
	r := newCategoryRouter(repo)

	hide := false
	w, body := doJSON(t, r, http.MethodPut, "/api/categories/1", gin.H{
		"name":              "女装",
		"show_on_main_page": hide,
	})
	require.Equal(t, http.StatusOK, w.Code)
	cat := body["category"].(map[string]interface{})
	assert.Equal(t, "女装", cat["name"])
	assert.Equal(t, false, cat["show_on_main_page"])

	w, body = doJSON(t, r, http.MethodDelete, "/api/categories/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])

	w, _ = doJSON(t, r, http.MethodDelete, "/api/categories/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
