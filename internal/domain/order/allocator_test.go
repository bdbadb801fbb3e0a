package order

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/shopadmin/pkg/errors"
)

// memoryIDStore 内存版IDStore实现
// 用互斥锁模拟存储层的唯一约束：同号插入返回ErrOrderIDTaken
type memoryIDStore struct {
	mu       sync.Mutex
	orderIDs map[string]bool

	// beforeCreate 在持锁检查唯一性之前调用，用于注入并发交错
	beforeCreate func(orderID string)
}

func newMemoryIDStore() *memoryIDStore {
	return &memoryIDStore{orderIDs: make(map[string]bool)}
}

func (s *memoryIDStore) LastOrderIDForPrefix(_ context.Context, prefix string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	last := ""
	for id := range s.orderIDs {
		if strings.HasPrefix(id, prefix+"-") && id > last {
			last = id
		}
	}
	return last, nil
}

func (s *memoryIDStore) CreateWithOrderID(_ context.Context, o *Order) error {
	if s.beforeCreate != nil {
		s.beforeCreate(o.OrderID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.orderIDs[o.OrderID] {
		return ErrOrderIDTaken
	}
	s.orderIDs[o.OrderID] = true
	return nil
}

func (s *memoryIDStore) seed(ids ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.orderIDs[id] = true
	}
}

func testOrder() *Order {
	return NewOrder(
		Customer{Name: "测试客户", Email: "test@example.com", Phone: "13800000000",
			Address: "某街道1号", City: "某市", State: "某省", Pincode: "100000"},
		[]OrderItem{{ProductID: 1, ProductName: "测试商品", Quantity: 1, Price: 9900}},
		9900, 0, 9900, PaymentModeCOD, "",
	)
}

var day = time.Date(2025, 1, 15, 10, 30, 0, 0, time.Local)

// TestAllocate_Sequential 顺序分配N个订单号：0001..000N，无空洞无重复
func TestAllocate_Sequential(t *testing.T) {
	store := newMemoryIDStore()
	allocator := NewIDAllocator(store)

	for i := 1; i <= 25; i++ {
		o := testOrder()
		got, err := allocator.Allocate(context.Background(), day, o)
		require.NoError(t, err)
		want := fmt.Sprintf("ORD-20250115-%04d", i)
		assert.Equal(t, want, got)
		assert.Equal(t, want, o.OrderID, "分配结果必须回写到订单实体")
	}
}

// TestAllocate_FirstOrderOfDay 当天第一单从0001开始
func TestAllocate_FirstOrderOfDay(t *testing.T) {
	store := newMemoryIDStore()
	allocator := NewIDAllocator(store)

	got, err := allocator.Allocate(context.Background(), day, testOrder())
	require.NoError(t, err)
	assert.Equal(t, "ORD-20250115-0001", got)
}

// TestAllocate_DatePrefixIsolation 不同日期的序号空间互不影响
func TestAllocate_DatePrefixIsolation(t *testing.T) {
	store := newMemoryIDStore()
	allocator := NewIDAllocator(store)

	got, err := allocator.Allocate(context.Background(), day, testOrder())
	require.NoError(t, err)
	assert.Equal(t, "ORD-20250115-0001", got)

	got, err = allocator.Allocate(context.Background(), day, testOrder())
	require.NoError(t, err)
	assert.Equal(t, "ORD-20250115-0002", got)

	// 次日第一单回到0001，与15日的计数无关
	nextDay := day.AddDate(0, 0, 1)
	got, err = allocator.Allocate(context.Background(), nextDay, testOrder())
	require.NoError(t, err)
	assert.Equal(t, "ORD-20250116-0001", got)
}

// TestAllocate_Concurrent K个并发请求得到K个互不相同的订单号，
// 序号恰好覆盖1..K（允许与请求发起顺序不一致）
func TestAllocate_Concurrent(t *testing.T) {
	const k = 50

	store := newMemoryIDStore()
	allocator := NewIDAllocator(store)
	// K路全开的竞争远超生产预期，放宽重试上限，
	// 只验证唯一性与稠密覆盖，不验证默认上限够不够
	allocator.maxAttempts = k

	var wg sync.WaitGroup
	results := make([]string, k)
	errs := make([]error, k)

	for i := 0; i < k; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = allocator.Allocate(context.Background(), day, testOrder())
		}(i)
	}
	wg.Wait()

	seqs := make([]int, 0, k)
	for i := 0; i < k; i++ {
		require.NoError(t, errs[i], "第%d个请求失败", i)
		require.True(t, strings.HasPrefix(results[i], "ORD-20250115-"))
		seq, err := SequenceOf(results[i])
		require.NoError(t, err)
		seqs = append(seqs, seq)
	}

	sort.Ints(seqs)
	for i, seq := range seqs {
		assert.Equal(t, i+1, seq, "序号必须从1起稠密覆盖，无空洞无重复")
	}
}

// TestAllocate_RetryOnConflict 写入冲突时重读最新序号再试，调用方无感知
func TestAllocate_RetryOnConflict(t *testing.T) {
	store := newMemoryIDStore()
	store.seed("ORD-20250115-0001", "ORD-20250115-0002", "ORD-20250115-0003", "ORD-20250115-0004")

	// 模拟并发竞争：第一次尝试写入0005前，另一个写入者抢先占用了它
	raced := false
	store.beforeCreate = func(orderID string) {
		if orderID == "ORD-20250115-0005" && !raced {
			raced = true
			store.seed("ORD-20250115-0005")
		}
	}

	allocator := NewIDAllocator(store)
	conflicts := 0
	allocator.OnConflict = func() { conflicts++ }

	got, err := allocator.Allocate(context.Background(), day, testOrder())
	require.NoError(t, err)
	assert.Equal(t, "ORD-20250115-0006", got)
	assert.Equal(t, 1, conflicts)
}

// TestAllocate_ContentionExhausted 每次重试都输掉竞争时，
// 有界重试后返回ErrOrderIDContention
func TestAllocate_ContentionExhausted(t *testing.T) {
	store := newMemoryIDStore()

	// 永远抢先占用分配器计算出的号
	store.beforeCreate = func(orderID string) {
		store.seed(orderID)
	}

	allocator := NewIDAllocator(store)
	o := testOrder()
	_, err := allocator.Allocate(context.Background(), day, o)
	assert.ErrorIs(t, err, ErrOrderIDContention)
	assert.Empty(t, o.OrderID, "失败时不得留下未落库的订单号")
}

// TestAllocate_Exhausted 序号9999用尽后失败，且不影响次日分配
func TestAllocate_Exhausted(t *testing.T) {
	store := newMemoryIDStore()
	store.seed("ORD-20250115-9999")

	allocator := NewIDAllocator(store)
	_, err := allocator.Allocate(context.Background(), day, testOrder())
	assert.ErrorIs(t, err, ErrOrderIDExhausted)

	// 次日不受影响
	got, err := allocator.Allocate(context.Background(), day.AddDate(0, 0, 1), testOrder())
	require.NoError(t, err)
	assert.Equal(t, "ORD-20250116-0001", got)
}

// TestAllocate_StoreError 存储错误原样返回，不归类为竞争
func TestAllocate_StoreError(t *testing.T) {
	allocator := NewIDAllocator(failingIDStore{})
	_, err := allocator.Allocate(context.Background(), day, testOrder())
	assert.ErrorIs(t, err, apperrors.ErrStoreUnavailable)
}

type failingIDStore struct{}

func (failingIDStore) LastOrderIDForPrefix(context.Context, string) (string, error) {
	return "", apperrors.ErrStoreUnavailable
}

func (failingIDStore) CreateWithOrderID(context.Context, *Order) error {
	return apperrors.ErrStoreUnavailable
}

// TestSequenceOf 订单号序号解析
func TestSequenceOf(t *testing.T) {
	tests := []struct {
		orderID string
		want    int
		wantErr bool
	}{
		{"ORD-20250115-0001", 1, false},
		{"ORD-20250115-9999", 9999, false},
		{"ORD-20250115-0042", 42, false},
		{"ORD-20250115-", 0, true},
		{"garbage", 0, true},
		{"ORD-20250115-00x1", 0, true},
	}

	for _, tt := range tests {
		got, err := SequenceOf(tt.orderID)
		if tt.wantErr {
			assert.Error(t, err, tt.orderID)
			continue
		}
		require.NoError(t, err, tt.orderID)
		assert.Equal(t, tt.want, got, tt.orderID)
	}
}

// TestDatePrefix 前缀只含日期，不含时间
func TestDatePrefix(t *testing.T) {
	assert.Equal(t, "ORD-20250115", DatePrefix(day))
	assert.Equal(t, "ORD-20250115", DatePrefix(time.Date(2025, 1, 15, 23, 59, 59, 0, time.Local)))
}
