package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/shopadmin/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（生产环境应使用版本化迁移脚本）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 注意：orders.order_id的唯一索引是订单号分配器正确性的前提，
// 不是性能优化，绝不能去掉
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&CategoryModel{},
		&ProductModel{},
		&OrderModel{},
		&OrderItemModel{},
		&CarouselSlideModel{},
	)
}

// CategoryModel GORM分类模型
// 这是infrastructure层的数据模型，domain层实体不依赖GORM
type CategoryModel struct {
	ID             uint      `gorm:"primaryKey"`
	Name           string    `gorm:"uniqueIndex;size:100;not null;comment:分类名称"`
	Description    string    `gorm:"size:500;comment:分类描述"`
	ShowOnMainPage bool      `gorm:"default:true;comment:是否在首页展示"`
	DisplayOrder   int       `gorm:"index;default:0;comment:展示顺序"`
	CreatedAt      time.Time `gorm:"comment:创建时间"`
	UpdatedAt      time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel GORM商品模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. 切片字段（图片、标签、颜色、尺码）以JSON列存储
// 3. 常用过滤字段（分类、状态、可见性、新品）建索引
type ProductModel struct {
	ID           uint           `gorm:"primaryKey"`
	Name         string         `gorm:"size:200;not null;comment:商品名称"`
	Description  string         `gorm:"type:text;not null;comment:商品描述"`
	CategoryID   uint           `gorm:"index;not null;comment:分类ID"`
	Category     *CategoryModel `gorm:"foreignKey:CategoryID"` // 列表查询时预加载
	MRP          int64          `gorm:"not null;comment:市场指导价(分)"`
	Price        int64          `gorm:"not null;comment:售价(分)"`
	SpecialPrice *int64         `gorm:"comment:特价(分)"`
	Images       []string       `gorm:"serializer:json;type:json;comment:图片URL列表"`
	Tags         []string       `gorm:"serializer:json;type:json;comment:标签"`
	Colors       []string       `gorm:"serializer:json;type:json;comment:颜色"`
	Sizes        []string       `gorm:"serializer:json;type:json;comment:尺码"`
	IsVisible    bool           `gorm:"index;default:true;comment:是否可见"`
	IsNewArrival bool           `gorm:"index;default:false;comment:是否新品"`
	Status       string         `gorm:"index;size:20;default:published;comment:状态(draft/published)"`
	CreatedAt    time.Time      `gorm:"index;comment:创建时间"`
	UpdatedAt    time.Time      `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (ProductModel) TableName() string {
	return "products"
}

// OrderModel GORM订单模型
// 设计说明:
// 1. OrderID是业务主键（ORD-YYYYMMDD-NNNN），唯一索引由订单号分配器依赖
// 2. 客户信息以customer_前缀的列内嵌存储（订单内的快照）
// 3. 与OrderItemModel一对多
type OrderModel struct {
	ID             uint             `gorm:"primaryKey"`
	OrderID        string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	Customer       CustomerColumns  `gorm:"embedded;embeddedPrefix:customer_"`
	Items          []OrderItemModel `gorm:"foreignKey:OrderID"` // 一对多关联
	Subtotal       int64            `gorm:"not null;comment:商品小计(分)"`
	DeliveryCharge int64            `gorm:"default:0;comment:运费(分)"`
	TotalAmount    int64            `gorm:"not null;comment:订单总金额(分)"`
	PaymentMode    string           `gorm:"size:10;not null;comment:支付方式(COD/Online)"`
	PaymentStatus  int              `gorm:"type:tinyint;default:1;comment:支付状态(1待支付2已支付3失败)"`
	Status         int              `gorm:"index;type:tinyint;default:1;comment:订单状态(1待处理2已发货3已送达4已取消)"`
	Notes          string           `gorm:"size:1000;comment:备注"`
	CreatedAt      time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt      time.Time        `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// CustomerColumns 订单内嵌的客户信息列
type CustomerColumns struct {
	Name    string `gorm:"size:100;not null;comment:客户姓名"`
	Email   string `gorm:"size:100;not null;comment:邮箱"`
	Phone   string `gorm:"size:20;not null;comment:电话"`
	Address string `gorm:"size:500;not null;comment:地址"`
	City    string `gorm:"size:100;not null;comment:城市"`
	State   string `gorm:"size:100;not null;comment:省/邦"`
	Pincode string `gorm:"size:10;not null;comment:邮编"`
}

// OrderItemModel GORM订单明细模型
// ProductName和Price是下单时的快照
type OrderItemModel struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     uint   `gorm:"index;not null;comment:订单ID"`
	ProductID   uint   `gorm:"index;not null;comment:商品ID"`
	ProductName string `gorm:"size:200;not null;comment:下单时商品名称"`
	Quantity    int    `gorm:"not null;comment:购买数量"`
	Price       int64  `gorm:"not null;comment:下单时单价(分)"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}

// CarouselSlideModel GORM轮播图模型
type CarouselSlideModel struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:200;not null;comment:标题"`
	ImageURL    string    `gorm:"size:500;not null;comment:图片URL"`
	Description string    `gorm:"size:500;comment:描述"`
	ButtonTitle string    `gorm:"size:50;default:Shop Now;comment:按钮文案"`
	ButtonLink  string    `gorm:"size:500;comment:按钮链接"`
	SortOrder   int       `gorm:"index;default:0;comment:展示顺序"`
	IsActive    bool      `gorm:"default:true;comment:是否启用"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CarouselSlideModel) TableName() string {
	return "carousel_slides"
}
