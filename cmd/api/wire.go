//go:build wireinject
// +build wireinject

// Wire依赖注入配置
//
// 使用方式：
// Step 1: 修改本文件的Providers
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，main.go可改为调用InitializeApp()
//
// 与main.go中的手动注入等价，Wire在编译期生成同样的组装代码

package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"

	appcarousel "github.com/xiebiao/shopadmin/internal/application/carousel"
	appcategory "github.com/xiebiao/shopadmin/internal/application/category"
	apporder "github.com/xiebiao/shopadmin/internal/application/order"
	appproduct "github.com/xiebiao/shopadmin/internal/application/product"
	appstats "github.com/xiebiao/shopadmin/internal/application/stats"
	appupload "github.com/xiebiao/shopadmin/internal/application/upload"
	"github.com/xiebiao/shopadmin/internal/infrastructure/config"
	"github.com/xiebiao/shopadmin/internal/infrastructure/media"
	"github.com/xiebiao/shopadmin/internal/infrastructure/persistence/mysql"
	redisinfra "github.com/xiebiao/shopadmin/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/shopadmin/internal/interface/http/handler"
	"github.com/xiebiao/shopadmin/internal/interface/http/middleware"
	"github.com/xiebiao/shopadmin/pkg/metrics"
	"github.com/xiebiao/shopadmin/pkg/mq"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	provideImageKitClient,
	provideStatsCache,
	provideCacheInvalidator,
	provideDashboardCache,
	provideEventPublisher,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewProductRepository,
	mysql.NewCategoryRepository,
	mysql.NewOrderRepository,
	mysql.NewCarouselRepository,
	mysql.NewStatsRepository,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appproduct.NewCreateProductUseCase,
	appproduct.NewManageProductsUseCase,
	appproduct.NewBulkProductsUseCase,
	appcategory.NewManageCategoriesUseCase,
	apporder.NewCreateOrderUseCase,
	apporder.NewGetOrderUseCase,
	apporder.NewListOrdersUseCase,
	apporder.NewUpdateOrderUseCase,
	apporder.NewDeleteOrderUseCase,
	appcarousel.NewManageSlidesUseCase,
	appstats.NewGetStatsUseCase,
	provideUploadUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewProductHandler,
	handler.NewCategoryHandler,
	handler.NewOrderHandler,
	handler.NewCarouselHandler,
	handler.NewStatsHandler,
	handler.NewUploadHandler,
)

// provideImageKitClient 从配置创建ImageKit客户端
func provideImageKitClient(cfg *config.Config) *media.ImageKitClient {
	return media.NewImageKitClient(cfg.ImageKit)
}

// provideUploadUseCase ImageKitClient转接口参数
func provideUploadUseCase(client *media.ImageKitClient) *appupload.UploadImageUseCase {
	return appupload.NewUploadImageUseCase(client)
}

// provideStatsCache 创建统计缓存
// Redis是可选依赖：连接失败返回nil，统计降级为直查数据库
func provideStatsCache(cfg *config.Config) *redisinfra.StatsCache {
	client, err := redisinfra.NewClient(cfg)
	if err != nil {
		log.Printf("⚠ Redis不可用，统计缓存降级为直查数据库: %v", err)
		return nil
	}
	return redisinfra.NewStatsCache(client, cfg.Redis.StatsCacheTTL)
}

// provideCacheInvalidator 统计缓存转失效接口
// 必须保持nil接口语义，不能把nil指针包进非nil接口
func provideCacheInvalidator(cache *redisinfra.StatsCache) apporder.CacheInvalidator {
	if cache == nil {
		return nil
	}
	return cache
}

// provideDashboardCache 统计缓存转查询接口
func provideDashboardCache(cache *redisinfra.StatsCache) appstats.DashboardCache {
	if cache == nil {
		return nil
	}
	return cache
}

// provideEventPublisher 创建订单事件发布器
// MQ是可选依赖：未启用或连接失败返回nil，订单事件不发布
func provideEventPublisher(cfg *config.Config) apporder.EventPublisher {
	if !cfg.MQ.Enabled {
		return nil
	}
	p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
	if err != nil {
		log.Printf("⚠ RabbitMQ不可用，订单事件发布已禁用: %v", err)
		return nil
	}
	return p
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	productHandler *handler.ProductHandler,
	categoryHandler *handler.CategoryHandler,
	orderHandler *handler.OrderHandler,
	carouselHandler *handler.CarouselHandler,
	statsHandler *handler.StatsHandler,
	uploadHandler *handler.UploadHandler,
) *gin.Engine {
	metrics.InitMetrics()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	registerRoutes(r, productHandler, categoryHandler, orderHandler, carouselHandler, statsHandler, uploadHandler)
	return r
}

// InitializeApp 初始化整个应用
// Wire会按依赖链顺序调用所有Provider，生成wire_gen.go
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		applicationSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
