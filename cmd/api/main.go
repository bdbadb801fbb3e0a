package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appcarousel "github.com/xiebiao/shopadmin/internal/application/carousel"
	appcategory "github.com/xiebiao/shopadmin/internal/application/category"
	apporder "github.com/xiebiao/shopadmin/internal/application/order"
	appproduct "github.com/xiebiao/shopadmin/internal/application/product"
	appstats "github.com/xiebiao/shopadmin/internal/application/stats"
	appupload "github.com/xiebiao/shopadmin/internal/application/upload"

	_ "github.com/xiebiao/shopadmin/docs" // swag生成的API文档
	"github.com/xiebiao/shopadmin/internal/infrastructure/config"
	"github.com/xiebiao/shopadmin/internal/infrastructure/media"
	"github.com/xiebiao/shopadmin/internal/infrastructure/persistence/mysql"
	redisinfra "github.com/xiebiao/shopadmin/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/shopadmin/internal/interface/http/handler"
	"github.com/xiebiao/shopadmin/internal/interface/http/middleware"
	"github.com/xiebiao/shopadmin/pkg/metrics"
	"github.com/xiebiao/shopadmin/pkg/mq"
	"github.com/xiebiao/shopadmin/pkg/response"
)

// @title        商城管理后台API
// @version      1.0
// @description  电商管理后台：商品、分类、订单、轮播图、统计与图片上传
// @BasePath     /

// main 主程序入口
// 说明：手动依赖注入（wire.go提供编译期生成的替代方案）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())

	// 2. 初始化Prometheus指标
	metrics.InitMetrics()

	// 3. 初始化数据库连接（必选依赖，失败直接退出）
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 初始化Redis（可选依赖：失败只是没有统计缓存，服务照常启动）
	var statsCache *redisinfra.StatsCache
	redisClient, err := redisinfra.NewClient(cfg)
	if err != nil {
		log.Printf("⚠ Redis不可用，统计缓存降级为直查数据库: %v", err)
	} else {
		statsCache = redisinfra.NewStatsCache(redisClient, cfg.Redis.StatsCacheTTL)
	}

	// 5. 初始化MQ（可选依赖：未启用或连接失败时不发订单事件）
	var publisher apporder.EventPublisher
	if cfg.MQ.Enabled {
		p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
		if err != nil {
			log.Printf("⚠ RabbitMQ不可用，订单事件发布已禁用: %v", err)
		} else {
			publisher = p
			defer p.Close()
		}
	}

	// statsCache为nil时必须保持接口为nil，不能包一层非nil接口
	var invalidator apporder.CacheInvalidator
	var dashboardCache appstats.DashboardCache
	if statsCache != nil {
		invalidator = statsCache
		dashboardCache = statsCache
	}

	// 6. 依赖注入（手动组装）
	// Repository ← UseCase ← Handler

	// 基础设施层
	productRepo := mysql.NewProductRepository(db)
	categoryRepo := mysql.NewCategoryRepository(db)
	orderRepo := mysql.NewOrderRepository(db)
	carouselRepo := mysql.NewCarouselRepository(db)
	statsRepo := mysql.NewStatsRepository(db)
	imagekitClient := media.NewImageKitClient(cfg.ImageKit)

	// 应用层
	createProductUseCase := appproduct.NewCreateProductUseCase(productRepo, categoryRepo)
	manageProductsUseCase := appproduct.NewManageProductsUseCase(productRepo, categoryRepo)
	bulkProductsUseCase := appproduct.NewBulkProductsUseCase(productRepo)
	manageCategoriesUseCase := appcategory.NewManageCategoriesUseCase(categoryRepo)
	createOrderUseCase := apporder.NewCreateOrderUseCase(orderRepo, productRepo, publisher, invalidator)
	getOrderUseCase := apporder.NewGetOrderUseCase(orderRepo)
	listOrdersUseCase := apporder.NewListOrdersUseCase(orderRepo)
	updateOrderUseCase := apporder.NewUpdateOrderUseCase(orderRepo, publisher, invalidator)
	deleteOrderUseCase := apporder.NewDeleteOrderUseCase(orderRepo, invalidator)
	manageSlidesUseCase := appcarousel.NewManageSlidesUseCase(carouselRepo)
	getStatsUseCase := appstats.NewGetStatsUseCase(statsRepo, dashboardCache)
	uploadImageUseCase := appupload.NewUploadImageUseCase(imagekitClient)

	// 接口层
	productHandler := handler.NewProductHandler(createProductUseCase, manageProductsUseCase, bulkProductsUseCase)
	categoryHandler := handler.NewCategoryHandler(manageCategoriesUseCase)
	orderHandler := handler.NewOrderHandler(createOrderUseCase, getOrderUseCase, listOrdersUseCase, updateOrderUseCase, deleteOrderUseCase)
	carouselHandler := handler.NewCarouselHandler(manageSlidesUseCase)
	statsHandler := handler.NewStatsHandler(getStatsUseCase)
	uploadHandler := handler.NewUploadHandler(uploadImageUseCase)

	// 7. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	// 8. 注册路由
	registerRoutes(r, productHandler, categoryHandler, orderHandler, carouselHandler, statsHandler, uploadHandler)

	// 9. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   接口文档: http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   监控指标: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	productHandler *handler.ProductHandler,
	categoryHandler *handler.CategoryHandler,
	orderHandler *handler.OrderHandler,
	carouselHandler *handler.CarouselHandler,
	statsHandler *handler.StatsHandler,
	uploadHandler *handler.UploadHandler,
) {
	// 欢迎页
	r.GET("/", func(c *gin.Context) {
		response.OK(c, gin.H{"message": "欢迎使用商城管理后台API"})
	})

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.OK(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API路由组
	api := r.Group("/api")
	{
		// 商品模块
		// /search必须注册在/:id之前对应的语义（gin静态路由优先于参数路由）
		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/search", productHandler.Search)
			products.GET("/:id", productHandler.Get)
			products.POST("", productHandler.Create)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
			products.PATCH("/:id/visibility", productHandler.SetVisibility)
			products.POST("/bulk-delete", productHandler.BulkDelete)
			products.POST("/bulk-update", productHandler.BulkUpdate)
		}

		// 分类模块
		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.List)
			categories.GET("/:id", categoryHandler.Get)
			categories.POST("", categoryHandler.Create)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Delete)
		}

		// 订单模块
		orders := api.Group("/orders")
		{
			orders.POST("", orderHandler.Create)
			orders.GET("", orderHandler.List)
			orders.GET("/order-id/:orderId", orderHandler.GetByOrderID)
			orders.GET("/:id", orderHandler.Get)
			orders.PATCH("/:id/status", orderHandler.UpdateStatus)
			orders.PATCH("/:id/payment-status", orderHandler.UpdatePaymentStatus)
			orders.DELETE("/:id", orderHandler.Delete)
		}

		// 轮播图模块
		carousel := api.Group("/carousel")
		{
			carousel.GET("", carouselHandler.List)
			carousel.GET("/:id", carouselHandler.Get)
			carousel.POST("", carouselHandler.Create)
			carousel.PUT("/:id", carouselHandler.Update)
			carousel.DELETE("/:id", carouselHandler.Delete)
			carousel.PATCH("/:id/active", carouselHandler.SetActive)
		}

		// 统计模块
		stats := api.Group("/stats")
		{
			stats.GET("/dashboard", statsHandler.Dashboard)
			stats.GET("/products", statsHandler.Products)
			stats.GET("/sales", statsHandler.Sales)
		}

		// 上传模块
		upload := api.Group("/upload")
		{
			upload.POST("/image", uploadHandler.Upload)
			upload.POST("/images", uploadHandler.UploadMany)
			upload.POST("/carousel", uploadHandler.UploadCarousel)
			upload.GET("/auth", uploadHandler.AuthParams)
			upload.DELETE("/:fileId", uploadHandler.Delete)
		}
	}
}
