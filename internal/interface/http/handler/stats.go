package handler

import (
	"github.com/gin-gonic/gin"

	appstats "github.com/xiebiao/shopadmin/internal/application/stats"
	"github.com/xiebiao/shopadmin/internal/interface/http/dto"
	"github.com/xiebiao/shopadmin/pkg/response"
)

// StatsHandler 统计HTTP处理器
type StatsHandler struct {
	statsUseCase *appstats.GetStatsUseCase
}

// NewStatsHandler 创建统计处理器
func NewStatsHandler(statsUseCase *appstats.GetStatsUseCase) *StatsHandler {
	return &StatsHandler{statsUseCase: statsUseCase}
}

// Dashboard 仪表盘统计
// @Summary      仪表盘统计
// @Description  商品/分类/订单总数、营收、近30天数据、按状态分布、最近订单
// @Tags         统计
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/stats/dashboard [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	d, err := h.statsUseCase.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"stats": dto.ToDashboardResponse(d)})
}

// Products 商品维度统计
// @Summary      商品统计
// @Tags         统计
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/stats/products [get]
func (h *StatsHandler) Products(c *gin.Context) {
	p, err := h.statsUseCase.Products(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"stats": dto.ToProductStatsResponse(p)})
}

// Sales 销售统计
// @Summary      销售统计
// @Tags         统计
// @Produce      json
// @Param        start_date query string false "开始日期 YYYY-MM-DD"
// @Param        end_date query string false "结束日期 YYYY-MM-DD"
// @Success      200 {object} map[string]interface{}
// @Router       /api/stats/sales [get]
func (h *StatsHandler) Sales(c *gin.Context) {
	s, err := h.statsUseCase.Sales(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"stats": dto.ToSalesStatsResponse(s)})
}
