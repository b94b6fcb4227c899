package handler

import (
	"Tabitomo-App/internal/domain/model"
	"Tabitomo-App/internal/usecase"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlannerHandler はルート最適化・介入チェックAPIのハンドラー
type PlannerHandler struct {
	optimizeUseCase     usecase.PlannerOptimizeUseCase
	interventionUseCase usecase.InterventionUseCase
}

// NewPlannerHandler は新しいPlannerHandlerインスタンスを作成
func NewPlannerHandler(optimizeUseCase usecase.PlannerOptimizeUseCase, interventionUseCase usecase.InterventionUseCase) *PlannerHandler {
	return &PlannerHandler{
		optimizeUseCase:     optimizeUseCase,
		interventionUseCase: interventionUseCase,
	}
}

// PostOptimize は3モードのルート提案パッケージを生成するエンドポイント
// POST /planner/optimize
func (h *PlannerHandler) PostOptimize(c *gin.Context) {
	var req model.OptimizeRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// バリデーション
	if err := h.validateOptimizeRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	// UseCase呼び出し
	response, err := h.optimizeUseCase.Optimize(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"error":   "ルート最適化に失敗しました",
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, response)
}

// PostInterventions は旅行中の介入チェックを行うエンドポイント
// POST /planner/interventions
func (h *PlannerHandler) PostInterventions(c *gin.Context) {
	var req model.TripContext

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	// バリデーション
	if err := h.validateTripContext(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "バリデーションエラー",
			"details": err.Error(),
		})
		return
	}

	// UseCase呼び出し
	response, err := h.interventionUseCase.CheckTrip(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "介入チェックに失敗しました",
			"details": err.Error(),
		})
		return
	}

	// 成功レスポンス
	c.JSON(http.StatusOK, response)
}

// validateOptimizeRequest はリクエストの詳細バリデーションを行う
func (h *PlannerHandler) validateOptimizeRequest(req *model.OptimizeRequest) error {
	// Originは必須
	if req.Origin == nil {
		return &ValidationError{Field: "origin", Message: "出発地は必須です"}
	}

	// Destinationは必須
	if req.Destination == nil {
		return &ValidationError{Field: "destination", Message: "目的地は必須です"}
	}

	// 緯度経度の範囲チェック
	if err := validateLatLng("origin", req.Origin); err != nil {
		return err
	}
	return validateLatLng("destination", req.Destination)
}

// validateTripContext は介入チェックリクエストのバリデーションを行う
func (h *PlannerHandler) validateTripContext(req *model.TripContext) error {
	// Destinationは必須
	if req.Destination == nil {
		return &ValidationError{Field: "destination", Message: "目的地は必須です"}
	}

	if req.Destination.Name == "" {
		return &ValidationError{Field: "destination.name", Message: "目的地名は必須です"}
	}

	// 現在天候もロケーションも無ければ天候が取得できない
	if req.CurrentWeather == nil && req.Destination.Location == nil {
		return &ValidationError{Field: "destination.location", Message: "current_weatherが無い場合は目的地の座標が必須です"}
	}

	if req.Destination.Location != nil {
		return validateLatLng("destination.location", req.Destination.Location)
	}
	return nil
}

// validateLatLng は緯度経度の範囲チェックを行う
func validateLatLng(field string, loc *model.LatLng) error {
	if loc.Lat < -90 || loc.Lat > 90 {
		return &ValidationError{Field: field + ".lat", Message: "緯度は-90から90の範囲で指定してください"}
	}
	if loc.Lng < -180 || loc.Lng > 180 {
		return &ValidationError{Field: field + ".lng", Message: "経度は-180から180の範囲で指定してください"}
	}
	return nil
}

// ValidationError はバリデーションエラーを表す
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
