// Package api は、ヒートマップ描画APIサーバーの実装を提供します。
//
// サーバーは状態を持ちません。プレー記録は毎回のリクエストボディで
// 供給され、レスポンスを返した時点で破棄されます。
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jiftechnify/iidx-calendar-heatmap/activity"
	"github.com/jiftechnify/iidx-calendar-heatmap/calendar"
	"github.com/jiftechnify/iidx-calendar-heatmap/config"
	"github.com/jiftechnify/iidx-calendar-heatmap/heatmap"
	"github.com/jiftechnify/iidx-calendar-heatmap/model"
)

// Server はAPIサーバーの構造体です。
type Server struct {
	handler http.Handler
	config  *config.Config
}

// ErrorResponse はエラーレスポンスの構造体です。
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// writeJSONError はJSON形式でエラーレスポンスを返却します。
func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	resp := ErrorResponse{
		Error: message,
		Code:  statusCode,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding error response: %v", err)
	}
}

// NewServer は新しいAPIサーバーインスタンスを生成します。
func NewServer(config *config.Config) *Server {
	s := &Server{config: config}
	s.routes()
	return s
}

// routes はAPIエンドポイントのルーティングを設定します。
func (s *Server) routes() {
	router := http.NewServeMux()

	// ヘルスチェックエンドポイントは認証不要
	router.HandleFunc("GET /healthz", s.handleHealthCheck)

	// 描画エンドポイント
	rendering := http.NewServeMux()
	rendering.HandleFunc("POST /v0/graph.svg", s.handleRenderSVG)
	rendering.HandleFunc("POST /v0/graph.png", s.handleRenderPNG)
	rendering.HandleFunc("POST /v0/cells", s.handleRenderCells)

	// APIキーが設定されている場合のみ認証がかかる
	router.Handle("/v0/", s.authMiddleware(rendering))

	// 全ルートにリクエストIDとアクセスログを付与
	s.handler = s.withRequestID(router)
}

// ServeHTTP はServer構造体をhttp.Handlerとして実装します。
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// Run はサーバーを起動します。
func (s *Server) Run(addr string) error {
	log.Printf("Listening on %s", addr)
	return http.ListenAndServe(addr, s)
}

// handleHealthCheck はヘルスチェックエンドポイントのハンドラーです。
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := map[string]string{"status": "ok"}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// RenderParams represents parameters for the render endpoints.
type RenderParams struct {
	Records []model.PlayRecord
	Metric  model.Metric
	AsOf    time.Time
}

// NewRenderParams creates render parameters from the HTTP request.
// The body is the JSON record array; metric and as-of date come from
// query parameters.
func NewRenderParams(r *http.Request) (*RenderParams, error) {
	records, err := model.DecodeRecords(r.Body)
	if err != nil {
		return nil, err
	}

	query := r.URL.Query()
	metric, err := model.ParseMetric(query.Get("metric"))
	if err != nil {
		return nil, err
	}

	asOf := time.Now()
	if dateStr := query.Get("date"); dateStr != "" {
		asOf, err = model.ParsePlayDate(dateStr)
		if err != nil {
			return nil, err
		}
	}

	return &RenderParams{
		Records: records,
		Metric:  metric,
		AsOf:    asOf,
	}, nil
}

// buildCells は供給されたレコードを集計し、描画命令列を組み立てます。
func (s *Server) buildCells(params *RenderParams) []heatmap.Cell {
	agg := activity.Aggregate(params.Records)
	if n := agg.Skipped(); n > 0 {
		log.Printf("Skipped %d invalid records", n)
	}
	win := calendar.NewWindow(params.AsOf)
	return heatmap.BuildCells(agg, win, params.Metric, s.config.HeatmapOptions())
}

// handleRenderSVG は、送信されたプレー記録からSVGヒートマップを生成するハンドラーです。
func (s *Server) handleRenderSVG(w http.ResponseWriter, r *http.Request) {
	// パラメータを検証
	params, err := NewRenderParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	svg := heatmap.GenerateSVG(s.buildCells(params), s.config.HeatmapOptions())

	// レスポンスの返却
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write([]byte(svg))
}

// handleRenderPNG は、送信されたプレー記録からPNGヒートマップを生成するハンドラーです。
func (s *Server) handleRenderPNG(w http.ResponseWriter, r *http.Request) {
	params, err := NewRenderParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := heatmap.RenderPNG(s.buildCells(params), s.config.HeatmapOptions())
	if err != nil {
		log.Printf("Error rendering PNG: %v", err)
		writeJSONError(w, "Failed to render image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(data)
}

// CellsResponse は描画命令列のレスポンスです。
// 外部の描画コンポーネントがセルをそのまま描けるよう、解決済みの
// 色と座標に加えてグリッド全体の寸法を含みます。
type CellsResponse struct {
	Metric model.Metric   `json:"metric"`
	Width  int            `json:"width"`
	Height int            `json:"height"`
	Cells  []heatmap.Cell `json:"cells"`
}

// handleRenderCells は、描画命令列をJSONで返却するハンドラーです。
func (s *Server) handleRenderCells(w http.ResponseWriter, r *http.Request) {
	params, err := NewRenderParams(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	opts := s.config.HeatmapOptions()
	geom := calendar.Geometry{CellSize: opts.CellSize, CellMargin: opts.CellMargin}
	resp := CellsResponse{
		Metric: params.Metric,
		Width:  geom.Width(),
		Height: geom.Height(),
		Cells:  s.buildCells(params),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
