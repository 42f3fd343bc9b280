package api

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// authMiddleware はAPIリクエストの認証を行うミドルウェアです。
// サーバー側でAPIキーが設定されていない場合、認証は行いません。
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.config.Server.APIKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		// ヘッダーからAPIキーを取得し、一致するか確認
		apiKey := r.Header.Get("X-API-Key")
		if apiKey != s.config.Server.APIKey {
			writeJSONError(w, "Unauthorized: Invalid API key", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRequestID は各リクエストにリクエストIDを付与し、アクセスログを出力するミドルウェアです。
// クライアントがX-Request-Idヘッダーを送信した場合はその値を引き継ぎます。
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)

		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s (%s)", reqID, r.Method, r.URL.Path, time.Since(start))
	})
}
