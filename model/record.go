// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// PlayDateLayout はプレー記録の日付書式（yyyyMMdd）です。
const PlayDateLayout = "20060102"

// PlayRecord は1日分のプレー記録を表すモデルです。
// 上流のデータソースは1日につき高々1件のレコードを供給します。
type PlayRecord struct {
	Date          string `json:"date"`          // プレー日（yyyyMMdd）
	KeyboardCount int    `json:"keyboardCount"` // 鍵盤ノーツ数
	ScratchCount  int    `json:"scratchCount"`  // スクラッチノーツ数
}

// NewPlayRecord はPlayRecordの新しいインスタンスを作成します。
func NewPlayRecord(date string, keyboardCount, scratchCount int) (*PlayRecord, error) {
	rec := &PlayRecord{
		Date:          date,
		KeyboardCount: keyboardCount,
		ScratchCount:  scratchCount,
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// Validate はレコードのデータバリデーションを行います。
func (r *PlayRecord) Validate() error {
	// 日付の検証
	if _, err := ParsePlayDate(r.Date); err != nil {
		return NewValidationError(fmt.Sprintf("invalid date %q: expected yyyyMMdd", r.Date))
	}

	// カウントの検証
	if r.KeyboardCount < 0 {
		return NewValidationError("keyboardCount must be a non-negative integer")
	}
	if r.ScratchCount < 0 {
		return NewValidationError("scratchCount must be a non-negative integer")
	}

	return nil
}

// Day はレコードの日付をUTCの暦日として返します。
func (r *PlayRecord) Day() (time.Time, error) {
	return ParsePlayDate(r.Date)
}

// ParsePlayDate はyyyyMMdd形式の日付文字列をUTCの暦日に変換します。
func ParsePlayDate(s string) (time.Time, error) {
	t, err := time.Parse(PlayDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid play date %q: expected yyyyMMdd", s)
	}
	return t, nil
}

// DecodeRecords はJSONドキュメントからプレー記録の配列を読み込みます。
// ドキュメント自体が壊れている場合はエラーを返します。
// 個々のレコードの検証は集計側で行い、不正なレコードはそこでスキップされます。
func DecodeRecords(r io.Reader) ([]PlayRecord, error) {
	var records []PlayRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("invalid records document: %w", err)
	}
	return records, nil
}
