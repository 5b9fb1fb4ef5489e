// Package dto はNewsAPIレスポンスのデータ転送オブジェクトを定義します。
package dto

// EverythingResponse は /v2/everything エンドポイントからのJSONレスポンスを表します。
type EverythingResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"source"`
		Author      string `json:"author"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}
