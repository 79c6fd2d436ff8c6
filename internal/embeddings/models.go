package embeddings

// Known embedding models and their dimensions. The multilingual model is
// the default: statements arrive in any of the supported languages and
// must land in one shared embedding space.
const (
	ModelTextEmbedding3Small = "openai/text-embedding-3-small"
	ModelTextEmbedding3Large = "openai/text-embedding-3-large"
	ModelMultilingualE5Large = "intfloat/multilingual-e5-large"

	DimTextEmbedding3Small = 1536
	DimTextEmbedding3Large = 3072
	DimMultilingualE5Large = 1024

	DefaultModel = ModelMultilingualE5Large
)

// ModelDimension returns the embedding dimension for a model.
func ModelDimension(model string) int {
	switch model {
	case ModelTextEmbedding3Small:
		return DimTextEmbedding3Small
	case ModelTextEmbedding3Large:
		return DimTextEmbedding3Large
	case ModelMultilingualE5Large:
		return DimMultilingualE5Large
	default:
		return DimMultilingualE5Large
	}
}

// EmbeddingRequest is the request body for the embeddings endpoint.
type EmbeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// EmbeddingResponse is the response body from the embeddings endpoint.
type EmbeddingResponse struct {
	Data  []EmbeddingData `json:"data"`
	Model string          `json:"model"`
	Usage Usage           `json:"usage"`
}

// EmbeddingData is one embedding in the response.
type EmbeddingData struct {
	Object    string    `json:"object"`
	Index     int       `json:"index"`
	Embedding []float32 `json:"embedding"`
}

// Usage reports token consumption.
type Usage struct {
	PromptTokens int `json:"prompt_tokens"`
	TotalTokens  int `json:"total_tokens"`
}
