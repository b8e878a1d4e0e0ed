package response

// FallbackList is a read that may have been served from the local store
type FallbackList[T any] struct {
	Items         []T    `json:"items"`
	UsingFallback bool   `json:"using_fallback"`
	Message       string `json:"message,omitempty"`
}

func NewFallbackList[T any](items []T, fallback bool, message string) *FallbackList[T] {
	if items == nil {
		items = []T{}
	}
	return &FallbackList[T]{Items: items, UsingFallback: fallback, Message: message}
}
