package dto

// StringListResponse lista simple de valores (nombres, grupos).
type StringListResponse struct {
	Items []string `json:"items"`
}
