package request_models

type UpdateStoreRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
